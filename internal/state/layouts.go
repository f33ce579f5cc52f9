package state

// This file builds the starting positions of the common Tafl variants, using only the
// public Board API.

import (
	"strings"

	"github.com/pkg/errors"
)

// Layout is a standard starting position.
type Layout uint8

const (
	// LayoutBrandubh is the 7x7 Irish variant.
	LayoutBrandubh Layout = iota

	// LayoutTablut is the 9x9 variant recorded by Linnaeus: the king escapes on any edge
	// tile, and attackers start on camps.
	LayoutTablut

	// LayoutHnefatafl is the 11x11 Copenhagen-style variant: the king escapes on the
	// corner castles.
	LayoutHnefatafl
)

//go:generate go tool enumer -type=Layout -trimprefix=Layout -values -text -json layouts.go

// ParseLayout returns the layout with the given name, case-insensitive.
func ParseLayout(name string) (Layout, error) {
	layout, err := LayoutString(strings.TrimSpace(name))
	if err != nil {
		return layout, errors.Wrapf(err, "unknown layout %q, valid layouts are %v", name, LayoutStrings())
	}
	return layout, nil
}

// layoutSpec describes a symmetric starting position: positions are given for one
// quarter of the board and rotated 4 times around the center.
type layoutSpec struct {
	size                 int
	attackers, defenders []Pos

	cornerCastles, edgeEscapes, attackersOnCamps, throneAtCenter bool
}

var layoutSpecs = map[Layout]layoutSpec{
	LayoutBrandubh: {
		size:           7,
		attackers:      []Pos{{3, 0}, {3, 1}},
		defenders:      []Pos{{3, 2}},
		cornerCastles:  true,
		throneAtCenter: true,
	},
	LayoutTablut: {
		size:             9,
		attackers:        []Pos{{3, 0}, {4, 0}, {5, 0}, {4, 1}},
		defenders:        []Pos{{4, 2}, {4, 3}},
		edgeEscapes:      true,
		attackersOnCamps: true,
		throneAtCenter:   true,
	},
	LayoutHnefatafl: {
		size:           11,
		attackers:      []Pos{{3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {5, 1}},
		defenders:      []Pos{{5, 3}, {5, 4}, {4, 4}},
		cornerCastles:  true,
		throneAtCenter: true,
	},
}

// rotations returns pos and its 3 rotations of 90 degrees around the center of a
// size x size board.
func rotations(size int, pos Pos) [4]Pos {
	var rotated [4]Pos
	rotated[0] = pos
	for ii := 1; ii < 4; ii++ {
		prev := rotated[ii-1]
		rotated[ii] = Pos{int8(size-1) - prev.Y(), prev.X()}
	}
	return rotated
}

// NewLayoutBoard creates a board with the starting position of the given layout: the
// Swede king on the throne at the center, surrounded by the Swede defenders, and the
// Muscovite attackers at the edges.
func NewLayoutBoard(layout Layout) (*Board, error) {
	spec, found := layoutSpecs[layout]
	if !found {
		return nil, errors.Errorf("unknown layout %d", layout)
	}
	b, err := NewBoard(spec.size, spec.size)
	if err != nil {
		return nil, err
	}
	last := spec.size - 1
	if spec.edgeEscapes {
		for ii := range spec.size {
			b.SetEscape(ii, 0, true)
			b.SetEscape(ii, last, true)
			b.SetEscape(0, ii, true)
			b.SetEscape(last, ii, true)
		}
	}
	if spec.cornerCastles {
		for _, corner := range rotations(spec.size, Pos{0, 0}) {
			x, y := int(corner.X()), int(corner.Y())
			b.SetTileType(x, y, TileCastle)
			b.SetEscape(x, y, true)
		}
	}
	center := spec.size / 2
	if spec.throneAtCenter {
		b.SetTileType(center, center, TileThrone)
	}
	b.SetToken(center, center, NewToken(Swede, King))
	for _, quarterPos := range spec.defenders {
		for _, pos := range rotations(spec.size, quarterPos) {
			b.SetToken(int(pos.X()), int(pos.Y()), NewToken(Swede, Soldier))
		}
	}
	for _, quarterPos := range spec.attackers {
		for _, pos := range rotations(spec.size, quarterPos) {
			x, y := int(pos.X()), int(pos.Y())
			b.SetToken(x, y, NewToken(Muscovite, Soldier))
			if spec.attackersOnCamps {
				b.SetTileType(x, y, TileCamp)
				b.SetEscape(x, y, false)
			}
		}
	}
	return b, nil
}
