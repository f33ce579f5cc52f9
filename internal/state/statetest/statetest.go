// Package statetest provides helper functions to create tests using Tafl boards.
package statetest

import (
	"fmt"
	"strings"

	. "github.com/janpfeifer/hnefGo/internal/state"
	"github.com/janpfeifer/must"
)

// TokenOnBoard represents a position and a token placed on it.
type TokenOnBoard struct {
	Pos  Pos
	Team Team
	Rank Rank
}

// TileOnBoard represents a position and the structure built on it.
type TileOnBoard struct {
	Pos    Pos
	Type   TileType
	Escape bool
}

// BuildBoard creates a height x width board with the given structures and tokens.
// It panics if the dimensions are invalid or a position is out of the board.
func BuildBoard(height, width int, tiles []TileOnBoard, tokens []TokenOnBoard) (b *Board) {
	b = must.M1(NewBoard(height, width))
	for _, t := range tiles {
		x, y := int(t.Pos.X()), int(t.Pos.Y())
		b.SetTileType(x, y, t.Type)
		b.SetEscape(x, y, t.Escape)
	}
	for _, t := range tokens {
		b.SetToken(int(t.Pos.X()), int(t.Pos.Y()), NewToken(t.Team, t.Rank))
	}
	return
}

// ReferenceBoard returns the 5x7 board used in many tests: castle escape tiles on the
// corners, a throne at the center with the Swede king on it, and a Muscovite soldier
// at the middle of the top row.
func ReferenceBoard() *Board {
	const height, width = 5, 7
	var tiles []TileOnBoard
	for _, x := range []int8{0, width - 1} {
		for _, y := range []int8{0, height - 1} {
			tiles = append(tiles, TileOnBoard{Pos{x, y}, TileCastle, true})
		}
	}
	tiles = append(tiles, TileOnBoard{Pos{width / 2, height / 2}, TileThrone, false})
	tokens := []TokenOnBoard{
		{Pos{width / 2, height / 2}, Swede, King},
		{Pos{width / 2, 0}, Muscovite, Soldier},
	}
	return BuildBoard(height, width, tiles, tokens)
}

// BoardString returns a plain text drawing of the board, one line per row: structures
// are shown with TileLetters, escape tiles with "*", Muscovites as "m", Swedes as "s"
// and kings in upper case.
func BoardString(b *Board) string {
	var sb strings.Builder
	for pos, tile := range b.All() {
		cell := TileLetters[tile.Type()]
		if token, occupied := tile.Token(); occupied {
			cell = "m"
			if token.Team == Swede {
				cell = "s"
			}
			if token.IsKing() {
				cell = strings.ToUpper(cell)
			}
		}
		escape := " "
		if tile.IsEscape() {
			escape = "*"
		}
		_, _ = fmt.Fprintf(&sb, "%s%s", cell, escape)
		if int(pos.X()) == b.Width()-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
