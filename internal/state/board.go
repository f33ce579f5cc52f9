// Package state holds the board state of a Tafl game (Hnefatafl and its variants), and
// its compact binary encoding.
//
// A Board owns a fixed capacity grid of Tile values, and each Tile owns the Token on it
// by value: there are no pointers to manage, and cloning a Board is a plain copy.
//
// Game rules (moves, captures, winning conditions) are not handled here.
package state

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

const (
	// MaxHeight of a board, it must fit in one byte of the encoding.
	MaxHeight = 32

	// MaxWidth of a board, it must fit in one byte of the encoding.
	MaxWidth = 32

	// MaxArea is the capacity of every board, regardless of its dimensions.
	MaxArea = MaxHeight * MaxWidth
)

// Pos packages x, y position. X is the column, Y the row, both starting at 0.
type Pos [2]int8

// X coordinate of the position.
func (pos Pos) X() int8 {
	return pos[0]
}

// Y coordinate of the position.
func (pos Pos) Y() int8 {
	return pos[1]
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// Board is a rectangular grid of tiles, with dimensions up to MaxHeight x MaxWidth.
//
// Tiles are stored in row-major order: the tile at (x, y) is at index width*y + x.
// Accessing coordinates outside the board panics with an error wrapping
// ErrOutOfBounds.
//
// A Board is not safe for concurrent mutation.
type Board struct {
	height, width int
	tiles         [MaxArea]Tile
}

// NewBoard creates a board of the given dimensions, with all tiles empty, not escape and
// unoccupied.
//
// It returns ErrDimension if height or width are not in [1, MaxHeight] and
// [1, MaxWidth] respectively.
func NewBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 || height > MaxHeight || width > MaxWidth {
		return nil, errors.Wrapf(ErrDimension, "height=%d, width=%d (max %dx%d)",
			height, width, MaxHeight, MaxWidth)
	}
	return &Board{height: height, width: width}, nil
}

// Height of the board, the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width of the board, the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Area is the number of tiles of the board.
func (b *Board) Area() int {
	return b.height * b.width
}

// InBounds returns whether (x, y) is a valid coordinate of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index of the tile at (x, y) in b.tiles. It panics if (x, y) is out of bounds.
func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(errors.Wrapf(ErrOutOfBounds, "(%d, %d) on a board of width=%d, height=%d",
			x, y, b.width, b.height))
	}
	return b.width*y + x
}

// Clone makes a copy of the board.
func (b *Board) Clone() *Board {
	newB := &Board{}
	*newB = *b
	return newB
}

// Equal returns whether both boards have the same dimensions and the same tiles. The
// token of unoccupied tiles is not compared.
func (b *Board) Equal(other *Board) bool {
	if b.height != other.height || b.width != other.width {
		return false
	}
	for idx := range b.Area() {
		t0, t1 := b.tiles[idx], other.tiles[idx]
		if t0.Encode() != t1.Encode() {
			return false
		}
	}
	return true
}

// All iterates over all positions of the board and their tiles, row by row.
func (b *Board) All() iter.Seq2[Pos, Tile] {
	return func(yield func(Pos, Tile) bool) {
		for y := range b.height {
			for x := range b.width {
				if !yield(Pos{int8(x), int8(y)}, b.tiles[b.width*y+x]) {
					return
				}
			}
		}
	}
}

// Tokens iterates over the occupied positions of the board and their tokens, row by row.
func (b *Board) Tokens() iter.Seq2[Pos, Token] {
	return func(yield func(Pos, Token) bool) {
		for pos, tile := range b.All() {
			if token, occupied := tile.Token(); occupied {
				if !yield(pos, token) {
					return
				}
			}
		}
	}
}

// TileAt returns a copy of the tile at (x, y).
func (b *Board) TileAt(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

// SetTile replaces the tile at (x, y).
func (b *Board) SetTile(x, y int, tile Tile) {
	b.tiles[b.index(x, y)] = tile
}

// TileType returns the type of structure at (x, y).
func (b *Board) TileType(x, y int) TileType {
	return b.tiles[b.index(x, y)].Type()
}

// SetTileType sets the type of structure at (x, y).
func (b *Board) SetTileType(x, y int, tileType TileType) {
	b.tiles[b.index(x, y)].SetType(tileType)
}

// IsEscape returns whether (x, y) is an escape tile.
func (b *Board) IsEscape(x, y int) bool {
	return b.tiles[b.index(x, y)].IsEscape()
}

// SetEscape sets whether (x, y) is an escape tile.
func (b *Board) SetEscape(x, y int, escape bool) {
	b.tiles[b.index(x, y)].SetEscape(escape)
}

// IsOccupied returns whether there is a token at (x, y).
func (b *Board) IsOccupied(x, y int) bool {
	return b.tiles[b.index(x, y)].IsOccupied()
}

// TokenAt returns the token at (x, y) and whether there is one. If occupied is false
// the returned token must be ignored.
func (b *Board) TokenAt(x, y int) (token Token, occupied bool) {
	return b.tiles[b.index(x, y)].Token()
}

// SetToken places token at (x, y), replacing any token there.
func (b *Board) SetToken(x, y int, token Token) {
	b.tiles[b.index(x, y)].SetToken(token)
}

// UnsetToken removes the token at (x, y), if any.
func (b *Board) UnsetToken(x, y int) {
	b.tiles[b.index(x, y)].UnsetToken()
}

// CountTokens returns how many tokens of the given team and rank are on the board.
func (b *Board) CountTokens(team Team, rank Rank) (count int) {
	for _, token := range b.Tokens() {
		if token.Team == team && token.Rank == rank {
			count++
		}
	}
	return
}

// FindKing returns the position of the first king found for the team, scanning row by
// row, and whether one was found.
func (b *Board) FindKing(team Team) (Pos, bool) {
	for pos, token := range b.Tokens() {
		if token.IsKing() && token.Team == team {
			return pos, true
		}
	}
	return Pos{}, false
}
