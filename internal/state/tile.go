package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// TileType is the structure built on a tile. It uses 2 bits in the tile encoding.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileCastle
	TileThrone
	TileCamp

	// NumTileTypes that can be encoded.
	NumTileTypes = 4
)

//go:generate go tool enumer -type=TileType -trimprefix=Tile -values -text -json tile.go

// TileLetters used to display the structure of a tile.
var TileLetters = [NumTileTypes]string{" ", "C", "T", "c"}

// Tile is one square of the board: its structure, whether the king escapes through
// it, and the token standing on it, if any.
//
// The zero value is an empty, non-escape, unoccupied tile.
type Tile struct {
	tileType TileType
	escape   bool
	occupied bool

	// token is only meaningful if occupied is true.
	token Token
}

// Bit layout of a tile encoding, the 3 lower bits hold the token encoding.
const (
	tileTypeShift   = 3
	tileTypeMask    = 0x03
	tileEscapeShift = 5

	// TileReservedBits are never set by Tile.Encode.
	TileReservedBits = 0xC0
)

// NewTile creates an unoccupied tile.
func NewTile(tileType TileType, escape bool) Tile {
	return Tile{tileType: tileType & tileTypeMask, escape: escape}
}

// Type of structure built on the tile.
func (t Tile) Type() TileType {
	return t.tileType
}

// SetType of structure built on the tile. Only the 2 lower bits are kept.
func (t *Tile) SetType(tileType TileType) {
	t.tileType = tileType & tileTypeMask
}

// IsEscape returns whether a king reaching this tile escapes.
func (t Tile) IsEscape() bool {
	return t.escape
}

// SetEscape sets whether a king reaching this tile escapes.
func (t *Tile) SetEscape(escape bool) {
	t.escape = escape
}

// IsOccupied returns whether there is a token on the tile.
func (t Tile) IsOccupied() bool {
	return t.occupied
}

// Token returns the token on the tile and whether the tile is occupied. If not
// occupied the returned token is the zero value and should be ignored.
func (t Tile) Token() (token Token, occupied bool) {
	if !t.occupied {
		return Token{}, false
	}
	return t.token, true
}

// SetToken places token on the tile, replacing any previous one.
func (t *Tile) SetToken(token Token) {
	t.token = token
	t.occupied = true
}

// UnsetToken removes the token from the tile.
func (t *Tile) UnsetToken() {
	t.token = Token{}
	t.occupied = false
}

// String returns a short description of the tile, e.g. "Castle*[Swede King]", where
// "*" marks an escape tile.
func (t Tile) String() string {
	s := t.tileType.String()
	if t.escape {
		s += "*"
	}
	if t.occupied {
		s += fmt.Sprintf("[%s]", t.token)
	}
	return s
}

// Encode packs the tile in one byte: bit 5 is the escape flag, bits 4-3 the tile
// type and bits 2-0 the token encoding, or 0 if unoccupied. Bits 7-6 are 0.
func (t Tile) Encode() uint8 {
	var encoded uint8
	if t.escape {
		encoded = 1 << tileEscapeShift
	}
	encoded |= (uint8(t.tileType) & tileTypeMask) << tileTypeShift
	if t.occupied {
		encoded |= t.token.Encode()
	}
	return encoded
}

// DecodeTile unpacks a tile encoded with Tile.Encode. It never fails: every byte
// maps to a tile, and the reserved bits 7-6 are ignored.
//
// The tile is occupied only if the token marker bit (0x04) is set, so 0x00 is an
// empty, unoccupied tile.
func DecodeTile(encoded uint8) Tile {
	t := NewTile(TileType((encoded>>tileTypeShift)&tileTypeMask), (encoded>>tileEscapeShift)&1 == 1)
	if token, err := DecodeToken(encoded & tokenMask); err == nil {
		t.SetToken(token)
	}
	return t
}

// DecodeTileStrict is like DecodeTile, but returns ErrFormat if any of the reserved
// bits are set.
func DecodeTileStrict(encoded uint8) (Tile, error) {
	if encoded&TileReservedBits != 0 {
		return Tile{}, errors.Wrapf(ErrFormat, "reserved bits set in tile encoding 0x%02x", encoded)
	}
	return DecodeTile(encoded), nil
}
