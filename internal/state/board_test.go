package state_test

import (
	"fmt"
	"testing"

	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/hnefGo/internal/state"
	. "github.com/janpfeifer/hnefGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Printf

func TestNewBoard(t *testing.T) {
	const height, width = 5, 7
	b, err := NewBoard(height, width)
	require.NoError(t, err)
	assert.Equal(t, height, b.Height())
	assert.Equal(t, width, b.Width())
	assert.Equal(t, height*width, b.Area())

	// Board is empty by default.
	count := 0
	for pos, tile := range b.All() {
		x, y := int(pos.X()), int(pos.Y())
		require.Equal(t, TileEmpty, tile.Type())
		require.Equal(t, TileEmpty, b.TileType(x, y))
		require.False(t, b.IsEscape(x, y))
		require.False(t, b.IsOccupied(x, y))
		count++
	}
	require.Equal(t, height*width, count)

	// Largest board.
	b, err = NewBoard(MaxHeight, MaxWidth)
	require.NoError(t, err)
	require.Equal(t, MaxArea, b.Area())
}

func TestNewBoardDimensions(t *testing.T) {
	for _, dims := range [][2]int{{33, 7}, {7, 33}, {0, 5}, {5, 0}, {-1, 5}, {5, -3}, {256, 256}} {
		b, err := NewBoard(dims[0], dims[1])
		require.Nil(t, b)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrDimension), "NewBoard(%d, %d) returned %v", dims[0], dims[1], err)
	}
}

func TestBoardAccessors(t *testing.T) {
	b := ReferenceBoard()
	w, h := b.Width(), b.Height()

	for _, x := range []int{0, w - 1} {
		for _, y := range []int{0, h - 1} {
			tile := b.TileAt(x, y)
			require.Equal(t, TileCastle, tile.Type())
			require.True(t, tile.IsEscape())
			require.False(t, tile.IsOccupied())
			require.False(t, b.IsOccupied(x, y))
		}
	}

	require.Equal(t, TileThrone, b.TileType(w/2, h/2))
	require.False(t, b.IsEscape(w/2, h/2))
	token, occupied := b.TokenAt(w/2, h/2)
	require.True(t, occupied)
	require.Equal(t, NewToken(Swede, King), token)

	token, occupied = b.TokenAt(w/2, 0)
	require.True(t, occupied)
	require.Equal(t, NewToken(Muscovite, Soldier), token)

	kingPos, found := b.FindKing(Swede)
	require.True(t, found)
	require.Equal(t, Pos{int8(w / 2), int8(h / 2)}, kingPos)
	_, found = b.FindKing(Muscovite)
	require.False(t, found)
	require.Equal(t, 1, b.CountTokens(Muscovite, Soldier))

	// Moving the soldier.
	b.UnsetToken(w/2, 0)
	require.False(t, b.IsOccupied(w/2, 0))
	b.SetToken(w/2, 1, token)
	require.True(t, b.IsOccupied(w/2, 1))

	// SetTile replaces everything.
	b.SetTile(w/2, 1, NewTile(TileCamp, true))
	require.False(t, b.IsOccupied(w/2, 1))
	require.True(t, b.IsEscape(w/2, 1))
	require.Equal(t, TileCamp, b.TileType(w/2, 1))

	b.SetEscape(w/2, 1, false)
	b.SetTileType(w/2, 1, TileEmpty)
	require.Equal(t, NewTile(TileEmpty, false), b.TileAt(w/2, 1))
}

func TestBoardNonSquareIndexing(t *testing.T) {
	// Every tile of a non-square board must be independently addressable.
	for _, dims := range [][2]int{{3, 8}, {8, 3}, {1, 32}, {32, 1}} {
		b, err := NewBoard(dims[0], dims[1])
		require.NoError(t, err)
		for y := range b.Height() {
			for x := range b.Width() {
				b.SetTileType(x, y, TileType((x+y)%NumTileTypes))
			}
		}
		for y := range b.Height() {
			for x := range b.Width() {
				require.Equal(t, TileType((x+y)%NumTileTypes), b.TileType(x, y),
					"board %dx%d at (%d, %d)", b.Height(), b.Width(), x, y)
			}
		}
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := ReferenceBoard()
	w, h := b.Width(), b.Height()
	for _, pos := range [][2]int{{w, 0}, {-1, 0}, {0, h}, {0, -1}, {w, h}, {MaxWidth, 0}} {
		x, y := pos[0], pos[1]
		require.False(t, b.InBounds(x, y))
		accessors := map[string]func(){
			"TileAt":      func() { b.TileAt(x, y) },
			"SetTile":     func() { b.SetTile(x, y, Tile{}) },
			"TileType":    func() { b.TileType(x, y) },
			"SetTileType": func() { b.SetTileType(x, y, TileCamp) },
			"IsEscape":    func() { b.IsEscape(x, y) },
			"SetEscape":   func() { b.SetEscape(x, y, true) },
			"IsOccupied":  func() { b.IsOccupied(x, y) },
			"TokenAt":     func() { b.TokenAt(x, y) },
			"SetToken":    func() { b.SetToken(x, y, NewToken(Swede, King)) },
			"UnsetToken":  func() { b.UnsetToken(x, y) },
		}
		for name, fn := range accessors {
			err := exceptions.TryCatch[error](fn)
			require.Error(t, err, "%s(%d, %d) should have panicked", name, x, y)
			require.True(t, errors.Is(err, ErrOutOfBounds), "%s(%d, %d) panicked with %v", name, x, y, err)
		}
	}
	// Nothing was changed by the failed accesses.
	require.True(t, b.Equal(ReferenceBoard()))
}

func TestBoardCloneAndEqual(t *testing.T) {
	b := ReferenceBoard()
	b2 := b.Clone()
	require.True(t, b.Equal(b2))

	b2.SetToken(0, 0, NewToken(Swede, Soldier))
	require.False(t, b.Equal(b2))
	require.False(t, b.IsOccupied(0, 0))

	// Different dimensions.
	b3 := BuildBoard(7, 5, nil, nil)
	b4 := BuildBoard(5, 7, nil, nil)
	require.False(t, b3.Equal(b4))
}

func TestBoardString(t *testing.T) {
	b := ReferenceBoard()
	want := "C*    m     C*\n" +
		"              \n" +
		"      S       \n" +
		"              \n" +
		"C*          C*\n"
	fmt.Print(BoardString(b))
	require.Equal(t, want, BoardString(b))
}
