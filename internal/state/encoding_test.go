package state_test

import (
	"encoding"
	"testing"

	. "github.com/janpfeifer/hnefGo/internal/state"
	. "github.com/janpfeifer/hnefGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ encoding.BinaryMarshaler   = (*Board)(nil)
	_ encoding.BinaryUnmarshaler = (*Board)(nil)
	_ encoding.BinaryAppender    = (*Board)(nil)
)

// requireSameBoard checks that dimensions, tile types, escape flags and tokens are the same.
func requireSameBoard(t *testing.T, want, got *Board) {
	require.Equal(t, want.Height(), got.Height())
	require.Equal(t, want.Width(), got.Width())
	require.Equal(t, want.Area(), got.Area())
	for y := range want.Height() {
		for x := range want.Width() {
			require.Equal(t, want.TileType(x, y), got.TileType(x, y), "tile type at (%d, %d)", x, y)
			require.Equal(t, want.IsEscape(x, y), got.IsEscape(x, y), "escape at (%d, %d)", x, y)
			wantToken, wantOccupied := want.TokenAt(x, y)
			gotToken, gotOccupied := got.TokenAt(x, y)
			require.Equal(t, wantOccupied, gotOccupied, "occupied at (%d, %d)", x, y)
			require.Equal(t, wantToken, gotToken, "token at (%d, %d)", x, y)
		}
	}
}

func TestBoardRoundTrip(t *testing.T) {
	b := ReferenceBoard()
	buf := make([]byte, 5*7+2)
	require.Equal(t, len(buf), b.EncodedLen())
	require.NoError(t, b.Encode(buf))

	b2, err := DecodeBoard(buf)
	require.NoError(t, err)
	requireSameBoard(t, b, b2)
	require.True(t, b.Equal(b2))

	// Strict decoding accepts what Encode writes.
	b3, err := DecodeBoardStrict(buf)
	require.NoError(t, err)
	require.True(t, b.Equal(b3))
}

func TestBoardEncodingLayout(t *testing.T) {
	b := ReferenceBoard()
	buf, err := b.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, 37)

	want := make([]byte, 37)
	want[0], want[1] = 5, 7
	// Corners: castle + escape, at 2 + width*y + x.
	for _, offset := range []int{0, 6, 7 * 4, 7*4 + 6} {
		want[2+offset] = 0x28
	}
	want[2+7*2+3] = 0x17 // Throne with the Swede king.
	want[2+3] = 0x04     // Muscovite soldier on an empty tile.
	assert.Equal(t, want, buf)
}

func TestBoardEncodeSmallBuffer(t *testing.T) {
	b := ReferenceBoard()
	buf := make([]byte, b.EncodedLen()-1)
	err := b.Encode(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFormat))
	require.Equal(t, make([]byte, len(buf)), buf, "buffer should be untouched")

	// Larger buffers are fine, and only EncodedLen bytes are written.
	buf = make([]byte, b.EncodedLen()+3)
	buf[b.EncodedLen()] = 0xFF
	require.NoError(t, b.Encode(buf))
	require.Equal(t, uint8(0xFF), buf[b.EncodedLen()])
}

func TestAppendBinary(t *testing.T) {
	b := ReferenceBoard()
	prefix := []byte("hnef")
	buf, err := b.AppendBinary(prefix)
	require.NoError(t, err)
	require.Equal(t, "hnef", string(buf[:4]))
	b2, err := DecodeBoard(buf[4:])
	require.NoError(t, err)
	require.True(t, b.Equal(b2))
}

func TestNonSquareRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{3, 8}, {8, 3}, {1, 32}, {32, 1}, {32, 32}} {
		height, width := dims[0], dims[1]
		b := BuildBoard(height, width, nil, nil)
		for y := range height {
			for x := range width {
				b.SetTileType(x, y, TileType((x*7+y)%NumTileTypes))
				b.SetEscape(x, y, (x+y)%3 == 0)
				if (x+2*y)%5 != 0 {
					b.SetToken(x, y, NewToken(Team((x+y)%2), Rank(y%2)))
				}
			}
		}
		buf, err := b.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, buf, height*width+2)
		// Row-major, with a stride of width.
		for y := range height {
			for x := range width {
				require.Equal(t, b.TileAt(x, y).Encode(), buf[2+width*y+x])
			}
		}

		b2, err := DecodeBoard(buf)
		require.NoError(t, err)
		requireSameBoard(t, b, b2)
	}
}

func TestDecodeBoardTruncated(t *testing.T) {
	buf, err := ReferenceBoard().MarshalBinary()
	require.NoError(t, err)
	for _, size := range []int{0, 1, 2, 10, len(buf) - 1} {
		b, err := DecodeBoard(buf[:size])
		require.Nil(t, b)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrFormat), "DecodeBoard(%d bytes) returned %v", size, err)
	}
}

func TestDecodeBoardInvalidDimensions(t *testing.T) {
	for _, header := range [][2]byte{{0, 5}, {5, 0}, {33, 5}, {5, 33}, {255, 255}} {
		buf := make([]byte, 2+int(header[0])*int(header[1]))
		buf[0], buf[1] = header[0], header[1]
		b, err := DecodeBoard(buf)
		require.Nil(t, b)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrFormat), "DecodeBoard(%v) returned %v", header, err)
	}
}

func TestDecodeBoardReservedBitsAndTrailingBytes(t *testing.T) {
	buf, err := ReferenceBoard().MarshalBinary()
	require.NoError(t, err)
	buf[2] |= 0x40 // Reserved bit on tile (0, 0).
	buf = append(buf, 0x00)

	// Lenient decoding ignores both.
	b, err := DecodeBoard(buf)
	require.NoError(t, err)
	require.True(t, b.Equal(ReferenceBoard()))

	// Strict decoding rejects extra bytes ...
	_, err = DecodeBoardStrict(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFormat))

	// ... and reserved bits.
	_, err = DecodeBoardStrict(buf[:len(buf)-1])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFormat))
}

func TestUnmarshalBinary(t *testing.T) {
	buf, err := ReferenceBoard().MarshalBinary()
	require.NoError(t, err)

	b := BuildBoard(2, 2, nil, []TokenOnBoard{{Pos: Pos{1, 1}, Team: Swede, Rank: King}})
	require.NoError(t, b.UnmarshalBinary(buf))
	require.True(t, b.Equal(ReferenceBoard()))

	// Failure leaves the board untouched.
	err = b.UnmarshalBinary(buf[:len(buf)-2])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFormat))
	require.True(t, b.Equal(ReferenceBoard()))
}
