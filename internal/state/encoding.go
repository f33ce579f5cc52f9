package state

// This file holds the binary encoding of a Board:
//
//	offset 0:                height, 1 to MaxHeight
//	offset 1:                width, 1 to MaxWidth
//	offset 2 + width*y + x:  tile at (x, y), see Tile.Encode
//
// The total length is height*width + 2.

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// EncodingHeaderLen is the number of bytes before the tiles in a board encoding.
const EncodingHeaderLen = 2

// EncodedLen returns the number of bytes needed to encode the board.
func (b *Board) EncodedLen() int {
	return b.Area() + EncodingHeaderLen
}

// Encode the board into buffer, which must have at least EncodedLen() bytes, otherwise
// ErrFormat is returned and buffer is not touched. Only the first EncodedLen() bytes are
// written.
func (b *Board) Encode(buffer []byte) error {
	if len(buffer) < b.EncodedLen() {
		return errors.Wrapf(ErrFormat, "buffer of %d bytes too small to encode %dx%d board, %d bytes required",
			len(buffer), b.height, b.width, b.EncodedLen())
	}
	buffer[0] = uint8(b.height)
	buffer[1] = uint8(b.width)
	tilesBuf := buffer[EncodingHeaderLen:]
	for y := range b.height {
		for x := range b.width {
			idx := b.width*y + x
			tilesBuf[idx] = b.tiles[idx].Encode()
		}
	}
	return nil
}

// AppendBinary appends the board encoding to buf. It implements encoding.BinaryAppender.
func (b *Board) AppendBinary(buf []byte) ([]byte, error) {
	start := len(buf)
	buf = append(buf, make([]byte, b.EncodedLen())...)
	if err := b.Encode(buf[start:]); err != nil {
		return nil, err
	}
	return buf, nil
}

// MarshalBinary returns the board encoding. It implements encoding.BinaryMarshaler.
func (b *Board) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, b.EncodedLen()))
}

// UnmarshalBinary replaces b with the board decoded from data, as DecodeBoard does. If
// decoding fails, b is left untouched. It implements encoding.BinaryUnmarshaler.
func (b *Board) UnmarshalBinary(data []byte) error {
	newB, err := DecodeBoard(data)
	if err != nil {
		return err
	}
	*b = *newB
	return nil
}

// DecodeBoard decodes a board encoded with Board.Encode.
//
// It returns ErrFormat if the buffer doesn't hold a header, if the declared dimensions
// are invalid, or if the buffer is shorter than height*width+2 bytes. Extra bytes after
// the tiles are ignored, as are the reserved bits of each tile. See DecodeBoardStrict
// for a version that rejects both.
func DecodeBoard(buffer []byte) (*Board, error) {
	return decodeBoard(buffer, false)
}

// DecodeBoardStrict is like DecodeBoard, but it also returns ErrFormat if any tile
// has reserved bits set or if there are extra bytes after the last tile.
func DecodeBoardStrict(buffer []byte) (*Board, error) {
	return decodeBoard(buffer, true)
}

func decodeBoard(buffer []byte, strict bool) (*Board, error) {
	if len(buffer) < EncodingHeaderLen {
		return nil, errors.Wrapf(ErrFormat, "buffer of %d bytes has no board header", len(buffer))
	}
	height, width := int(buffer[0]), int(buffer[1])
	b, err := NewBoard(height, width)
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "invalid dimensions in board header: %v", err)
	}
	required := b.EncodedLen()
	if len(buffer) < required {
		return nil, errors.Wrapf(ErrFormat, "truncated buffer: %dx%d board requires %d bytes, got %d",
			height, width, required, len(buffer))
	}
	if strict && len(buffer) > required {
		return nil, errors.Wrapf(ErrFormat, "%d extra bytes after %dx%d board",
			len(buffer)-required, height, width)
	}
	klog.V(2).Infof("Decoding %dx%d board (strict=%v) from %d bytes", height, width, strict, len(buffer))

	tilesBuf := buffer[EncodingHeaderLen:required]
	for idx, encoded := range tilesBuf {
		if !strict {
			b.tiles[idx] = DecodeTile(encoded)
			continue
		}
		tile, err := DecodeTileStrict(encoded)
		if err != nil {
			klog.V(1).Infof("Strict decoding rejected tile at (%d, %d)", idx%width, idx/width)
			return nil, errors.WithMessagef(err, "tile at (%d, %d)", idx%width, idx/width)
		}
		b.tiles[idx] = tile
	}
	return b, nil
}
