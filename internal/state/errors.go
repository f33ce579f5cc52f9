package state

import "github.com/pkg/errors"

// Errors returned (or, for ErrOutOfBounds, panicked) by the state package. They are
// always wrapped with context, use errors.Is to test for them.
var (
	// ErrDimension is returned when creating a board with non-positive dimensions or
	// dimensions larger than MaxHeight x MaxWidth.
	ErrDimension = errors.New("invalid board dimensions")

	// ErrOutOfBounds is the error panicked when a coordinate outside the board is
	// accessed: it's a bug in the caller, and it is not recoverable.
	ErrOutOfBounds = errors.New("coordinate out of board bounds")

	// ErrFormat is returned when decoding a malformed or truncated buffer, or when
	// encoding into a buffer too small.
	ErrFormat = errors.New("invalid board encoding")

	// ErrInvalidToken is returned by DecodeToken when no token is encoded. Tile decoding
	// uses it to tell unoccupied tiles apart, it's never returned by tile or board
	// decoding.
	ErrInvalidToken = errors.New("invalid token encoding")
)
