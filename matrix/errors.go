package matrix

import "errors"

// Sentinel errors for matrix construction and access.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed to a constructor.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrColumnOutOfRange indicates an edge column index outside [0, EdgeCount).
	ErrColumnOutOfRange = errors.New("matrix: edge column out of range")
)
