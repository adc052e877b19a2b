package builder

import "errors"

// Sentinel errors for topology construction.
var (
	// ErrTooFewVertices indicates the vertex count is below the requested
	// topology's minimum (e.g. a cycle needs at least 3 vertices).
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrDimensionMismatch indicates grid dimensions that do not multiply
	// out to the graph's vertex count.
	ErrDimensionMismatch = errors.New("builder: grid dimensions do not match vertex count")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
