// Package builder provides deterministic topology constructors for
// core.Graph: canonical fixtures (paths, cycles, stars, complete graphs,
// grids) assembled over the graph's full vertex range.
//
// Usage:
//
//	g, err := builder.Build(9, nil, builder.Grid(3, 3))
//
// Contract:
//
//   - Each Constructor validates its parameters early and returns sentinel
//     errors; none panic.
//   - Edges are emitted in a stable documented order, so the same inputs
//     always produce identical graphs.
//   - Constructors honor the graph's directed flag; every edge is inserted
//     with weight 1.0 (weighted variations belong to the caller).
//
// Errors:
//
//   - ErrTooFewVertices: the vertex count is below the topology's minimum.
//   - ErrDimensionMismatch: grid rows×cols disagrees with the vertex count.
//   - ErrNilConstructor: Build received a nil Constructor.
package builder
