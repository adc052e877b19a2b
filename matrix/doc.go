// Package matrix provides the adjacency-matrix and incidence-matrix
// representations of a core.Graph.
//
// What:
//
//   - AdjacencyMatrix: an n×n weight matrix; entry [u][v] holds the weight of
//     edge u→v (0 when absent, always 0 on the diagonal).
//   - IncidenceMatrix: an n×m signed indicator matrix, one column per logical
//     edge; directed columns carry −1 at the source row and +1 at the target
//     row, undirected columns carry +1 at both endpoint rows.
//
// Both representations are pure functions of the graph's adjacency state:
// each constructor takes a private snapshot, so later graph mutations never
// leak into an already-built matrix, and nothing is cached between calls.
//
// Determinism:
//
//   - Incidence columns are ordered lexicographically by (u, v) endpoints;
//     undirected edges are counted exactly once via the u < v record.
//
// Complexity:
//
//   - NewAdjacencyMatrix: O(V² + E) time, O(V²) space.
//   - NewIncidenceMatrix: O(V·E) time and space.
//
// Errors:
//
//   - ErrGraphNil: a nil *core.Graph was passed to a constructor.
//   - ErrIndexOutOfBounds: a row or column index is outside the matrix.
//   - ErrColumnOutOfRange: an edge column index is outside [0, EdgeCount).
package matrix
