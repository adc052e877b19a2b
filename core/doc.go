// Package core provides the fundamental dense-index Graph implementation:
// a finite graph over vertices 0..n-1, directed or undirected, weighted or
// unweighted, built once through AddEdge and then queried through
// representation views.
//
// What:
//
//   - Graph holds an immutable vertex count, mode flags, and an adjacency
//     store indexed by vertex id.
//   - AddEdge inserts one edge at a time; there is no removal.
//   - AdjacencyList returns a deep, neighbor-sorted copy of the adjacency
//     store; matrix representations live in the matrix subpackage.
//
// Concurrency:
//
//   - A single sync.RWMutex guards the adjacency store. AddEdge acquires the
//     write lock; every view and getter acquires the read lock, so the
//     intended build-then-query usage is safe even when callers interleave.
//
// Complexity:
//
//   - AddEdge: O(1) amortized.
//   - AdjacencyList: O(V + E log E) for copy and per-row sorting.
//
// Errors:
//
//   - ErrNegativeVertexCount: New called with a negative vertex count.
//   - ErrVertexOutOfRange: a vertex index argument outside [0, n).
//   - ErrSelfLoop: AddEdge called with equal endpoints.
package core
