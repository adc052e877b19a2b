// Package components discovers connectivity structure of a core.Graph and
// derives per-component statistics.
//
// What:
//
//   - Components returns the connected components of an undirected graph, or
//     the weakly connected components of a directed graph: edge direction is
//     ignored by building a symmetric adjacency view before sweeping.
//   - WithStats augments each component with its node count, edge count, and
//     smallest vertex, ordered largest-first.
//
// Determinism:
//
//   - Each component's vertex list is sorted ascending; the component list
//     is ordered by smallest member (a total order, since smallest members
//     are distinct across components).
//   - WithStats orders by descending NodeCount, then descending EdgeCount,
//     then ascending SmallestVertex.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
//
// Errors:
//
//   - ErrGraphNil: a nil *core.Graph was passed.
package components
