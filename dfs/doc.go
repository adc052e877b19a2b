// Package dfs implements depth-first search (single-source and forest) on a
// core.Graph.
//
// The traversal is preorder: a vertex is recorded at the moment it is first
// entered, and neighbors are explored in ascending vertex-id order, so the
// visit order is deterministic for a given graph and start vertex.
// Unreachable vertices are absent from the result.
//
// Key features:
//
//   - DFS(g, start, opts...): traverse from a root, or the whole forest via
//     WithFullTraversal (components seeded in ascending id order).
//   - Hooks: OnVisit (preorder) and OnExit (postorder), with error aborts.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//   - Cancellation via context.Context.
//
// Complexity: O(V + E) time, O(V) memory for the recursion and result.
package dfs
