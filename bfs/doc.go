// Package bfs provides breadth-first search over a core.Graph, returning the
// deterministic visit order plus unweighted distances and parent links.
//
// BFS explores vertices in increasing distance from a start vertex. The
// adjacency-list view is obtained exactly once per run, neighbors expand in
// ascending vertex-id order (guaranteed by the view's sort contract), and a
// vertex is marked visited at the moment it is enqueued, so each reachable
// vertex appears exactly once in the result. Unreachable vertices are simply
// absent.
//
// Options support cancellation via context, enqueue/dequeue/visit hooks,
// depth limiting, and neighbor filtering.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
