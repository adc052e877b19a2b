// Package graphix is an in-memory playground for dense integer-vertex
// graphs: build a graph once over vertices 0..n-1, then query its canonical
// representations and connectivity structure.
//
// What's inside?
//
//	A small, thread-safe library organized as per-concern subpackages:
//		• core/       — the Graph type: mode flags, AddEdge, adjacency-list view
//		• matrix/     — adjacency & incidence matrix representations
//		• bfs/        — breadth-first search with hooks, depth limits, paths
//		• dfs/        — depth-first preorder traversal, single-source or forest
//		• components/ — (weakly) connected components & per-component stats
//		• builder/    — deterministic topology fixtures (path, cycle, star, …)
//
// Why graphix?
//
//   - Deterministic by contract – sorted views, stable column orders,
//     reproducible visit orders
//   - Rock-solid guarantees – R/W locks on the store, sentinel errors,
//     fresh copies from every view
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3       4───5
//
//	two components: a square {0,1,2,3} and an edge {4,5}.
//
// See each subpackage's doc.go for contracts, complexity, and errors.
package graphix
