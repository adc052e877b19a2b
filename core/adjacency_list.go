package core

import "sort"

// copyRow clones one adjacency row into exported Arcs,
// sorted ascending by neighbor id, then by weight for determinism.
func copyRow(arcs []arc) []Arc {
	row := make([]Arc, len(arcs))
	for i, a := range arcs {
		row[i] = Arc{To: a.to, Weight: a.weight}
	}
	sort.Slice(row, func(i, j int) bool {
		if row[i].To != row[j].To {
			return row[i].To < row[j].To
		}

		return row[i].Weight < row[j].Weight
	})

	return row
}

// AdjacencyList returns the graph as a deep, independent copy of the
// adjacency store: one row per vertex, each row sorted ascending by
// neighbor id. Mutating the result never affects the graph.
//
// Undirected edges appear in both endpoint rows; the view is recomputed on
// every call, never cached.
//
// Complexity: O(V + E log E).
// Concurrency: acquires the read lock.
func (g *Graph) AdjacencyList() [][]Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Arc, g.n)
	for u, arcs := range g.adj {
		out[u] = copyRow(arcs)
	}

	return out
}
