package core

import (
	"fmt"
	"sort"
)

// checkVertex verifies that v lies in [0, n).
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("core: vertex %d out of range [0,%d): %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}

// AddEdge inserts the edge (u, v) with the given weight.
//
// For unweighted graphs the weight argument is ignored and 1.0 is stored.
// For undirected graphs both half-edges u→v and v→u are stored, so every
// symmetric query works from one-sided scans.
//
// Returns ErrVertexOutOfRange when an endpoint is outside [0, VertexCount),
// ErrSelfLoop when u == v.
//
// Complexity: O(1) amortized.
// Concurrency: acquires the write lock.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	// Validate endpoints before touching the store.
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if !g.weighted {
		weight = defaultWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[u] = append(g.adj[u], arc{to: v, weight: weight})
	// Mirror for undirected graphs.
	if !g.directed {
		g.adj[v] = append(g.adj[v], arc{to: u, weight: weight})
	}

	return nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether the graph is directed. Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph honors edge weights. Complexity: O(1).
func (g *Graph) Weighted() bool { return g.weighted }

// EdgeCount returns the number of logical edges: directed records for
// directed graphs, unordered pairs for undirected graphs.
// Complexity: O(V + E).
// Concurrency: acquires the read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for u, arcs := range g.adj {
		for _, a := range arcs {
			if g.directed || u < a.to {
				count++
			}
		}
	}

	return count
}

// HasEdge reports whether at least one stored record u→v exists.
// Undirected edges are mirrored at insertion, so HasEdge works both ways.
// Returns false for out-of-range indices.
// Complexity: O(deg(u)).
// Concurrency: acquires the read lock.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, a := range g.adj[u] {
		if a.to == v {
			return true
		}
	}

	return false
}

// Degree returns the number of stored half-edges leaving u
// (out-degree for directed graphs).
// Complexity: O(1).
// Concurrency: acquires the read lock.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}

// Neighbors returns a fresh copy of u's outgoing arcs,
// sorted ascending by neighbor id.
// Complexity: O(deg(u) log deg(u)).
// Concurrency: acquires the read lock.
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyRow(g.adj[u]), nil
}

// Edges returns every logical edge sorted lexicographically by (U, V).
// Directed graphs yield one record per stored arc; undirected graphs yield
// only the U < V side, counting each edge exactly once. This is the column
// source for the incidence matrix.
// Complexity: O(V + E log E).
// Concurrency: acquires the read lock.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for u, arcs := range g.adj {
		for _, a := range arcs {
			if g.directed || u < a.to {
				out = append(out, Edge{U: u, V: a.to, Weight: a.weight})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		if out[i].V != out[j].V {
			return out[i].V < out[j].V
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}
