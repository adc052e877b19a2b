// Package core defines the Graph type, its construction options,
// and the sentinel errors shared across the module.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates New was called with vertexCount < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	// Traversal packages wrap this sentinel when rejecting start vertices,
	// so errors.Is works across package boundaries.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an attempt to add an edge (u, u).
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// defaultWeight is the weight persisted for every edge of an unweighted graph,
// regardless of the weight argument passed to AddEdge.
const defaultWeight = 1.0

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected; default false).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted makes the graph honor the weight argument of AddEdge.
// Unweighted graphs store every edge with weight 1.0.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// arc is one stored half-edge: the neighbor it reaches and the edge weight.
// Undirected insertion stores two mirrored arcs, one per endpoint.
type arc struct {
	to     int
	weight float64
}

// Arc is the exported (neighbor, weight) record returned by adjacency views.
type Arc struct {
	// To is the neighbor vertex id.
	To int

	// Weight is the edge weight; always 1.0 for unweighted graphs.
	Weight float64
}

// Edge is one logical edge record: endpoints and weight.
// For undirected graphs the endpoints satisfy U < V, so each logical edge
// appears exactly once regardless of mirrored storage.
type Edge struct {
	U, V   int
	Weight float64
}

// Graph is the core in-memory graph over vertices 0..n-1.
//
// The vertex count and mode flags are fixed at construction; only AddEdge
// mutates the adjacency store.
type Graph struct {
	mu sync.RWMutex // guards adj

	n        int  // vertex count, immutable after New
	directed bool // default false: undirected
	weighted bool // default false: every edge weighs 1.0

	// adj[u] lists every stored half-edge leaving u, in insertion order.
	// Views sort their copies; the store itself is never reordered.
	adj [][]arc
}

// New creates a Graph over vertices 0..vertexCount-1 with the given options.
// Returns ErrNegativeVertexCount when vertexCount < 0.
// Complexity: O(V).
func New(vertexCount int, opts ...Option) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("core: New(%d): %w", vertexCount, ErrNegativeVertexCount)
	}
	g := &Graph{
		n:   vertexCount,
		adj: make([][]arc, vertexCount),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
