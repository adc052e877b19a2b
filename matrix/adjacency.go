package matrix

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
)

// AdjacencyMatrix is the n×n weight representation of a graph.
//
// cells[u][v] holds the weight of edge u→v, 0 when no edge exists and always
// 0 on the diagonal (self-loops are rejected at insertion). For undirected
// graphs the matrix is symmetric. When the same ordered pair was inserted
// more than once, the last stored weight wins.
type AdjacencyMatrix struct {
	cells [][]float64
}

// NewAdjacencyMatrix builds the adjacency matrix of g from a fresh snapshot
// of its adjacency state. Returns ErrGraphNil on nil input.
// Complexity: O(V² + E).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", ErrGraphNil)
	}

	n := g.VertexCount()
	cells := make([][]float64, n)
	for u := range cells {
		cells[u] = make([]float64, n)
	}
	// One snapshot of the adjacency state; rows are already sorted, which
	// keeps duplicate-pair overwrites deterministic.
	for u, row := range g.AdjacencyList() {
		for _, a := range row {
			cells[u][a.To] = a.Weight
		}
	}

	return &AdjacencyMatrix{cells: cells}, nil
}

// VertexCount returns the number of rows (= columns). Complexity: O(1).
func (m *AdjacencyMatrix) VertexCount() int { return len(m.cells) }

// At returns the weight of edge u→v, or 0 when no such edge exists.
// Returns ErrIndexOutOfBounds for indices outside [0, VertexCount).
// Complexity: O(1).
func (m *AdjacencyMatrix) At(u, v int) (float64, error) {
	n := len(m.cells)
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, fmt.Errorf("At(%d,%d): range [0,%d): %w", u, v, n, ErrIndexOutOfBounds)
	}

	return m.cells[u][v], nil
}

// Row returns a copy of row u. Returns ErrIndexOutOfBounds for a bad index.
// Complexity: O(V).
func (m *AdjacencyMatrix) Row(u int) ([]float64, error) {
	if u < 0 || u >= len(m.cells) {
		return nil, fmt.Errorf("Row(%d): range [0,%d): %w", u, len(m.cells), ErrIndexOutOfBounds)
	}
	out := make([]float64, len(m.cells[u]))
	copy(out, m.cells[u])

	return out, nil
}

// Dense returns a deep copy of the full matrix; mutating it never affects
// the receiver. Complexity: O(V²).
func (m *AdjacencyMatrix) Dense() [][]float64 {
	out := make([][]float64, len(m.cells))
	for u, row := range m.cells {
		out[u] = make([]float64, len(row))
		copy(out[u], row)
	}

	return out
}
