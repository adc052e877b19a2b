package matrix

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
)

// Incidence marks.
const (
	// srcMark is placed at the source vertex row of a directed column.
	srcMark = -1

	// dstMark is placed at the target vertex row of a directed column.
	dstMark = +1

	// undirectedMark is placed at both endpoint rows of an undirected column.
	undirectedMark = +1
)

// IncidenceMatrix is the n×m vertex-by-edge representation of a graph.
//
// Each column corresponds to one logical edge; edges holds the column-aligned
// endpoint records. Columns are ordered lexicographically by (U, V), and for
// undirected graphs every column satisfies U < V, so duplicated mirror
// storage never produces a duplicate column.
type IncidenceMatrix struct {
	cells [][]int
	edges []core.Edge
}

// NewIncidenceMatrix builds the incidence matrix of g from a fresh snapshot
// of its logical edge set. Returns ErrGraphNil on nil input.
// Complexity: O(V·E).
func NewIncidenceMatrix(g *core.Graph) (*IncidenceMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("NewIncidenceMatrix: %w", ErrGraphNil)
	}

	// Edges() already applies the mode's column rules: every stored record
	// for directed graphs, only the u < v side for undirected graphs, both
	// sorted lexicographically.
	edges := g.Edges()
	n := g.VertexCount()

	cells := make([][]int, n)
	for u := range cells {
		cells[u] = make([]int, len(edges))
	}
	for j, e := range edges {
		if g.Directed() {
			cells[e.U][j] = srcMark
			cells[e.V][j] = dstMark
		} else {
			cells[e.U][j] = undirectedMark
			cells[e.V][j] = undirectedMark
		}
	}

	return &IncidenceMatrix{cells: cells, edges: edges}, nil
}

// VertexCount returns the number of rows. Complexity: O(1).
func (m *IncidenceMatrix) VertexCount() int { return len(m.cells) }

// EdgeCount returns the number of columns. Complexity: O(1).
func (m *IncidenceMatrix) EdgeCount() int { return len(m.edges) }

// EdgeEndpoints returns the (u, v) endpoints of the edge behind column j.
// Returns ErrColumnOutOfRange when j is outside [0, EdgeCount).
// Complexity: O(1).
func (m *IncidenceMatrix) EdgeEndpoints(j int) (u, v int, err error) {
	if j < 0 || j >= len(m.edges) {
		return 0, 0, fmt.Errorf("EdgeEndpoints: column %d out of range [0,%d): %w",
			j, len(m.edges), ErrColumnOutOfRange)
	}
	e := m.edges[j]

	return e.U, e.V, nil
}

// VertexIncidence returns a copy of the incidence row for vertex u.
// Returns ErrIndexOutOfBounds for a bad index.
// Complexity: O(E).
func (m *IncidenceMatrix) VertexIncidence(u int) ([]int, error) {
	if u < 0 || u >= len(m.cells) {
		return nil, fmt.Errorf("VertexIncidence(%d): range [0,%d): %w", u, len(m.cells), ErrIndexOutOfBounds)
	}
	out := make([]int, len(m.cells[u]))
	copy(out, m.cells[u])

	return out, nil
}

// Dense returns a deep copy of the full matrix; mutating it never affects
// the receiver. Complexity: O(V·E).
func (m *IncidenceMatrix) Dense() [][]int {
	out := make([][]int, len(m.cells))
	for u, row := range m.cells {
		out[u] = make([]int, len(row))
		copy(out[u], row)
	}

	return out
}
