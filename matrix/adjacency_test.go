package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphix/core"
	"github.com/katalvlaran/graphix/matrix"
)

// TestAdjacencyMatrix_Undirected verifies symmetry, zero diagonal, and
// weight placement.
func TestAdjacencyMatrix_Undirected(t *testing.T) {
	g, err := core.New(3, core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2.5))
	require.NoError(t, g.AddEdge(1, 2, 4))

	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	require.Equal(t, 3, m.VertexCount())

	want := [][]float64{
		{0, 2.5, 0},
		{2.5, 0, 4},
		{0, 4, 0},
	}
	require.Equal(t, want, m.Dense())

	// Diagonal stays zero for every vertex.
	for u := 0; u < 3; u++ {
		v, err := m.At(u, u)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

// TestAdjacencyMatrix_Directed verifies one-sided placement.
func TestAdjacencyMatrix_Directed(t *testing.T) {
	g, err := core.New(2, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestAdjacencyMatrix_Errors covers the nil graph and index guards.
func TestAdjacencyMatrix_Errors(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	g, err := core.New(2)
	require.NoError(t, err)
	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestAdjacencyMatrix_Snapshot verifies the matrix is a private snapshot:
// later graph mutation and Dense() tampering must not leak either way.
func TestAdjacencyMatrix_Snapshot(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 1))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v, "matrix built before AddEdge must not see the edge")

	d := m.Dense()
	d[0][1] = 42
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v, "Dense copy must be independent")
}
