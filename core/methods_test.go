package core_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/graphix/core"
)

// TestAddEdge_UnweightedForcesUnitWeight verifies the weight argument is
// ignored for unweighted graphs.
func TestAddEdge_UnweightedForcesUnitWeight(t *testing.T) {
	g, _ := core.New(2)
	if err := g.AddEdge(0, 1, 7.5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	adj := g.AdjacencyList()
	want := []core.Arc{{To: 1, Weight: 1.0}}
	if !reflect.DeepEqual(adj[0], want) {
		t.Errorf("adj[0] = %v; want %v", adj[0], want)
	}
}

// TestAddEdge_WeightedPersistsWeight verifies weighted graphs keep the
// caller's weight on both sides of an undirected edge.
func TestAddEdge_WeightedPersistsWeight(t *testing.T) {
	g, _ := core.New(2, core.WithWeighted())
	if err := g.AddEdge(0, 1, 2.5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	adj := g.AdjacencyList()
	if got := adj[0][0].Weight; got != 2.5 {
		t.Errorf("weight at 0→1 = %v; want 2.5", got)
	}
	if got := adj[1][0].Weight; got != 2.5 {
		t.Errorf("weight at 1→0 = %v; want 2.5", got)
	}
}

// TestHasEdge_Directionality checks mirroring for undirected graphs and
// one-way records for directed graphs.
func TestHasEdge_Directionality(t *testing.T) {
	und, _ := core.New(3)
	und.AddEdge(0, 1, 1)
	if !und.HasEdge(0, 1) || !und.HasEdge(1, 0) {
		t.Error("undirected edge must be visible from both endpoints")
	}

	dir, _ := core.New(3, core.WithDirected(true))
	dir.AddEdge(0, 1, 1)
	if !dir.HasEdge(0, 1) {
		t.Error("directed edge 0→1 missing")
	}
	if dir.HasEdge(1, 0) {
		t.Error("directed graph must not mirror 1→0")
	}
	// Out-of-range indices are not an error here, just absent.
	if dir.HasEdge(-1, 0) || dir.HasEdge(0, 99) {
		t.Error("out-of-range HasEdge must report false")
	}
}

// TestEdgeCount_LogicalEdges verifies undirected mirroring does not double
// the logical edge count.
func TestEdgeCount_LogicalEdges(t *testing.T) {
	und, _ := core.New(4)
	und.AddEdge(0, 1, 1)
	und.AddEdge(1, 2, 1)
	und.AddEdge(2, 3, 1)
	if got := und.EdgeCount(); got != 3 {
		t.Errorf("undirected EdgeCount = %d; want 3", got)
	}

	dir, _ := core.New(3, core.WithDirected(true))
	dir.AddEdge(0, 1, 1)
	dir.AddEdge(1, 0, 1)
	if got := dir.EdgeCount(); got != 2 {
		t.Errorf("directed EdgeCount = %d; want 2 (mutual pair counts twice)", got)
	}
}

// TestDegree covers out-degree and its range check.
func TestDegree(t *testing.T) {
	g, _ := core.New(3, core.WithDirected(true))
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)

	if d, err := g.Degree(0); err != nil || d != 2 {
		t.Errorf("Degree(0) = %d, %v; want 2, nil", d, err)
	}
	if d, err := g.Degree(1); err != nil || d != 0 {
		t.Errorf("Degree(1) = %d, %v; want 0, nil", d, err)
	}
	if _, err := g.Degree(5); err == nil {
		t.Error("Degree(5): want error for out-of-range vertex")
	}
}

// TestNeighbors_Sorted verifies Neighbors returns an ascending copy.
func TestNeighbors_Sorted(t *testing.T) {
	g, _ := core.New(4, core.WithDirected(true))
	g.AddEdge(0, 3, 1)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)

	nbrs, err := g.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	want := []core.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 1}, {To: 3, Weight: 1}}
	if !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(0) = %v; want %v", nbrs, want)
	}
}

// TestEdges_Deduplication verifies Edges lists each undirected edge once,
// U < V, lexicographically ordered.
func TestEdges_Deduplication(t *testing.T) {
	g, _ := core.New(4)
	g.AddEdge(2, 0, 1)
	g.AddEdge(3, 1, 1)
	g.AddEdge(0, 1, 1)

	got := g.Edges()
	want := []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges = %v; want %v", got, want)
	}
}

// TestEdges_Directed verifies directed graphs list every stored record.
func TestEdges_Directed(t *testing.T) {
	g, _ := core.New(3, core.WithDirected(true))
	g.AddEdge(1, 0, 1)
	g.AddEdge(0, 1, 1)

	got := g.Edges()
	want := []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 0, Weight: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges = %v; want %v", got, want)
	}
}
