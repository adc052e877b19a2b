package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
)

// ExampleGraph_AdjacencyList builds a small undirected triangle plus a
// pendant vertex and prints the sorted adjacency view.
func ExampleGraph_AdjacencyList() {
	g, _ := core.New(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 0, 1)
	g.AddEdge(2, 3, 1)

	for u, row := range g.AdjacencyList() {
		fmt.Print(u, ":")
		for _, a := range row {
			fmt.Print(" ", a.To)
		}
		fmt.Println()
	}
	// Output:
	// 0: 1 2
	// 1: 0 2
	// 2: 0 1 3
	// 3: 2
}

// ExampleGraph_Edges shows the deduplicated logical edge list of an
// undirected graph.
func ExampleGraph_Edges() {
	g, _ := core.New(3)
	g.AddEdge(2, 1, 1)
	g.AddEdge(1, 0, 1)

	for _, e := range g.Edges() {
		fmt.Printf("(%d,%d)\n", e.U, e.V)
	}
	// Output:
	// (0,1)
	// (1,2)
}
