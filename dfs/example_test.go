package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
	"github.com/katalvlaran/graphix/dfs"
)

// ExampleDFS shows preorder traversal of a small tree: the search dives
// through the lowest-numbered neighbor before backtracking.
func ExampleDFS() {
	//      0
	//     / \
	//    1   4
	//   / \
	//  2   3
	g, _ := core.New(5)
	g.AddEdge(0, 4, 1)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 1)

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3 4]
}
