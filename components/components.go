package components

import (
	"errors"
	"sort"

	"github.com/katalvlaran/graphix/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Components returns the connected components of g, ignoring edge direction:
// directed graphs yield their weakly connected components.
//
// Each component is a sorted ascending list of vertex ids; the outer list is
// ordered by each component's smallest vertex.
//
// Complexity: O(V + E log E).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	sym := symmetricAdjacency(g.AdjacencyList(), n)

	visited := make([]bool, n)
	var comps [][]int
	// Seeding in ascending id order makes each new component's first vertex
	// its smallest, so the outer list comes out ordered by construction.
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		// BFS to collect the component
		queue := []int{s}
		visited[s] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range sym[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// symmetricAdjacency builds an undirected neighbor view from the one-sided
// adjacency rows: every record u→v contributes both u–v and v–u. Each row is
// deduplicated and sorted ascending.
func symmetricAdjacency(adj [][]core.Arc, n int) [][]int {
	sym := make([][]int, n)
	for u, row := range adj {
		for _, a := range row {
			sym[u] = append(sym[u], a.To)
			sym[a.To] = append(sym[a.To], u)
		}
	}
	for u := range sym {
		sort.Ints(sym[u])
		sym[u] = dedupSorted(sym[u])
	}

	return sym
}

// dedupSorted removes duplicates from a sorted slice in place.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
