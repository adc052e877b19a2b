package components

import (
	"sort"

	"github.com/katalvlaran/graphix/core"
)

// Stats describes one connected component.
type Stats struct {
	// Vertices is the sorted ascending member list.
	Vertices []int

	// NodeCount is len(Vertices).
	NodeCount int

	// EdgeCount counts edges with both endpoints inside the component:
	// logical edges for undirected graphs, directed records for directed
	// graphs (a mutual pair counts twice).
	EdgeCount int

	// SmallestVertex is Vertices[0].
	SmallestVertex int
}

// WithStats computes Stats for every component of g, ordered by descending
// NodeCount, then descending EdgeCount, then ascending SmallestVertex —
// a total order, since SmallestVertex is unique per component.
//
// Complexity: O(V + E log E).
func WithStats(g *core.Graph) ([]Stats, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}

	adj := g.AdjacencyList()
	directed := g.Directed()
	// member[v] is the index of v's component; components partition the
	// vertex set, so a flat lookup table replaces per-component sets.
	member := make([]int, g.VertexCount())
	for ci, comp := range comps {
		for _, v := range comp {
			member[v] = ci
		}
	}

	out := make([]Stats, 0, len(comps))
	for ci, comp := range comps {
		edges := 0
		for _, u := range comp {
			for _, a := range adj[u] {
				if member[a.To] != ci {
					continue
				}
				// Undirected rows mirror each edge; count the u < v side only.
				if directed || u < a.To {
					edges++
				}
			}
		}
		out = append(out, Stats{
			Vertices:       comp,
			NodeCount:      len(comp),
			EdgeCount:      edges,
			SmallestVertex: comp[0],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].NodeCount != out[j].NodeCount {
			return out[i].NodeCount > out[j].NodeCount
		}
		if out[i].EdgeCount != out[j].EdgeCount {
			return out[i].EdgeCount > out[j].EdgeCount
		}

		return out[i].SmallestVertex < out[j].SmallestVertex
	})

	return out, nil
}
