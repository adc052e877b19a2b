package components_test

import (
	"testing"

	"github.com/katalvlaran/graphix/builder"
	"github.com/katalvlaran/graphix/components"
	"github.com/katalvlaran/graphix/core"
)

// BenchmarkComponents_ManyIslands measures the sweep over a graph of many
// small components (pairs).
func BenchmarkComponents_ManyIslands(b *testing.B) {
	const pairs = 5000
	g, err := core.New(2 * pairs)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < pairs; i++ {
		_ = g.AddEdge(2*i, 2*i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.Components(g)
	}
}

// BenchmarkWithStats_Grid measures stats derivation on one large component.
func BenchmarkWithStats_Grid(b *testing.B) {
	const side = 100
	g, err := builder.Build(side*side, nil, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.WithStats(g)
	}
}
