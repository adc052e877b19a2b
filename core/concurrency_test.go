// Package core_test verifies thread-safety of core.Graph under concurrent use.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphix/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and every
// insertion lands.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.New(num+1, core.WithDirected(true))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(v int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, v+1, 1))
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, num, d)
}

// TestConcurrentReadDuringWrite mixes AddEdge with view queries to verify no
// races or panics; each snapshot must be internally consistent.
func TestConcurrentReadDuringWrite(t *testing.T) {
	const rounds = 100
	g, err := core.New(rounds + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(v int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(v, v+1, 1))
		}(i)
		go func() {
			defer wg.Done()
			adj := g.AdjacencyList()
			require.Len(t, adj, rounds+1)
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
