package builder

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
)

// unitWeight is the weight every constructor passes to AddEdge; unweighted
// graphs store it anyway, weighted graphs get a uniform baseline.
const unitWeight = 1.0

// Constructor applies a deterministic topology to an already-created graph.
// Implementations validate parameters against g.VertexCount(), emit edges in
// a stable order, and return only sentinel errors.
type Constructor func(g *core.Graph) error

// Build creates a graph over vertexCount vertices with the given core
// options and applies all constructors in order. Any constructor error is
// wrapped and returned immediately.
func Build(vertexCount int, gopts []core.Option, cons ...Constructor) (*core.Graph, error) {
	g, err := core.New(vertexCount, gopts...)
	if err != nil {
		return nil, fmt.Errorf("builder: Build: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err = fn(g); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return g, nil
}

// Path connects i-1 — i for i = 1..n-1, a simple path P_n. Requires n ≥ 2.
func Path() Constructor {
	return func(g *core.Graph) error {
		n := g.VertexCount()
		if n < 2 {
			return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(i-1, i, unitWeight); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i-1, i, err)
			}
		}

		return nil
	}
}

// Cycle builds the path edges plus the closing edge n-1 — 0, the cycle C_n.
// Requires n ≥ 3, so the closing edge is neither a loop nor a duplicate.
func Cycle() Constructor {
	return func(g *core.Graph) error {
		n := g.VertexCount()
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := Path()(g); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		if err := g.AddEdge(n-1, 0, unitWeight); err != nil {
			return fmt.Errorf("Cycle: AddEdge(%d,0): %w", n-1, err)
		}

		return nil
	}
}

// Star connects vertex 0 to every other vertex, the star S_n with center 0.
// Requires n ≥ 2.
func Star() Constructor {
	return func(g *core.Graph) error {
		n := g.VertexCount()
		if n < 2 {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
		}
		for v := 1; v < n; v++ {
			if err := g.AddEdge(0, v, unitWeight); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", v, err)
			}
		}

		return nil
	}
}

// Complete connects every pair u < v, the complete graph K_n. Requires n ≥ 2.
// On directed graphs this emits the lexicographic tournament orientation.
func Complete() Constructor {
	return func(g *core.Graph) error {
		n := g.VertexCount()
		if n < 2 {
			return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if err := g.AddEdge(u, v, unitWeight); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", u, v, err)
				}
			}
		}

		return nil
	}
}

// Grid lays the vertices out row-major as a rows×cols lattice and connects
// each cell to its right and down neighbors. Requires rows ≥ 1, cols ≥ 1,
// and rows*cols == VertexCount.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		if rows*cols != g.VertexCount() {
			return fmt.Errorf("Grid: %dx%d != %d vertices: %w",
				rows, cols, g.VertexCount(), ErrDimensionMismatch)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := g.AddEdge(v, v+1, unitWeight); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d): %w", v, v+1, err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(v, v+cols, unitWeight); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d): %w", v, v+cols, err)
					}
				}
			}
		}

		return nil
	}
}
