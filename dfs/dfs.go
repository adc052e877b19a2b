package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  [][]core.Arc
	opts Options
	res  *Result
}

// DFS performs depth-first search on g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise it starts only from start.
// Returns ErrGraphNil for a nil graph, an error wrapping
// core.ErrVertexOutOfRange for a bad start vertex, or any hook/context error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	n := g.VertexCount()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: start vertex %d out of range [0,%d): %w",
			start, n, core.ErrVertexOutOfRange)
	}

	// 4. Initialize walker; the adjacency view is obtained once per run.
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   newUnsetSlice(n),
		Parent:  newUnsetSlice(n),
		Visited: make([]bool, n),
	}
	w := &dfsWalker{adj: g.AdjacencyList(), opts: o, res: res}

	// 5. Traverse: forest or single tree
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := w.traverse(v, 0, unset); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.traverse(start, 0, unset); err != nil {
			return res, err
		}
	}

	return res, nil
}

// newUnsetSlice allocates an n-slot slice filled with the unset marker.
func newUnsetSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = unset
	}

	return s
}

// traverse visits vertex v at the given depth, recursing to neighbors in
// ascending id order. It honors cancellation, the depth limit, hooks, and
// neighbor filtering.
func (w *dfsWalker) traverse(v, depth, parent int) error {
	// Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// Mark visited, record preorder position and tree links
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)

	// Preorder hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// Depth limit: record the vertex but do not descend further
	if w.opts.MaxDepth != noDepthLimit && depth >= w.opts.MaxDepth {
		return w.exit(v)
	}

	// Explore neighbors; the row is already sorted ascending
	for _, a := range w.adj[v] {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, a.To) {
			w.res.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[a.To] {
			if err := w.traverse(a.To, depth+1, v); err != nil {
				return err
			}
		}
	}

	return w.exit(v)
}

// exit runs the postorder hook, if any.
func (w *dfsWalker) exit(v int) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}
