package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphix/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]core.Arc
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil for a nil graph, an error wrapping
// core.ErrVertexOutOfRange for a bad start vertex, ErrOptionViolation for
// bad options, or any user-supplied hook or context error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start vertex %d out of range [0,%d): %w",
			start, n, core.ErrVertexOutOfRange)
	}

	// Prepare walker; the adjacency view is obtained once for the whole run.
	w := &walker{
		adj:   g.AdjacencyList(),
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  newUnsetSlice(n),
			Parent: newUnsetSlice(n),
		},
	}

	// Seed queue with the start vertex
	w.enqueue(start, 0, unset)
	// Main loop
	return w.res, w.loop()
}

// newUnsetSlice allocates an n-slot slice filled with the unset marker.
func newUnsetSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = unset
	}

	return s
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. Visited state is Depth[v] != unset.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors expands item's neighbors in ascending id order, applying
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	for _, a := range w.adj[item.v] {
		if !w.opts.FilterNeighbor(item.v, a.To) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if w.res.Depth[a.To] == unset {
			w.enqueue(a.To, nextDepth, item.v)
		}
	}
}
