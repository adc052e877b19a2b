// Package dfs defines types and options for depth-first traversal, including
// cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// unset marks a Depth or Parent slot of a vertex the search never reached.
const unset = -1

// noDepthLimit disables the MaxDepth cutoff.
const noDepthLimit = -1

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (preorder).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (postorder). Returning an error aborts traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in
	// ascending id order, covering disconnected components. Default false.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, no hooks, no depth
// limit, no filtering, and single-source mode.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: noDepthLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a preorder hook; returning an error aborts traversal.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit registers a postorder hook; returning an error aborts traversal.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth; negative values disable the limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			d = noDepthLimit
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers all disconnected components, seeding each from
// its smallest unvisited vertex.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: preorder visit sequence (first-entry order).
//   - Depth: recursion depth per vertex; -1 for unreached vertices.
//   - Parent: DFS-tree predecessor; -1 for roots and unreached vertices.
//   - Visited: per-vertex reached flags.
//   - SkippedNeighbors: count of neighbors rejected by FilterNeighbor.
type Result struct {
	Order            []int
	Depth            []int
	Parent           []int
	Visited          []bool
	SkippedNeighbors int
}
