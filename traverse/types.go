// Package traverse defines orders, options and results for walking the
// reference hierarchy of a core.Graph, including cancellation, pre-/post-order
// hooks, depth limiting and child filtering.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/scenegraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartVertexNotFound indicates a start index that is neither
	// NullVertex nor an existing vertex.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")

	// ErrUnknownOrder indicates an Order outside DepthFirst/BreadthFirst.
	ErrUnknownOrder = errors.New("traverse: unknown order")
)

// Order selects how the hierarchy is walked.
type Order uint8

const (
	DepthFirst   Order = iota // pre-order, children in insertion order
	BreadthFirst              // level by level, children in insertion order
)

func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// ParseOrder accepts "dfs", "depth-first", "bfs" and "breadth-first".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// Option configures Walk.
type Option func(*Options)

// Options holds the walk parameters. Hooks and filters run synchronously on
// the caller's goroutine; they must not mutate the graph.
type Options struct {
	// Ctx allows cancellation; checked once per visited vertex.
	Ctx context.Context

	// Order is DepthFirst by default.
	Order Order

	// OnVisit runs when a vertex is first reached. An error aborts the walk.
	OnVisit func(v core.VertexIndex, depth int) error

	// OnExit runs after every descendant of v was walked. DepthFirst only.
	OnExit func(v core.VertexIndex, depth int) error

	// MaxDepth, if non-negative, stops descending below that depth.
	// 0 visits only the start (or the roots). Default -1.
	MaxDepth int

	// FilterChild decides whether the reference parent→child is followed.
	FilterChild func(parent, child core.VertexIndex) bool
}

// DefaultOptions returns depth-first, unlimited, unfiltered options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Order: DepthFirst, MaxDepth: -1}
}

// WithContext sets the cancellation context. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the walk order.
func WithOrder(order Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithOnVisit installs the discovery hook.
func WithOnVisit(fn func(v core.VertexIndex, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs the post-order hook (DepthFirst only).
func WithOnExit(fn func(v core.VertexIndex, depth int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits the walk depth.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterChild installs a reference filter; skipped children are counted
// in Result.Skipped and their subtrees are not entered through that reference.
func WithFilterChild(fn func(parent, child core.VertexIndex) bool) Option {
	return func(o *Options) { o.FilterChild = fn }
}

// Result captures one walk.
type Result struct {
	// Order lists vertices in visit order (pre-order for DepthFirst).
	Order []core.VertexIndex

	// Depth maps each visited vertex to its distance from where the walk
	// entered its tree.
	Depth map[core.VertexIndex]int

	// Parent maps each visited vertex to the vertex it was reached from.
	// Start vertices (and roots) are absent.
	Parent map[core.VertexIndex]core.VertexIndex

	// Skipped counts references rejected by FilterChild.
	Skipped int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v core.VertexIndex) bool {
	_, ok := r.Depth[v]

	return ok
}
