// Package traverse walks the reference hierarchy of a core.Graph depth-first
// or breadth-first.
//
// Key features:
//   - Walk(g, start, opts...): one subtree, or the whole forest when start is core.NullVertex
//   - Every vertex is visited once even when it has several parents, so
//     reference cycles terminate
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterChild with a Skipped count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + R) where R is the number of references, plus hook cost.
//   - Memory: O(V) for the stack or queue and the result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - ErrUnknownOrder           if the Order is invalid.
//   - ctx.Err()                 if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/scenegraph/core"
)

// walker encapsulates state during a walk.
type walker struct {
	g    *core.Graph
	opts Options
	res  *Result
}

// Walk traverses the hierarchy below start, or every tree of the forest when
// start is core.NullVertex (roots in index order). The partial Result is
// returned alongside any error.
func Walk(g *core.Graph, start core.VertexIndex, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Order != DepthFirst && o.Order != BreadthFirst {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, o.Order)
	}
	if !start.IsNull() && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Collect entry points
	var starts []core.VertexIndex
	if start.IsNull() {
		for r := range g.Roots() {
			starts = append(starts, r)
		}
	} else {
		starts = []core.VertexIndex{start}
	}

	n := g.NumVertices()
	w := &walker{g: g, opts: o, res: &Result{
		Order:  make([]core.VertexIndex, 0, n),
		Depth:  make(map[core.VertexIndex]int, n),
		Parent: make(map[core.VertexIndex]core.VertexIndex, n),
	}}

	// 3. Walk each tree
	for _, s := range starts {
		if w.res.Visited(s) {
			continue
		}
		var err error
		if o.Order == BreadthFirst {
			err = w.breadth(s)
		} else {
			err = w.depth(s, 0)
		}
		if err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// visit marks v, records it and runs OnVisit.
func (w *walker) visit(v core.VertexIndex, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("traverse: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// follow reports whether the reference parent→child should be entered.
func (w *walker) follow(parent, child core.VertexIndex) bool {
	if w.res.Visited(child) {
		return false
	}
	if w.opts.FilterChild != nil && !w.opts.FilterChild(parent, child) {
		w.res.Skipped++
		return false
	}

	return true
}

func (w *walker) canDescend(depth int) bool {
	return w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth
}

// depth walks v's subtree in pre-order, recursing per child.
func (w *walker) depth(v core.VertexIndex, depth int) error {
	if err := w.visit(v, depth); err != nil {
		return err
	}
	if w.canDescend(depth) {
		for e := range w.g.Children(v) {
			c := e.Child()
			if !w.follow(v, c) {
				continue
			}
			w.res.Parent[c] = v
			if err := w.depth(c, depth+1); err != nil {
				return err
			}
		}
	}
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v, depth); err != nil {
			return fmt.Errorf("traverse: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}

// breadth walks level by level from s.
func (w *walker) breadth(s core.VertexIndex) error {
	if err := w.visit(s, 0); err != nil {
		return err
	}
	queue := []core.VertexIndex{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		d := w.res.Depth[v]
		if !w.canDescend(d) {
			continue
		}
		for e := range w.g.Children(v) {
			c := e.Child()
			if !w.follow(v, c) {
				continue
			}
			w.res.Parent[c] = v
			if err := w.visit(c, d+1); err != nil {
				return err
			}
			queue = append(queue, c)
		}
	}

	return nil
}
