// SPDX-License-Identifier: MIT
//
// File: methods_references.go
// Role: Reference (hierarchy) edge space backed by the children/parents lists:
//       AddReference/RemoveReference/RemoveReferences/HasReference, child and
//       parent iterators, Parent, IsAncestor and LocateChild.
// Policy:
//   - The structure permits several parents; Parent, IsAncestor, LocateChild
//     and every path operation read only the first parent entry.
//   - This file shares no list with methods_edges.go.

package core

import "iter"

// HasReference reports whether parent has at least one reference to child.
//
// Complexity: O(numChildren(parent)).
func (g *Graph) HasReference(parent, child VertexIndex) bool {
	p, ok := g.vertex(parent)
	if !ok {
		return false
	}

	return p.children.Contains(child)
}

// AddReference adds a parent→child reference and returns its handle. No
// acyclicity or single-parent check is performed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddReference(parent, child VertexIndex) (Edge, error) {
	if !g.valid(parent) || !g.valid(child) {
		return Edge{From: NullVertex, To: NullVertex}, ErrVertexNotFound
	}
	g.vertices[parent].children.Push(child)
	g.vertices[child].parents.Push(parent)

	return Edge{From: parent, To: child}, nil
}

// RemoveReference removes exactly one reference matching e (first match).
//
// Errors:
//   - ErrVertexNotFound: an endpoint is out of range.
//   - ErrEdgeNotFound: no such reference exists.
func (g *Graph) RemoveReference(e Edge) error {
	if !g.valid(e.From) || !g.valid(e.To) {
		return ErrVertexNotFound
	}
	if !g.vertices[e.From].children.RemoveFirst(e.To) {
		return ErrEdgeNotFound
	}
	g.vertices[e.To].parents.RemoveFirst(e.From)

	return nil
}

// RemoveReferences removes every reference parent→child.
func (g *Graph) RemoveReferences(parent, child VertexIndex) error {
	if !g.valid(parent) || !g.valid(child) {
		return ErrVertexNotFound
	}
	g.vertices[parent].children.RemoveAll(child)
	g.vertices[child].parents.RemoveAll(parent)

	return nil
}

// Children lazily yields a reference handle for each child of v in insertion order.
func (g *Graph) Children(v VertexIndex) iter.Seq[Edge] {
	vert, ok := g.vertex(v)
	if !ok {
		return emptyEdges
	}
	children := vert.children.All()

	return func(yield func(Edge) bool) {
		for c := range children {
			if !yield(Edge{From: v, To: c}) {
				return
			}
		}
	}
}

// Parents lazily yields a reference handle for each parent of v in insertion order.
func (g *Graph) Parents(v VertexIndex) iter.Seq[Edge] {
	vert, ok := g.vertex(v)
	if !ok {
		return emptyEdges
	}
	parents := vert.parents.All()

	return func(yield func(Edge) bool) {
		for p := range parents {
			if !yield(Edge{From: p, To: v}) {
				return
			}
		}
	}
}

// NumChildren counts the references leaving v.
func (g *Graph) NumChildren(v VertexIndex) int {
	if vert, ok := g.vertex(v); ok {
		return vert.children.Len()
	}

	return 0
}

// NumParents counts the references entering v.
func (g *Graph) NumParents(v VertexIndex) int {
	if vert, ok := g.vertex(v); ok {
		return vert.parents.Len()
	}

	return 0
}

// ReferenceCount returns the number of references in the graph.
//
// Complexity: O(V).
func (g *Graph) ReferenceCount() int {
	n := 0
	for i := range g.vertices {
		n += g.vertices[i].children.Len()
	}

	return n
}

// Parent returns the authoritative parent of v: its first parent entry.
// It reports (NullVertex, false) when v is NullVertex, out of range, or a root.
//
// Complexity: O(1).
func (g *Graph) Parent(v VertexIndex) (VertexIndex, bool) {
	vert, ok := g.vertex(v)
	if !ok || vert.parents.Len() == 0 {
		return NullVertex, false
	}

	return vert.parents[0], true
}

// IsAncestor reports whether ancestor appears on the Parent chain of descendant.
//
// Edge cases, in evaluation order:
//   - ancestor == descendant ⇒ false (a vertex is not its own ancestor; holds for NullVertex too).
//   - ancestor == NullVertex ⇒ true (the pseudo-root is above everything else).
//   - descendant == NullVertex ⇒ false (the pseudo-root has no ancestor).
//
// Otherwise the chain is climbed until ancestor is met or the top is reached.
// The climb is bounded by NumVertices steps, so a cyclic parent chain reports
// false rather than looping.
//
// Complexity: O(depth(descendant)).
func (g *Graph) IsAncestor(ancestor, descendant VertexIndex) bool {
	if ancestor == descendant {
		return false
	}
	if ancestor == NullVertex {
		return true
	}
	if descendant == NullVertex {
		return false
	}

	limit := len(g.vertices)
	p, ok := g.Parent(descendant)
	for steps := 0; ok && steps < limit; steps++ {
		if p == ancestor {
			return true
		}
		p, ok = g.Parent(p)
	}

	return false
}

// Depth returns the number of Parent links from v to its root; roots have
// depth 0. NullVertex and out-of-range indices report -1.
func (g *Graph) Depth(v VertexIndex) int {
	if !g.valid(v) {
		return -1
	}
	depth := 0
	p, ok := g.Parent(v)
	for ok && depth < len(g.vertices) {
		depth++
		p, ok = g.Parent(p)
	}

	return depth
}

// LocateChild finds a direct child of parent named name.
//
// With parent == NullVertex the roots (vertices with zero parent entries) are
// scanned in index order; otherwise parent's children in insertion order.
// The first match wins. A miss reports (NullVertex, false).
//
// Complexity: O(V) for roots, O(numChildren(parent)) otherwise.
func (g *Graph) LocateChild(parent VertexIndex, name string) (VertexIndex, bool) {
	if parent == NullVertex {
		for v := range g.vertices {
			vert := &g.vertices[v]
			if vert.parents.Len() == 0 && vert.name == name {
				return VertexIndex(v), true
			}
		}

		return NullVertex, false
	}

	p, ok := g.vertex(parent)
	if !ok {
		return NullVertex, false
	}
	for _, c := range p.children {
		if g.vertices[c].name == name {
			return c, true
		}
	}

	return NullVertex, false
}
