// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Generic directed-multigraph edge space backed by the out/in lists:
//       AddEdge/RemoveEdge/RemoveEdges/HasEdge, incidence iterators, degrees
//       and adjacency.
// Determinism:
//   - OutEdges/InEdges/AdjacentVertices yield in insertion order.
//   - RemoveEdge removes the first matching entry on each side.
// AI-HINT (file):
//   - Parallel edges and self-loops are always accepted.
//   - Queries on out-of-range indices answer false/0/empty; mutations return ErrVertexNotFound.

package core

import "iter"

// HasEdge reports whether at least one edge u→v exists.
//
// Complexity: O(outDegree(u)).
func (g *Graph) HasEdge(u, v VertexIndex) bool {
	src, ok := g.vertex(u)
	if !ok {
		return false
	}

	return src.out.Contains(v)
}

// AddEdge inserts a new edge u→v and returns its handle. Parallel edges and
// self-loops are permitted; only the endpoints are validated.
//
// Implementation:
//   - Stage 1: Validate u and v (ErrVertexNotFound).
//   - Stage 2: Append v to u.out and u to v.in, keeping the mirror invariant.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexIndex) (Edge, error) {
	if !g.valid(u) || !g.valid(v) {
		return Edge{From: NullVertex, To: NullVertex}, ErrVertexNotFound
	}
	g.vertices[u].out.Push(v)
	g.vertices[v].in.Push(u)

	return Edge{From: u, To: v}, nil
}

// RemoveEdge removes exactly one edge matching e (the first match), leaving
// any other parallel edges in place.
//
// Errors:
//   - ErrVertexNotFound: an endpoint is out of range.
//   - ErrEdgeNotFound: no edge e.From→e.To exists.
//
// Complexity: O(outDegree(From) + inDegree(To)).
func (g *Graph) RemoveEdge(e Edge) error {
	if !g.valid(e.From) || !g.valid(e.To) {
		return ErrVertexNotFound
	}
	if !g.vertices[e.From].out.RemoveFirst(e.To) {
		return ErrEdgeNotFound
	}
	g.vertices[e.To].in.RemoveFirst(e.From)

	return nil
}

// RemoveEdges removes every edge u→v. Removing zero edges is not an error.
//
// Complexity: O(outDegree(u) + inDegree(v)).
func (g *Graph) RemoveEdges(u, v VertexIndex) error {
	if !g.valid(u) || !g.valid(v) {
		return ErrVertexNotFound
	}
	g.vertices[u].out.RemoveAll(v)
	g.vertices[v].in.RemoveAll(u)

	return nil
}

// Source returns the tail of e.
func (g *Graph) Source(e Edge) VertexIndex { return e.From }

// Target returns the head of e.
func (g *Graph) Target(e Edge) VertexIndex { return e.To }

// OutEdges lazily yields a handle for every edge leaving v. The sequence
// ranges over the list as it was when OutEdges was called; mutating edges
// while consuming it is undefined.
func (g *Graph) OutEdges(v VertexIndex) iter.Seq[Edge] {
	vert, ok := g.vertex(v)
	if !ok {
		return emptyEdges
	}
	targets := vert.out.All()

	return func(yield func(Edge) bool) {
		for t := range targets {
			if !yield(Edge{From: v, To: t}) {
				return
			}
		}
	}
}

// InEdges lazily yields a handle for every edge entering v, with the same
// snapshot rules as OutEdges.
func (g *Graph) InEdges(v VertexIndex) iter.Seq[Edge] {
	vert, ok := g.vertex(v)
	if !ok {
		return emptyEdges
	}
	sources := vert.in.All()

	return func(yield func(Edge) bool) {
		for s := range sources {
			if !yield(Edge{From: s, To: v}) {
				return
			}
		}
	}
}

// AdjacentVertices yields the target of each out-edge of v. Parallel edges
// repeat their target.
func (g *Graph) AdjacentVertices(v VertexIndex) iter.Seq[VertexIndex] {
	vert, ok := g.vertex(v)
	if !ok {
		return emptyVertices
	}

	return vert.out.All()
}

// OutDegree counts the edges leaving v.
func (g *Graph) OutDegree(v VertexIndex) int {
	if vert, ok := g.vertex(v); ok {
		return vert.out.Len()
	}

	return 0
}

// InDegree counts the edges entering v.
func (g *Graph) InDegree(v VertexIndex) int {
	if vert, ok := g.vertex(v); ok {
		return vert.in.Len()
	}

	return 0
}

// Degree is OutDegree + InDegree; a self-loop counts twice.
func (g *Graph) Degree(v VertexIndex) int { return g.OutDegree(v) + g.InDegree(v) }

// EdgeCount returns the number of generic edges, counting parallels.
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.vertices {
		n += g.vertices[i].out.Len()
	}

	return n
}

func emptyEdges(func(Edge) bool) {}

func emptyVertices(func(VertexIndex) bool) {}
