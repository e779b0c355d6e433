// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle: AddVertex/AddVertexKind, ClearVertex, RemoveVertex
//       (with index-shift reindexing), and vertex enumeration.
//
// Determinism:
//   - Vertices() and Roots() enumerate in ascending index order.
//   - RemoveVertex shifts every index above the removed slot down by exactly one.
//
// AI-Hints (file):
//   - Call ClearVertex before RemoveVertex when the graph runs with
//     WithStrictRemoval; otherwise removal drops live edges itself.
//   - Never keep a VertexIndex across RemoveVertex without adjusting it;
//     use Node.ID with FindNode for identities that must survive.

package core

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// VertexOption configures a single AddVertex call.
type VertexOption func(*vertexConfig)

type vertexConfig struct {
	parent VertexIndex
}

// WithParent attaches the new vertex as a child of parent. NullVertex (the
// default) creates a root.
func WithParent(parent VertexIndex) VertexOption {
	return func(c *vertexConfig) { c.parent = parent }
}

// AddVertex appends a vertex holding payload, named name, with node as its
// component record, and returns its index.
//
// Implementation:
//   - Stage 1: Validate payload (ErrNilPayload, ErrUnknownTag) and parent (ErrVertexNotFound).
//   - Stage 2: Append the record with empty edge lists and the node component in lockstep.
//   - Stage 3: If a parent was given, add the parent→child reference.
//
// Behavior highlights:
//   - The kind is taken from payload.Kind(); see AddVertexKind for the explicit-tag form.
//   - A zero node.ID is replaced with a fresh random UUID.
//
// Returns:
//   - VertexIndex: the new index, always NumVertices()-1 before the call returns.
//
// Errors:
//   - ErrNilPayload (nil or typed-nil payload), ErrUnknownTag, ErrVertexNotFound (bad parent).
//     Nothing is appended on error.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(payload Payload, name string, node Node, opts ...VertexOption) (VertexIndex, error) {
	if isNilPayload(payload) {
		return NullVertex, ErrNilPayload
	}

	return g.AddVertexKind(payload.Kind(), payload, name, node, opts...)
}

// AddVertexKind is AddVertex with an explicit tag. It fails with
// ErrTagMismatch when payload.Kind() differs from kind, which keeps the
// "tag determines payload" invariant under caller control.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertexKind(kind Kind, payload Payload, name string, node Node, opts ...VertexOption) (VertexIndex, error) {
	if isNilPayload(payload) {
		return NullVertex, ErrNilPayload
	}
	if !kind.Valid() {
		return NullVertex, ErrUnknownTag
	}
	if payload.Kind() != kind {
		return NullVertex, ErrTagMismatch
	}

	cfg := vertexConfig{parent: NullVertex}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.parent != NullVertex && !g.valid(cfg.parent) {
		return NullVertex, ErrVertexNotFound
	}

	if node.ID == uuid.Nil {
		node.ID = uuid.New()
	}

	v := VertexIndex(len(g.vertices))
	g.vertices = append(g.vertices, vertex{kind: kind, payload: payload, name: name})
	g.nodes = append(g.nodes, &node)

	// Stage 3: immediate attachment into the hierarchy.
	if cfg.parent != NullVertex {
		g.vertices[cfg.parent].children.Push(v)
		g.vertices[v].parents.Push(cfg.parent)
	}

	return v, nil
}

// isNilPayload catches both a nil interface and a typed-nil variant such as
// (*Sphere)(nil).
func isNilPayload(p Payload) bool { return p == nil || p.IsNil() }

// HasVertex reports whether v names an existing slot (NullVertex ⇒ false).
func (g *Graph) HasVertex(v VertexIndex) bool { return g.valid(v) }

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Vertices returns every vertex index in ascending order. The range is fixed
// when the sequence is created.
func (g *Graph) Vertices() iter.Seq[VertexIndex] {
	n := VertexIndex(len(g.vertices))

	return func(yield func(VertexIndex) bool) {
		for v := VertexIndex(0); v < n; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Roots returns, in ascending index order, every vertex with no parent
// reference.
func (g *Graph) Roots() iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		for v := range g.Vertices() {
			if g.valid(v) && g.vertices[v].parents.Len() == 0 && !yield(v) {
				return
			}
		}
	}
}

// ClearVertex severs every edge incident to v in both edge spaces and both
// directions. The vertex itself, its payload, name and component stay.
//
// Implementation:
//   - Stage 1: For each out-edge v→t, remove all mirrors of v from t.in; then empty v.out.
//   - Stage 2: For each in-edge s→v, remove all mirrors of v from s.out; then empty v.in.
//   - Stage 3/4: Same for children/parents in the reference space.
//
// Behavior highlights:
//   - Self-loops are handled: the mirror lives in v's own opposite list, which is emptied anyway.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity:
//   - Time O(Σ degree of the neighbours touched), Space O(1).
func (g *Graph) ClearVertex(v VertexIndex) error {
	if !g.valid(v) {
		return ErrVertexNotFound
	}
	vert := &g.vertices[v]
	severed := vert.out.Len() + vert.in.Len() + vert.children.Len() + vert.parents.Len()

	// Generic edge space.
	for _, t := range vert.out {
		if t != v {
			g.vertices[t].in.RemoveAll(v)
		}
	}
	for _, s := range vert.in {
		if s != v {
			g.vertices[s].out.RemoveAll(v)
		}
	}
	vert.out = vert.out[:0]
	vert.in = vert.in[:0]

	// Reference space.
	for _, c := range vert.children {
		if c != v {
			g.vertices[c].parents.RemoveAll(v)
		}
	}
	for _, p := range vert.parents {
		if p != v {
			g.vertices[p].children.RemoveAll(v)
		}
	}
	vert.children = vert.children[:0]
	vert.parents = vert.parents[:0]

	g.logger.Debug("vertex cleared", "vertex", v, "severed", severed)

	return nil
}

// RemoveVertex deletes vertex u and its Node component, shifting every later
// index down by one.
//
// Implementation:
//   - Stage 1: Validate u; under WithStrictRemoval reject a vertex with live edges.
//   - Stage 2: Splice u out of the vertex and component arrays.
//   - Stage 3: Reindex all four edge lists of every survivor: entries == u are
//     dropped, entries > u are decremented.
//
// Behavior highlights:
//   - Without WithStrictRemoval, live edges incident to u are dropped by the
//     reindex, so the out/in and children/parents mirrors stay consistent.
//   - Removing the last slot skips reindexing when u had no edges.
//
// Errors:
//   - ErrVertexNotFound: u out of range.
//   - ErrVertexHasEdges: strict mode and u still has edges or references.
//
// Complexity:
//   - Time O(V + E) for the reindex pass, Space O(1) extra.
//
// Notes:
//   - Every VertexIndex above u held by the caller is now off by one.
func (g *Graph) RemoveVertex(u VertexIndex) error {
	if !g.valid(u) {
		return ErrVertexNotFound
	}
	vert := &g.vertices[u]
	live := vert.out.Len() + vert.in.Len() + vert.children.Len() + vert.parents.Len()
	if live > 0 && g.strictRemoval {
		return ErrVertexHasEdges
	}

	g.vertices = slices.Delete(g.vertices, int(u), int(u)+1)
	g.nodes = slices.Delete(g.nodes, int(u), int(u)+1)

	n := VertexIndex(len(g.vertices))
	if u == n && live == 0 {
		g.logger.Debug("vertex removed", "vertex", u, "reindexed", 0, "dropped", 0)
		return nil
	}

	dropped := 0
	for v := VertexIndex(0); v < n; v++ {
		dropped += g.reindexGraphEdges(v, u)
		dropped += g.reindexReferences(v, u)
	}

	g.logger.Debug("vertex removed", "vertex", u, "reindexed", n, "dropped", dropped)

	return nil
}

// reindexGraphEdges rewrites the generic out/in lists of v after slot u was removed.
func (g *Graph) reindexGraphEdges(v, u VertexIndex) int {
	vert := &g.vertices[v]

	return vert.out.Reindex(u) + vert.in.Reindex(u)
}

// reindexReferences rewrites the children/parents lists of v after slot u was removed.
func (g *Graph) reindexReferences(v, u VertexIndex) int {
	vert := &g.vertices[v]

	return vert.children.Reindex(u) + vert.parents.Reindex(u)
}
