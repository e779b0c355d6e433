// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Capability interfaces implemented by *Graph, compile-time assertions,
//       and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Interfaces are small and named after the view they describe, so callers
//     can accept only the view they need (accept interfaces, return structs).
// AI-HINT (file):
//   - Accept core.ReferenceGraph in code that only walks the hierarchy.
//   - Stats() walks every vertex and its parent chain; use it for diagnostics, not hot paths.

package core

import "iter"

// IncidenceGraph exposes out-edges of a vertex.
type IncidenceGraph interface {
	HasEdge(u, v VertexIndex) bool
	Source(e Edge) VertexIndex
	Target(e Edge) VertexIndex
	OutEdges(v VertexIndex) iter.Seq[Edge]
	OutDegree(v VertexIndex) int
}

// BidirectionalGraph adds in-edge traversal.
type BidirectionalGraph interface {
	IncidenceGraph
	InEdges(v VertexIndex) iter.Seq[Edge]
	InDegree(v VertexIndex) int
	Degree(v VertexIndex) int
}

// AdjacencyGraph exposes adjacent vertices.
type AdjacencyGraph interface {
	AdjacentVertices(v VertexIndex) iter.Seq[VertexIndex]
}

// VertexListGraph enumerates the whole vertex set.
type VertexListGraph interface {
	Vertices() iter.Seq[VertexIndex]
	NumVertices() int
}

// MutableGraph inserts and removes vertices and generic edges.
type MutableGraph interface {
	AddVertex(payload Payload, name string, node Node, opts ...VertexOption) (VertexIndex, error)
	ClearVertex(v VertexIndex) error
	RemoveVertex(u VertexIndex) error
	AddEdge(u, v VertexIndex) (Edge, error)
	RemoveEdge(e Edge) error
	RemoveEdges(u, v VertexIndex) error
}

// NamedGraph exposes vertex names.
type NamedGraph interface {
	VertexName(v VertexIndex) string
	NameMap() NameMap
}

// PropertyGraph resolves side tables by key.
type PropertyGraph interface {
	Property(p Property) (PropertyMap, error)
}

// ComponentGraph resolves component records by identifier.
type ComponentGraph interface {
	Component(id ComponentID, v VertexIndex) (any, error)
	ComponentMap(id ComponentID) (PropertyMap, error)
}

// PolymorphicGraph gives tagged access to payloads.
type PolymorphicGraph interface {
	Kind(v VertexIndex) (Kind, bool)
	Holds(kind Kind, v VertexIndex) bool
	Object(v VertexIndex) Payload
	Value(kind Kind, v VertexIndex) (Payload, error)
	TryValue(kind Kind, v VertexIndex) (Payload, bool)
	VisitVertex(visitor Visitor[any], v VertexIndex) (any, error)
}

// ReferenceGraph walks the parent/child hierarchy.
type ReferenceGraph interface {
	HasReference(parent, child VertexIndex) bool
	Children(v VertexIndex) iter.Seq[Edge]
	Parents(v VertexIndex) iter.Seq[Edge]
	NumChildren(v VertexIndex) int
	NumParents(v VertexIndex) int
	Parent(v VertexIndex) (VertexIndex, bool)
	IsAncestor(ancestor, descendant VertexIndex) bool
	LocateChild(parent VertexIndex, name string) (VertexIndex, bool)
}

// MutableReferenceGraph adds and removes references.
type MutableReferenceGraph interface {
	AddReference(parent, child VertexIndex) (Edge, error)
	RemoveReference(e Edge) error
	RemoveReferences(parent, child VertexIndex) error
}

// AddressableGraph resolves and builds slash-delimited paths.
type AddressableGraph interface {
	Contains(path string) bool
	Locate(path string) (VertexIndex, bool)
	LocateRelative(path string, start VertexIndex) (VertexIndex, bool)
	Path(v VertexIndex) string
}

// SceneGraph is every view at once; *Graph is its only implementation.
type SceneGraph interface {
	BidirectionalGraph
	AdjacencyGraph
	VertexListGraph
	MutableGraph
	NamedGraph
	PropertyGraph
	ComponentGraph
	PolymorphicGraph
	ReferenceGraph
	MutableReferenceGraph
	AddressableGraph
}

var _ SceneGraph = (*Graph)(nil)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount    int
	EdgeCount      int // generic edges, parallels counted
	ReferenceCount int
	RootCount      int
	MaxDepth       int
	KindCounts     map[Kind]int
	StrictRemoval  bool
}

// Stats produces a snapshot of sizes and the kind histogram.
//
// Implementation:
//   - Stage 1: One pass over the arena summing list lengths and counting kinds.
//   - Stage 2: MaxDepth takes Depth of every vertex (bounded Parent walk).
//
// Complexity:
//   - Time O(V · depth), Space O(#kinds).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount:   len(g.vertices),
		KindCounts:    make(map[Kind]int, int(kindCount)),
		StrictRemoval: g.strictRemoval,
	}
	for i := range g.vertices {
		vert := &g.vertices[i]
		stats.EdgeCount += vert.out.Len()
		stats.ReferenceCount += vert.children.Len()
		stats.KindCounts[vert.kind]++
		if vert.parents.Len() == 0 {
			stats.RootCount++
		}
		if d := g.Depth(VertexIndex(i)); d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}

	return &stats
}
