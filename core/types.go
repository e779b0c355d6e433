// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex index space, edge handle, vertex record, Graph, options,
//       sentinel errors and the NewGraph constructor.
// Determinism:
//   - Vertex indices are dense (0..n-1) and assigned in insertion order.
//   - Every edge list keeps insertion order.
// Concurrency:
//   - None. A Graph is owned by one goroutine; callers serialize all access.

package core

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/scenegraph/internal/incidence"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an index outside 0..NumVertices()-1, or the
	// null vertex where a real vertex is required.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a remove operation on an edge handle that
	// matches no stored edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrTagMismatch indicates a typed payload accessor was used on a vertex
	// holding a different kind. TryValue and the TryX accessors never return it.
	ErrTagMismatch = errors.New("core: payload kind mismatch")

	// ErrUnknownTag indicates a kind outside the closed variant set.
	ErrUnknownTag = errors.New("core: unknown payload kind")

	// ErrNilPayload indicates AddVertex was called without a payload.
	ErrNilPayload = errors.New("core: payload is nil")

	// ErrPropertyNotFound indicates an unregistered property key.
	ErrPropertyNotFound = errors.New("core: property map not found")

	// ErrComponentNotFound indicates an unregistered component identifier.
	ErrComponentNotFound = errors.New("core: component not found")

	// ErrVertexHasEdges indicates RemoveVertex under WithStrictRemoval on a
	// vertex that still has incident edges or references.
	ErrVertexHasEdges = errors.New("core: vertex still has incident edges")
)

// VertexIndex names a slot in the vertex array. It is stable only until a
// RemoveVertex call shifts every later slot down by one; no reference
// tracking exists, so callers must not keep indices across a removal.
type VertexIndex uint32

// NullVertex is the "no vertex" value and the conceptual parent of every
// root. It is accepted as input wherever the pseudo-root makes sense.
const NullVertex VertexIndex = math.MaxUint32

// IsNull reports whether v is NullVertex.
func (v VertexIndex) IsNull() bool { return v == NullVertex }

// Edge identifies one directed edge by its endpoints. In the graph edge space
// it reads as (source, target); in the reference space as (parent, child).
// The same type serves both; only the API that produced it tells them apart.
type Edge struct {
	From VertexIndex
	To   VertexIndex
}

// Source returns the tail of a graph edge.
func (e Edge) Source() VertexIndex { return e.From }

// Target returns the head of a graph edge.
func (e Edge) Target() VertexIndex { return e.To }

// Parent returns the parent side of a reference edge.
func (e Edge) Parent() VertexIndex { return e.From }

// Child returns the child side of a reference edge.
func (e Edge) Child() VertexIndex { return e.To }

// Graph classification. The generic edge space is a directed multigraph
// traversable in both directions with no self-loop restriction.
const (
	Directed      = true
	Bidirectional = true
	AllowParallel = true
	AllowLoops    = true
)

// vertex is one slot of the arena. The two edge spaces never share a list.
type vertex struct {
	kind    Kind
	payload Payload
	name    string

	out incidence.List[VertexIndex] // generic: targets of out-edges
	in  incidence.List[VertexIndex] // generic: sources of in-edges

	children incidence.List[VertexIndex] // reference: child of each reference
	parents  incidence.List[VertexIndex] // reference: parent of each reference
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger routes mutation diagnostics to l at Debug level.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStrictRemoval makes RemoveVertex fail with ErrVertexHasEdges while the
// vertex still has incident edges or references. By default removal drops
// them while reindexing.
func WithStrictRemoval() GraphOption {
	return func(g *Graph) { g.strictRemoval = true }
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]vertex, 0, n)
			g.nodes = make([]*Node, 0, n)
		}
	}
}

// Graph is the scene graph: one dense vertex arena shared by a directed
// multigraph edge space and a parent/child reference space, with a
// polymorphic payload, a name and a Node component per vertex.
type Graph struct {
	vertices []vertex
	nodes    []*Node // parallel to vertices

	strictRemoval bool
	logger        *slog.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// vertex returns the record at v, or false when v is out of range.
func (g *Graph) vertex(v VertexIndex) (*vertex, bool) {
	if int64(v) >= int64(len(g.vertices)) {
		return nil, false
	}

	return &g.vertices[v], true
}

// valid reports whether v names an existing slot.
func (g *Graph) valid(v VertexIndex) bool {
	return int64(v) < int64(len(g.vertices))
}
