// Package core provides an in-memory scene graph: one dense vertex arena
// carrying several independent views at once.
//
// The Graph G = (V, E, R) offers:
//
//   - A directed multigraph edge space E (parallel edges and self-loops allowed),
//     traversable in both directions: AddEdge, RemoveEdge, OutEdges, InEdges …
//   - A reference space R of parent→child links forming a forest, with the
//     first parent entry treated as authoritative: AddReference, Parent,
//     IsAncestor, LocateChild …
//   - A closed set of payload variants (Sphere, Box, Mesh, Light) selected by a
//     Kind tag, with failing (Value, Sphere…) and probing (TryValue, TrySphere…)
//     accessors and exhaustive Visitor dispatch.
//   - Per-vertex names and addressable paths: Locate("scene/camera"), Path(v).
//   - Side tables keyed by vertex index: the name property and the Node component.
//
// Index model:
//
//	Vertices are identified by VertexIndex, a position in a dense array.
//	RemoveVertex(u) shifts every index above u down by one and rewrites every
//	surviving edge list accordingly. Indices held by callers are NOT updated;
//	use Node.ID and FindNode for identities that must survive removals.
//
//	NullVertex stands for "no vertex" and is the pseudo-root above every root.
//	Lookups report misses as (NullVertex, false) rather than errors.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(payload, name, node, WithParent(p)) (VertexIndex, error) // O(1)
//	ClearVertex(v) error                                               // O(Σdeg)
//	RemoveVertex(u) error                                              // O(V+E)
//
//	// Generic edges
//	AddEdge(u, v) (Edge, error)   // O(1)
//	RemoveEdge(e) error           // O(deg), first match only
//	RemoveEdges(u, v) error       // O(deg), all matches
//	HasEdge(u, v) bool            // O(outdeg(u))
//
//	// References
//	AddReference(p, c) (Edge, error)
//	Parent(v) (VertexIndex, bool)
//	IsAncestor(a, d) bool
//	LocateChild(p, name) (VertexIndex, bool)
//
//	// Paths
//	Locate(path) (VertexIndex, bool)
//	LocateRelative(path, start) (VertexIndex, bool)
//	Path(v) string
//
// Errors:
//
//	ErrVertexNotFound    – index out of range
//	ErrEdgeNotFound      – remove on a missing edge or reference
//	ErrTagMismatch       – typed accessor on a vertex of another kind
//	ErrUnknownTag        – kind outside the closed set
//	ErrNilPayload        – AddVertex without payload
//	ErrPropertyNotFound  – unregistered property key
//	ErrComponentNotFound – unregistered component identifier
//	ErrVertexHasEdges    – RemoveVertex under WithStrictRemoval with live edges
//
// A Graph performs no locking. It must be owned by one goroutine at a time,
// and iterators must not be consumed while the graph is mutated.
package core
