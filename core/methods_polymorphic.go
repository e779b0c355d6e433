// SPDX-License-Identifier: MIT
//
// File: methods_polymorphic.go
// Role: Tagged payload access: Kind/Holds/Object, the failing Value and
//       non-failing TryValue pair, per-variant typed accessors, and
//       exhaustive Visitor dispatch.

package core

// Kind returns the payload tag of v. Out-of-range indices report ok=false.
func (g *Graph) Kind(v VertexIndex) (Kind, bool) {
	vert, ok := g.vertex(v)
	if !ok {
		return 0, false
	}

	return vert.kind, true
}

// Holds reports whether v holds a payload of the given kind.
func (g *Graph) Holds(kind Kind, v VertexIndex) bool {
	vert, ok := g.vertex(v)

	return ok && vert.kind == kind
}

// Object returns the payload of v regardless of its kind, or nil when v is
// out of range.
func (g *Graph) Object(v VertexIndex) Payload {
	if vert, ok := g.vertex(v); ok {
		return vert.payload
	}

	return nil
}

// Value returns the payload of v after checking that it holds kind.
//
// Errors:
//   - ErrVertexNotFound: v out of range.
//   - ErrTagMismatch: v holds another kind.
func (g *Graph) Value(kind Kind, v VertexIndex) (Payload, error) {
	vert, ok := g.vertex(v)
	if !ok {
		return nil, ErrVertexNotFound
	}
	if vert.kind != kind {
		return nil, ErrTagMismatch
	}

	return vert.payload, nil
}

// TryValue is the probing form of Value: a mismatch or a missing vertex
// reports (nil, false) instead of an error.
func (g *Graph) TryValue(kind Kind, v VertexIndex) (Payload, bool) {
	p, err := g.Value(kind, v)

	return p, err == nil
}

// ValueOf returns the payload of v as the concrete variant T.
// It fails with ErrTagMismatch when v holds a different variant.
func ValueOf[T Payload](g *Graph, v VertexIndex) (T, error) {
	var zero T
	vert, ok := g.vertex(v)
	if !ok {
		return zero, ErrVertexNotFound
	}
	t, ok := vert.payload.(T)
	if !ok {
		return zero, ErrTagMismatch
	}

	return t, nil
}

// TryValueOf is the probing form of ValueOf.
func TryValueOf[T Payload](g *Graph, v VertexIndex) (T, bool) {
	t, err := ValueOf[T](g, v)

	return t, err == nil
}

// Sphere returns the sphere payload of v, or ErrTagMismatch.
func (g *Graph) Sphere(v VertexIndex) (*Sphere, error) { return ValueOf[*Sphere](g, v) }

// Box returns the box payload of v, or ErrTagMismatch.
func (g *Graph) Box(v VertexIndex) (*Box, error) { return ValueOf[*Box](g, v) }

// Mesh returns the mesh payload of v, or ErrTagMismatch.
func (g *Graph) Mesh(v VertexIndex) (*Mesh, error) { return ValueOf[*Mesh](g, v) }

// Light returns the light payload of v, or ErrTagMismatch.
func (g *Graph) Light(v VertexIndex) (*Light, error) { return ValueOf[*Light](g, v) }

// TrySphere returns the sphere payload of v if it holds one.
func (g *Graph) TrySphere(v VertexIndex) (*Sphere, bool) { return TryValueOf[*Sphere](g, v) }

// TryBox returns the box payload of v if it holds one.
func (g *Graph) TryBox(v VertexIndex) (*Box, bool) { return TryValueOf[*Box](g, v) }

// TryMesh returns the mesh payload of v if it holds one.
func (g *Graph) TryMesh(v VertexIndex) (*Mesh, bool) { return TryValueOf[*Mesh](g, v) }

// TryLight returns the light payload of v if it holds one.
func (g *Graph) TryLight(v VertexIndex) (*Light, bool) { return TryValueOf[*Light](g, v) }

// Visit routes v's payload to exactly one visitor method chosen by its kind.
//
// Errors:
//   - ErrVertexNotFound: v out of range.
//   - ErrUnknownTag: the stored kind is outside the closed set, which means
//     the record was corrupted; AddVertex never stores such a kind.
//
// Complexity: O(1) plus the visitor.
func Visit[R any](g *Graph, visitor Visitor[R], v VertexIndex) (R, error) {
	var zero R
	vert, ok := g.vertex(v)
	if !ok {
		return zero, ErrVertexNotFound
	}

	switch vert.kind {
	case KindSphere:
		return visitor.VisitSphere(v, vert.payload.(*Sphere)), nil
	case KindBox:
		return visitor.VisitBox(v, vert.payload.(*Box)), nil
	case KindMesh:
		return visitor.VisitMesh(v, vert.payload.(*Mesh)), nil
	case KindLight:
		return visitor.VisitLight(v, vert.payload.(*Light)), nil
	default:
		return zero, ErrUnknownTag
	}
}

// VisitVertex is Visit for visitors that produce untyped results.
func (g *Graph) VisitVertex(visitor Visitor[any], v VertexIndex) (any, error) {
	return Visit(g, visitor, v)
}
