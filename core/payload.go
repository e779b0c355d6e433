// SPDX-License-Identifier: MIT
//
// File: payload.go
// Role: Closed set of vertex payload variants, their Kind tag, the Visitor
//       capability and the Node component record.
// Notes:
//   - Payload is sealed by an unexported method: only the variants declared
//     here satisfy it, which keeps Visitor exhaustive.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind tags which payload variant a vertex holds.
type Kind uint8

// Closed variant set.
const (
	KindSphere Kind = iota // point/sphere primitive
	KindBox                // axis-aligned box
	KindMesh               // reference to a mesh asset
	KindLight              // directional light

	kindCount
)

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind { return []Kind{KindSphere, KindBox, KindMesh, KindLight} }

// Valid reports whether k belongs to the closed variant set.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a kind name back to its Kind. Unknown names yield ErrUnknownTag.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// Payload is the value attached to a vertex. The concrete type always agrees
// with Kind().
type Payload interface {
	Kind() Kind
	// IsNil reports a typed-nil variant stored behind the interface.
	IsNil() bool
	payload()
}

// Sphere is a point-like primitive with a radius.
type Sphere struct {
	X, Y, Z float64
	Radius  float64
}

// Box is an axis-aligned box anchored at (X, Y, Z).
type Box struct {
	X, Y, Z             float64
	SizeX, SizeY, SizeZ float64
}

// Mesh refers to an external mesh asset.
type Mesh struct {
	AssetPath string
}

// Light is a directional light placed at (X, Y, Z).
type Light struct {
	X, Y, Z          float64
	DirX, DirY, DirZ float64
}

func (*Sphere) Kind() Kind { return KindSphere }
func (*Box) Kind() Kind    { return KindBox }
func (*Mesh) Kind() Kind   { return KindMesh }
func (*Light) Kind() Kind  { return KindLight }

// IsNil reports whether the receiver is a nil pointer; it never dereferences.
func (s *Sphere) IsNil() bool { return s == nil }
func (b *Box) IsNil() bool    { return b == nil }
func (m *Mesh) IsNil() bool   { return m == nil }
func (l *Light) IsNil() bool  { return l == nil }

func (*Sphere) payload() {}
func (*Box) payload()    {}
func (*Mesh) payload()   {}
func (*Light) payload()  {}

// NewSphere returns a unit sphere at the origin.
func NewSphere() *Sphere { return &Sphere{Radius: 1} }

// NewBox returns a unit box at the origin.
func NewBox() *Box { return &Box{SizeX: 1, SizeY: 1, SizeZ: 1} }

// NewLight returns a light at the origin pointing along +X.
func NewLight() *Light { return &Light{DirX: 1} }

// Visitor handles each payload variant. Adding a variant adds a method here,
// so every implementation fails to compile until it handles the new kind.
type Visitor[R any] interface {
	VisitSphere(v VertexIndex, s *Sphere) R
	VisitBox(v VertexIndex, b *Box) R
	VisitMesh(v VertexIndex, m *Mesh) R
	VisitLight(v VertexIndex, l *Light) R
}

// VisitorFuncs adapts plain functions to Visitor. A nil field returns the
// zero R for that variant.
type VisitorFuncs[R any] struct {
	Sphere func(v VertexIndex, s *Sphere) R
	Box    func(v VertexIndex, b *Box) R
	Mesh   func(v VertexIndex, m *Mesh) R
	Light  func(v VertexIndex, l *Light) R
}

func (f VisitorFuncs[R]) VisitSphere(v VertexIndex, s *Sphere) (r R) {
	if f.Sphere != nil {
		r = f.Sphere(v, s)
	}

	return r
}

func (f VisitorFuncs[R]) VisitBox(v VertexIndex, b *Box) (r R) {
	if f.Box != nil {
		r = f.Box(v, b)
	}

	return r
}

func (f VisitorFuncs[R]) VisitMesh(v VertexIndex, m *Mesh) (r R) {
	if f.Mesh != nil {
		r = f.Mesh(v, m)
	}

	return r
}

func (f VisitorFuncs[R]) VisitLight(v VertexIndex, l *Light) (r R) {
	if f.Light != nil {
		r = f.Light(v, l)
	}

	return r
}

// Node is the component record kept 1:1 with every vertex.
//
// ID is a stable identity: unlike the vertex index it survives removals of
// other vertices. AddVertex assigns a random ID when the caller leaves it zero.
type Node struct {
	ID      uuid.UUID
	Content string
	Flags   uint32
}
