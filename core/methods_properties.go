// SPDX-License-Identifier: MIT
//
// File: methods_properties.go
// Role: Property and component layer: typed property/component keys with an
//       exhaustive switch, live side-table views (NameMap, NodeMap), and
//       stable-identity lookup of Node components.
// Policy:
//   - Unknown keys fail immediately with ErrPropertyNotFound / ErrComponentNotFound.
//   - Maps are views over the live graph, not copies; they follow later mutations.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Property identifies a per-vertex side table.
type Property uint8

// Registered properties.
const (
	PropertyName Property = iota // vertex name
	PropertyNode                 // Node component
)

func (p Property) String() string {
	switch p {
	case PropertyName:
		return "name"
	case PropertyNode:
		return "node"
	default:
		return fmt.Sprintf("property(%d)", uint8(p))
	}
}

// ParseProperty maps a property key ("name", "node") to its Property.
func ParseProperty(key string) (Property, error) {
	switch key {
	case "name":
		return PropertyName, nil
	case "node":
		return PropertyNode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrPropertyNotFound, key)
	}
}

// ComponentID identifies a component kind attached 1:1 to vertices.
type ComponentID uint8

// Registered components.
const (
	ComponentNode ComponentID = iota
)

func (c ComponentID) String() string {
	if c == ComponentNode {
		return "node"
	}

	return fmt.Sprintf("component(%d)", uint8(c))
}

// PropertyMap is an untyped view over one side table.
type PropertyMap interface {
	// Len is the number of vertices covered by the map.
	Len() int
	// Value returns the entry for v; ok is false when v is out of range.
	Value(v VertexIndex) (any, bool)
}

// NameMap views vertex names.
type NameMap struct{ g *Graph }

// Len implements PropertyMap.
func (m NameMap) Len() int { return m.g.NumVertices() }

// Get returns the name of v, or "" when v is out of range.
func (m NameMap) Get(v VertexIndex) string { return m.g.VertexName(v) }

// Value implements PropertyMap.
func (m NameMap) Value(v VertexIndex) (any, bool) {
	if !m.g.valid(v) {
		return nil, false
	}

	return m.g.vertices[v].name, true
}

// NodeMap views Node components.
type NodeMap struct{ g *Graph }

// Len implements PropertyMap.
func (m NodeMap) Len() int { return len(m.g.nodes) }

// Get returns the Node of v, or nil when v is out of range.
func (m NodeMap) Get(v VertexIndex) *Node {
	if !m.g.valid(v) {
		return nil
	}

	return m.g.nodes[v]
}

// Value implements PropertyMap.
func (m NodeMap) Value(v VertexIndex) (any, bool) {
	n := m.Get(v)

	return n, n != nil
}

// VertexName returns the name of v, or "" when v is out of range.
func (g *Graph) VertexName(v VertexIndex) string {
	if vert, ok := g.vertex(v); ok {
		return vert.name
	}

	return ""
}

// SetVertexName renames v. Paths through v change accordingly.
func (g *Graph) SetVertexName(v VertexIndex, name string) error {
	vert, ok := g.vertex(v)
	if !ok {
		return ErrVertexNotFound
	}
	vert.name = name

	return nil
}

// NameMap returns a live view over vertex names.
func (g *Graph) NameMap() NameMap { return NameMap{g: g} }

// NodeMap returns a live view over Node components.
func (g *Graph) NodeMap() NodeMap { return NodeMap{g: g} }

// Property returns the side table registered under p.
func (g *Graph) Property(p Property) (PropertyMap, error) {
	switch p {
	case PropertyName:
		return g.NameMap(), nil
	case PropertyNode:
		return g.NodeMap(), nil
	default:
		return nil, ErrPropertyNotFound
	}
}

// PropertyByKey resolves a string key through ParseProperty and returns its
// side table. Unknown keys fail with ErrPropertyNotFound.
func (g *Graph) PropertyByKey(key string) (PropertyMap, error) {
	p, err := ParseProperty(key)
	if err != nil {
		return nil, err
	}

	return g.Property(p)
}

// Component returns the component record id of vertex v.
//
// Errors:
//   - ErrComponentNotFound: id is not registered.
//   - ErrVertexNotFound: v out of range.
func (g *Graph) Component(id ComponentID, v VertexIndex) (any, error) {
	switch id {
	case ComponentNode:
		return g.Node(v)
	default:
		return nil, ErrComponentNotFound
	}
}

// ComponentMap returns the full side table of component id.
func (g *Graph) ComponentMap(id ComponentID) (PropertyMap, error) {
	switch id {
	case ComponentNode:
		return g.NodeMap(), nil
	default:
		return nil, ErrComponentNotFound
	}
}

// Node returns the Node component of v. The pointer stays valid across
// removals of other vertices.
func (g *Graph) Node(v VertexIndex) (*Node, error) {
	if !g.valid(v) {
		return nil, ErrVertexNotFound
	}

	return g.nodes[v], nil
}

// FindNode returns the current index of the vertex whose Node carries id.
//
// Complexity: O(V).
func (g *Graph) FindNode(id uuid.UUID) (VertexIndex, bool) {
	for v, n := range g.nodes {
		if n.ID == id {
			return VertexIndex(v), true
		}
	}

	return NullVertex, false
}
