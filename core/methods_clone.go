// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep every vertex index, edge list order and Node.ID of the source.
// AI-HINT (file):
//   - Clone deep-copies payloads and components; mutating the clone never
//     reaches the source.
//   - Clear preserves options (logger, strict removal) but drops every vertex.

package core

// CloneEmpty returns a graph with the same vertices, payloads, names and
// components as g but no generic edges and no references.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		vertices:      make([]vertex, len(g.vertices)),
		nodes:         make([]*Node, len(g.nodes)),
		strictRemoval: g.strictRemoval,
		logger:        g.logger,
	}
	for i := range g.vertices {
		src := &g.vertices[i]
		clone.vertices[i] = vertex{
			kind:    src.kind,
			payload: clonePayload(g, VertexIndex(i)),
			name:    src.name,
		}
		n := *g.nodes[i]
		clone.nodes[i] = &n
	}

	return clone
}

// Clone returns a deep copy of g: vertices, payloads, components, both edge
// spaces, and options.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for i := range g.vertices {
		src, dst := &g.vertices[i], &clone.vertices[i]
		dst.out = src.out.Clone()
		dst.in = src.in.Clone()
		dst.children = src.children.Clone()
		dst.parents = src.parents.Clone()
	}

	return clone
}

// Clear removes every vertex, edge and component while keeping options.
//
// Complexity: O(1); the old arrays are released to the collector.
func (g *Graph) Clear() {
	g.vertices = nil
	g.nodes = nil
}

// payloadCopier deep-copies each variant.
var payloadCopier = VisitorFuncs[Payload]{
	Sphere: func(_ VertexIndex, s *Sphere) Payload { c := *s; return &c },
	Box:    func(_ VertexIndex, b *Box) Payload { c := *b; return &c },
	Mesh:   func(_ VertexIndex, m *Mesh) Payload { c := *m; return &c },
	Light:  func(_ VertexIndex, l *Light) Payload { c := *l; return &c },
}

// clonePayload copies the payload of v. A corrupted kind keeps the original
// payload pointer.
func clonePayload(g *Graph, v VertexIndex) Payload {
	p, err := Visit[Payload](g, payloadCopier, v)
	if err != nil {
		return g.vertices[v].payload
	}

	return p
}
