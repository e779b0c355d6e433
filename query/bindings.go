package query

import "github.com/katalvlaran/scenegraph/core"

// fields flattens each payload variant into CEL-friendly keys.
var fields = core.VisitorFuncs[map[string]any]{
	Sphere: func(_ core.VertexIndex, s *core.Sphere) map[string]any {
		return map[string]any{"x": s.X, "y": s.Y, "z": s.Z, "radius": s.Radius}
	},
	Box: func(_ core.VertexIndex, b *core.Box) map[string]any {
		return map[string]any{
			"x": b.X, "y": b.Y, "z": b.Z,
			"size_x": b.SizeX, "size_y": b.SizeY, "size_z": b.SizeZ,
		}
	},
	Mesh: func(_ core.VertexIndex, m *core.Mesh) map[string]any {
		return map[string]any{"asset": m.AssetPath}
	},
	Light: func(_ core.VertexIndex, l *core.Light) map[string]any {
		return map[string]any{
			"x": l.X, "y": l.Y, "z": l.Z,
			"dir_x": l.DirX, "dir_y": l.DirY, "dir_z": l.DirZ,
		}
	},
}

// Fields returns the payload of v as a flat map, keyed as in CEL props.
func Fields(g *core.Graph, v core.VertexIndex) (map[string]any, error) {
	return core.Visit[map[string]any](g, fields, v)
}

// Bindings builds the CEL activation for v. It is exported so that tools can
// show users exactly what an expression sees.
func Bindings(g *core.Graph, v core.VertexIndex) (map[string]any, error) {
	props, err := Fields(g, v)
	if err != nil {
		return nil, err
	}
	n, err := g.Node(v)
	if err != nil {
		return nil, err
	}
	kind, _ := g.Kind(v)

	return map[string]any{
		"index":      int64(v),
		"name":       g.VertexName(v),
		"kind":       kind.String(),
		"path":       g.Path(v),
		"depth":      int64(g.Depth(v)),
		"parents":    int64(g.NumParents(v)),
		"children":   int64(g.NumChildren(v)),
		"in_degree":  int64(g.InDegree(v)),
		"out_degree": int64(g.OutDegree(v)),
		"props":      props,
		"node": map[string]any{
			"id":      n.ID.String(),
			"content": n.Content,
			"flags":   int64(n.Flags),
		},
	}, nil
}
