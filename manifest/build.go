package manifest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/scenegraph/core"
)

// Build creates a graph from d. Vertices are added depth-first in document
// order, so indices follow the order nodes appear in the file. Edges and
// extra references are resolved by absolute path after every vertex exists.
func (d *Document) Build(opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	g := core.NewGraph(o.graphOpts...)

	for i := range d.Scene {
		if err := addNode(g, &d.Scene[i], core.NullVertex, fmt.Sprintf("scene[%d]", i)); err != nil {
			return nil, err
		}
	}
	for i, e := range d.Edges {
		u, err := resolve(g, e.From, fmt.Sprintf("edges[%d].from", i))
		if err != nil {
			return nil, err
		}
		v, err := resolve(g, e.To, fmt.Sprintf("edges[%d].to", i))
		if err != nil {
			return nil, err
		}
		if _, err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}
	for i, r := range d.References {
		p, err := resolve(g, r.Parent, fmt.Sprintf("references[%d].parent", i))
		if err != nil {
			return nil, err
		}
		c, err := resolve(g, r.Child, fmt.Sprintf("references[%d].child", i))
		if err != nil {
			return nil, err
		}
		if _, err = g.AddReference(p, c); err != nil {
			return nil, fmt.Errorf("references[%d]: %w", i, err)
		}
	}

	o.logger.Info("scene built",
		"vertices", g.NumVertices(),
		"edges", g.EdgeCount(),
		"references", g.ReferenceCount())

	return g, nil
}

func resolve(g *core.Graph, path, at string) (core.VertexIndex, error) {
	v, ok := g.Locate(path)
	if !ok {
		return core.NullVertex, fmt.Errorf("%s: %w: %q", at, ErrUnresolvedPath, path)
	}

	return v, nil
}

func addNode(g *core.Graph, spec *NodeSpec, parent core.VertexIndex, at string) error {
	if spec.Name == "" {
		return fmt.Errorf("%s: %w: missing name", at, ErrInvalid)
	}
	at = fmt.Sprintf("%s(%s)", at, spec.Name)

	payload, err := spec.payload()
	if err != nil {
		return fmt.Errorf("%s: %w", at, err)
	}
	node, err := spec.component()
	if err != nil {
		return fmt.Errorf("%s: %w", at, err)
	}

	var vopts []core.VertexOption
	if !parent.IsNull() {
		vopts = append(vopts, core.WithParent(parent))
	}
	v, err := g.AddVertex(payload, spec.Name, node, vopts...)
	if err != nil {
		return fmt.Errorf("%s: %w", at, err)
	}

	for i := range spec.Children {
		if err := addNode(g, &spec.Children[i], v, fmt.Sprintf("%s.children[%d]", at, i)); err != nil {
			return err
		}
	}

	return nil
}

func (s *NodeSpec) component() (core.Node, error) {
	if s.Node == nil {
		return core.Node{}, nil
	}
	n := core.Node{Content: s.Node.Content, Flags: s.Node.Flags}
	if s.Node.ID != "" {
		id, err := uuid.Parse(s.Node.ID)
		if err != nil {
			return core.Node{}, fmt.Errorf("%w: node id: %w", ErrInvalid, err)
		}
		n.ID = id
	}

	return n, nil
}

// payload converts the kind-specific fields, rejecting fields of other kinds.
func (s *NodeSpec) payload() (core.Payload, error) {
	kind, err := core.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if err = s.checkFields(kind); err != nil {
		return nil, err
	}

	switch kind {
	case core.KindSphere:
		p := core.NewSphere()
		if err = assign3(s.Position, "position", &p.X, &p.Y, &p.Z); err != nil {
			return nil, err
		}
		if s.Radius != nil {
			if *s.Radius < 0 {
				return nil, fmt.Errorf("%w: negative radius %g", ErrInvalid, *s.Radius)
			}
			p.Radius = *s.Radius
		}
		return p, nil
	case core.KindBox:
		p := core.NewBox()
		if err = assign3(s.Position, "position", &p.X, &p.Y, &p.Z); err != nil {
			return nil, err
		}
		if err = assign3(s.Size, "size", &p.SizeX, &p.SizeY, &p.SizeZ); err != nil {
			return nil, err
		}
		return p, nil
	case core.KindMesh:
		return &core.Mesh{AssetPath: s.Asset}, nil
	case core.KindLight:
		p := core.NewLight()
		if err = assign3(s.Position, "position", &p.X, &p.Y, &p.Z); err != nil {
			return nil, err
		}
		if err = assign3(s.Dir, "direction", &p.DirX, &p.DirY, &p.DirZ); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownTag, kind)
	}
}

func (s *NodeSpec) checkFields(kind core.Kind) error {
	set := map[string]bool{
		"position":  s.Position != nil,
		"radius":    s.Radius != nil,
		"size":      s.Size != nil,
		"asset":     s.Asset != "",
		"direction": s.Dir != nil,
	}
	allowed := map[core.Kind][]string{
		core.KindSphere: {"position", "radius"},
		core.KindBox:    {"position", "size"},
		core.KindMesh:   {"asset"},
		core.KindLight:  {"position", "direction"},
	}
	for _, f := range allowed[kind] {
		delete(set, f)
	}
	for _, f := range []string{"position", "radius", "size", "asset", "direction"} {
		if set[f] {
			return fmt.Errorf("%w: field %q not valid for kind %s", ErrInvalid, f, kind)
		}
	}

	return nil
}

// assign3 copies a three-element vector into dst; nil leaves dst untouched.
func assign3(vec []float64, field string, x, y, z *float64) error {
	if vec == nil {
		return nil
	}
	if len(vec) != 3 {
		return fmt.Errorf("%w: %s needs 3 values, got %d", ErrInvalid, field, len(vec))
	}
	*x, *y, *z = vec[0], vec[1], vec[2]

	return nil
}
