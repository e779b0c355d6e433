// Package manifest builds a core.Graph from a YAML scene description.
//
//	scene:
//	  - name: scene
//	    kind: sphere
//	    radius: 2
//	    children:
//	      - name: camera
//	        kind: mesh
//	        asset: camera.glb
//	        node: {content: main camera, flags: 1}
//	  - name: props
//	    kind: box
//	    position: [0, 0, 4]
//	    size: [2, 1, 1]
//	edges:
//	  - {from: scene/camera, to: props}
//	references:
//	  - {parent: props, child: scene/camera}
//	queries:
//	  - {id: big, expr: 'kind == "sphere" && props.radius > 1.0'}
//
// Loading is one way: nothing here writes a graph back out.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/query"
)

// Sentinel errors.
var (
	// ErrInvalid indicates a structurally valid YAML document that does not
	// describe a scene (missing name, field not valid for its kind, bad vector).
	ErrInvalid = errors.New("manifest: invalid scene description")
	// ErrUnresolvedPath indicates an edge or reference naming a path that
	// resolves to no vertex.
	ErrUnresolvedPath = errors.New("manifest: path does not resolve")
)

// Document is the decoded YAML description.
type Document struct {
	Scene      []NodeSpec      `yaml:"scene"`
	Edges      []EdgeSpec      `yaml:"edges"`
	References []ReferenceSpec `yaml:"references"`
	Queries    []QuerySpec     `yaml:"queries"`
}

// NodeSpec describes one vertex and its subtree. Only the payload fields of
// its kind may be set.
type NodeSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Position []float64  `yaml:"position"`  // sphere, box, light
	Radius   *float64   `yaml:"radius"`    // sphere
	Size     []float64  `yaml:"size"`      // box
	Asset    string     `yaml:"asset"`     // mesh
	Dir      []float64  `yaml:"direction"` // light
	Node     *NodeData  `yaml:"node"`
	Children []NodeSpec `yaml:"children"`
}

// NodeData fills the Node component.
type NodeData struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
	Flags   uint32 `yaml:"flags"`
}

// EdgeSpec is a generic edge between two absolute paths.
type EdgeSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// ReferenceSpec adds a reference beyond the nesting, e.g. a second parent.
type ReferenceSpec struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// QuerySpec is a named CEL filter stored alongside the scene.
type QuerySpec struct {
	ID   string `yaml:"id"`
	Expr string `yaml:"expr"`
}

// Option configures Build and Load.
type Option func(*options)

type options struct {
	graphOpts []core.GraphOption
	logger    *slog.Logger
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}

// WithLogger receives an Info record per built graph.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Decode reads one document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("manifest: parse yaml: %w", err)
	}

	return &doc, nil
}

// Parse decodes data.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads the file at path and builds its graph.
func Load(path string, opts ...Option) (*core.Graph, *Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := doc.Build(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, doc, nil
}

// Filters compiles the document's queries keyed by ID.
func (d *Document) Filters(opts ...query.Option) (map[string]*query.Filter, error) {
	out := make(map[string]*query.Filter, len(d.Queries))
	for i, q := range d.Queries {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: queries[%d]: missing id", ErrInvalid, i)
		}
		if _, dup := out[q.ID]; dup {
			return nil, fmt.Errorf("%w: queries[%d]: duplicate id %q", ErrInvalid, i, q.ID)
		}
		f, err := query.Compile(q.Expr, opts...)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.ID, err)
		}
		out[q.ID] = f
	}

	return out, nil
}
