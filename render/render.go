// Package render prints the reference hierarchy of a scene graph as a tree.
//
//	scene [sphere]
//	├── camera [mesh]
//	│   └── lens [sphere]
//	└── lamp [light]
//	props [box]
//
// Plain output is the default. WithColor styles names, kinds and branches
// with lipgloss; the terminal profile decides how much of that survives.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/scenegraph/core"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
	cycleMark  = " (cycle)"
)

// Styles holds the lipgloss styles used when color is on.
type Styles struct {
	Name   lipgloss.Style
	Kind   map[core.Kind]lipgloss.Style
	Branch lipgloss.Style
	Index  lipgloss.Style
}

// DefaultStyles returns the palette used by WithColor(true).
func DefaultStyles() Styles {
	return Styles{
		Name: lipgloss.NewStyle().Bold(true),
		Kind: map[core.Kind]lipgloss.Style{
			core.KindSphere: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF99")),
			core.KindBox:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
			core.KindMesh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")),
			core.KindLight:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")),
		},
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Index:  lipgloss.NewStyle().Faint(true),
	}
}

// Option configures a render.
type Option func(*config)

type config struct {
	color    bool
	styles   Styles
	kinds    bool
	indices  bool
	maxDepth int
}

func defaults() config {
	return config{styles: DefaultStyles(), kinds: true, maxDepth: -1}
}

// WithColor toggles lipgloss styling.
func WithColor(on bool) Option { return func(c *config) { c.color = on } }

// WithStyles replaces the palette and turns color on.
func WithStyles(s Styles) Option {
	return func(c *config) {
		c.styles = s
		c.color = true
	}
}

// WithKinds toggles the " [kind]" suffix. On by default.
func WithKinds(on bool) Option { return func(c *config) { c.kinds = on } }

// WithIndices appends " #index" to each line.
func WithIndices(on bool) Option { return func(c *config) { c.indices = on } }

// WithMaxDepth stops descending below depth d (0 prints roots only).
// Negative means unlimited.
func WithMaxDepth(d int) Option { return func(c *config) { c.maxDepth = d } }

// Tree writes every root of g and its descendants. A reference cycle with no
// root is not reachable and is not printed.
func Tree(w io.Writer, g *core.Graph, opts ...Option) error {
	p := newPrinter(w, g, opts)
	for r := range g.Roots() {
		p.walk(r, "", "", 0)
	}

	return p.flush()
}

// Subtree writes root and its descendants.
func Subtree(w io.Writer, g *core.Graph, root core.VertexIndex, opts ...Option) error {
	if !g.HasVertex(root) {
		return fmt.Errorf("render: subtree %d: %w", root, core.ErrVertexNotFound)
	}
	p := newPrinter(w, g, opts)
	p.walk(root, "", "", 0)

	return p.flush()
}

// String is Tree into a string.
func String(g *core.Graph, opts ...Option) string {
	var sb strings.Builder
	_ = Tree(&sb, g, opts...)

	return sb.String()
}

type printer struct {
	g      *core.Graph
	cfg    config
	out    *bufio.Writer
	onPath map[core.VertexIndex]bool
	err    error
}

func newPrinter(w io.Writer, g *core.Graph, opts []Option) *printer {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &printer{g: g, cfg: cfg, out: bufio.NewWriter(w), onPath: map[core.VertexIndex]bool{}}
}

// walk prints v after branch and recurses with indent as the child prefix.
func (p *printer) walk(v core.VertexIndex, branch, indent string, depth int) {
	cycle := p.onPath[v]
	p.line(v, branch, cycle)
	if cycle || (p.cfg.maxDepth >= 0 && depth >= p.cfg.maxDepth) {
		return
	}

	p.onPath[v] = true
	n := p.g.NumChildren(v)
	i := 0
	for e := range p.g.Children(v) {
		i++
		if i == n {
			p.walk(e.Child(), indent+branchLast, indent+indentLast, depth+1)
		} else {
			p.walk(e.Child(), indent+branchMid, indent+indentMid, depth+1)
		}
	}
	delete(p.onPath, v)
}

func (p *printer) line(v core.VertexIndex, branch string, cycle bool) {
	if p.err != nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(p.style(p.cfg.styles.Branch, branch))
	sb.WriteString(p.style(p.cfg.styles.Name, p.g.VertexName(v)))
	if p.cfg.kinds {
		k, _ := p.g.Kind(v)
		sb.WriteString(" ")
		sb.WriteString(p.style(p.cfg.styles.Kind[k], "["+k.String()+"]"))
	}
	if p.cfg.indices {
		sb.WriteString(" ")
		sb.WriteString(p.style(p.cfg.styles.Index, fmt.Sprintf("#%d", v)))
	}
	if cycle {
		sb.WriteString(cycleMark)
	}
	sb.WriteString("\n")
	_, p.err = p.out.WriteString(sb.String())
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.cfg.color || text == "" {
		return text
	}

	return s.Render(text)
}

func (p *printer) flush() error {
	if p.err != nil {
		return fmt.Errorf("render: write: %w", p.err)
	}
	if err := p.out.Flush(); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}
