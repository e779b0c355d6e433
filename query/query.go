// Package query filters scene graph vertices with CEL expressions.
//
// An expression sees one vertex at a time through these variables:
//
//	index      int                 vertex index
//	name       string              vertex name
//	kind       string              payload kind ("sphere", "box", "mesh", "light")
//	path       string              slash-delimited path from its root
//	depth      int                 Parent links to its root
//	parents    int                 reference entries pointing at it
//	children   int                 references leaving it
//	in_degree  int                 generic in-edges
//	out_degree int                 generic out-edges
//	props      map(string, dyn)    payload fields, e.g. props.radius
//	node       map(string, dyn)    Node component: id, content, flags
//
// Example: kind == "sphere" && props.radius > 0.5 && path.startsWith("scene/")
package query

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/scenegraph/core"
)

// Sentinel errors.
var (
	// ErrCompile wraps CEL parse and type-check failures.
	ErrCompile = errors.New("query: compile expression")
	// ErrEval wraps runtime evaluation failures (missing map key, overflow).
	ErrEval = errors.New("query: evaluate expression")
	// ErrNotBoolean indicates the expression produced a non-bool value.
	ErrNotBoolean = errors.New("query: expression is not boolean")
)

// Option configures Compile.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

// WithLogger receives Debug records for vertices skipped by Select.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrictEval makes Select fail on the first evaluation error instead of
// treating the vertex as unmatched.
func WithStrictEval() Option {
	return func(o *options) { o.strict = true }
}

// Filter is a compiled vertex predicate. It is safe to reuse across graphs.
type Filter struct {
	expr string
	prg  cel.Program
	opts options
}

// newEnv declares the per-vertex variables.
func newEnv() (*cel.Env, error) {
	dyn := cel.MapType(cel.StringType, cel.DynType)

	return cel.NewEnv(
		cel.Variable("index", cel.IntType),
		cel.Variable("name", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("depth", cel.IntType),
		cel.Variable("parents", cel.IntType),
		cel.Variable("children", cel.IntType),
		cel.Variable("in_degree", cel.IntType),
		cel.Variable("out_degree", cel.IntType),
		cel.Variable("props", dyn),
		cel.Variable("node", dyn),
	)
}

// Compile parses and type-checks expr.
func Compile(expr string, opts ...Option) (*Filter, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("query: create CEL env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, expr, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, expr, err)
	}

	return &Filter{expr: expr, prg: prg, opts: o}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match evaluates the filter against v.
//
// Errors:
//   - core.ErrVertexNotFound: v out of range.
//   - ErrEval: the expression failed at runtime.
//   - ErrNotBoolean: the result is not a bool.
func (f *Filter) Match(g *core.Graph, v core.VertexIndex) (bool, error) {
	vars, err := Bindings(g, v)
	if err != nil {
		return false, err
	}
	out, _, err := f.prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("%w at vertex %d: %w", ErrEval, v, err)
	}
	match, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %s", ErrNotBoolean, out.Type().TypeName())
	}

	return match, nil
}

// Select evaluates the filter against every vertex of g.
//
// A vertex whose evaluation fails (for example props.radius on a box) is
// logged at Debug and left out, unless WithStrictEval was given.
func (f *Filter) Select(g *core.Graph) (*Selection, error) {
	return f.SelectFrom(g, nil)
}

// SelectFrom is Select restricted to the vertices of within; nil means all.
func (f *Filter) SelectFrom(g *core.Graph, within *Selection) (*Selection, error) {
	sel := NewSelection()
	candidates := g.Vertices()
	if within != nil {
		candidates = within.All()
	}
	for v := range candidates {
		ok, err := f.Match(g, v)
		if err != nil {
			if f.opts.strict || errors.Is(err, ErrNotBoolean) {
				return nil, err
			}
			f.opts.logger.Debug("vertex skipped", "vertex", v, "expr", f.expr, "error", err)
			continue
		}
		if ok {
			sel.Add(v)
		}
	}

	return sel, nil
}
