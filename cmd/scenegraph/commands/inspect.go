package commands

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/query"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE PATH",
		Short: "Show the payload, component and links of one vertex",
		Long:  "Show the payload, component and links of one vertex. PATH may be #N for a raw index.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			v, err := resolve(g, args[1])
			if err != nil {
				return err
			}

			var sb strings.Builder
			if err := a.describe(&sb, g, v); err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())

			return err
		},
	}
}

func (a *app) describe(sb *strings.Builder, g *core.Graph, v core.VertexIndex) error {
	fields, err := query.Fields(g, v)
	if err != nil {
		return err
	}
	n, err := g.Node(v)
	if err != nil {
		return err
	}
	kind, _ := g.Kind(v)

	fmt.Fprintln(sb, a.title(g.Path(v)))
	row(sb, "index", v)
	row(sb, "kind", kind)
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		row(sb, k, fields[k])
	}
	row(sb, "id", n.ID)
	if n.Content != "" {
		row(sb, "content", n.Content)
	}
	row(sb, "flags", n.Flags)
	row(sb, "parents", joinPaths(g, g.Parents(v), core.Edge.Parent))
	row(sb, "children", joinPaths(g, g.Children(v), core.Edge.Child))
	row(sb, "out", joinPaths(g, g.OutEdges(v), core.Edge.Target))
	row(sb, "in", joinPaths(g, g.InEdges(v), core.Edge.Source))

	return nil
}

func row(sb *strings.Builder, key string, value any) {
	fmt.Fprintf(sb, "  %-10s%v\n", key+":", value)
}

func joinPaths(g *core.Graph, edges iter.Seq[core.Edge], end func(core.Edge) core.VertexIndex) string {
	var paths []string
	for e := range edges {
		paths = append(paths, g.Path(end(e)))
	}
	if len(paths) == 0 {
		return "-"
	}

	return strings.Join(paths, ", ")
}
