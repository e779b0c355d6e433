package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scenegraph/query"
)

func (a *app) findCmd() *cobra.Command {
	var (
		saved  string
		within string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "find FILE [EXPR]",
		Short: "List vertices matching a CEL expression",
		Long: `List the paths of vertices matching a CEL expression.

Variables: index, name, kind, path, depth, parents, children, in_degree,
out_degree, props (payload fields) and node (id, content, flags).

  scenegraph find scene.yaml 'kind == "sphere" && props.radius > 1.0'
  scenegraph find scene.yaml --saved big`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			qopts := []query.Option{query.WithLogger(a.logger)}
			if strict {
				qopts = append(qopts, query.WithStrictEval())
			}

			var f *query.Filter
			switch {
			case saved != "" && len(args) == 2:
				return fmt.Errorf("give either EXPR or --saved, not both")
			case saved != "":
				filters, err := doc.Filters(qopts...)
				if err != nil {
					return err
				}
				if f = filters[saved]; f == nil {
					return fmt.Errorf("no saved query %q in %s", saved, args[0])
				}
			case len(args) == 2:
				if f, err = query.Compile(args[1], qopts...); err != nil {
					return err
				}
			default:
				return fmt.Errorf("missing EXPR or --saved")
			}

			var scope *query.Selection
			if within != "" {
				v, err := resolve(g, within)
				if err != nil {
					return err
				}
				scope = query.Subtree(g, v)
			}
			sel, err := f.SelectFrom(g, scope)
			if err != nil {
				return err
			}
			a.logger.Debug("query evaluated", "expr", f.String(), "matches", sel.Len())

			out := cmd.OutOrStdout()
			for v := range sel.All() {
				if _, err := fmt.Fprintln(out, g.Path(v)); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&saved, "saved", "", "run a query stored in the file's queries section")
	cmd.Flags().StringVar(&within, "within", "", "restrict the search to the subtree at this path")
	cmd.Flags().BoolVar(&strict, "strict-eval", false, "fail on evaluation errors instead of skipping the vertex")

	return cmd
}
