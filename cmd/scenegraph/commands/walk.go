package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/traverse"
)

func (a *app) walkCmd() *cobra.Command {
	var (
		from  string
		order string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "List vertices in depth-first or breadth-first hierarchy order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			o, err := traverse.ParseOrder(order)
			if err != nil {
				return err
			}
			start := core.NullVertex
			if from != "" {
				if start, err = resolve(g, from); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			_, err = traverse.Walk(g, start,
				traverse.WithContext(cmd.Context()),
				traverse.WithOrder(o),
				traverse.WithMaxDepth(depth),
				traverse.WithOnVisit(func(v core.VertexIndex, d int) error {
					_, err := fmt.Fprintf(out, "%d\t%s\n", d, g.Path(v))
					return err
				}))

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start at this path instead of every root")
	cmd.Flags().StringVar(&order, "order", "dfs", "dfs or bfs")
	cmd.Flags().IntVar(&depth, "depth", -1, "maximum depth (-1 for all)")

	return cmd
}
