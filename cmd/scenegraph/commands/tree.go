package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scenegraph/render"
)

func (a *app) treeCmd() *cobra.Command {
	var (
		from    string
		depth   int
		indices bool
		noKinds bool
	)
	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the reference hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			opts := []render.Option{
				render.WithColor(a.v.GetBool("color")),
				render.WithMaxDepth(depth),
				render.WithIndices(indices),
				render.WithKinds(!noKinds),
			}
			if from == "" {
				return render.Tree(cmd.OutOrStdout(), g, opts...)
			}
			v, err := resolve(g, from)
			if err != nil {
				return err
			}

			return render.Subtree(cmd.OutOrStdout(), g, v, opts...)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "print only the subtree at this path")
	cmd.Flags().IntVar(&depth, "depth", -1, "maximum depth to print (-1 for all)")
	cmd.Flags().BoolVar(&indices, "indices", false, "show vertex indices")
	cmd.Flags().BoolVar(&noKinds, "no-kinds", false, "hide payload kinds")

	return cmd
}
