package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scenegraph/core"
)

func (a *app) locateCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "locate FILE PATH",
		Short: "Print the vertex index a path resolves to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := core.NullVertex
			if from != "" {
				if start, err = resolve(g, from); err != nil {
					return err
				}
			}
			v, ok := g.LocateRelative(args[1], start)
			if !ok {
				return fmt.Errorf("%s: %w", args[1], core.ErrVertexNotFound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "resolve relative to this path")

	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE INDEX",
		Short: "Print the path of a vertex index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil || !g.HasVertex(core.VertexIndex(n)) {
				return fmt.Errorf("index %s: %w", args[1], core.ErrVertexNotFound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Path(core.VertexIndex(n)))

			return err
		},
	}
}
