package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/manifest"
)

// fileStats is the JSON shape of one file's statistics.
type fileStats struct {
	Path          string         `json:"path"`
	Vertices      int            `json:"vertices"`
	Edges         int            `json:"edges"`
	References    int            `json:"references"`
	Roots         int            `json:"roots"`
	MaxDepth      int            `json:"max_depth"`
	Kinds         map[string]int `json:"kinds"`
	StrictRemoval bool           `json:"strict_removal"`
}

func newFileStats(path string, s *core.GraphStats) fileStats {
	kinds := make(map[string]int, len(s.KindCounts))
	for k, n := range s.KindCounts {
		kinds[k.String()] = n
	}

	return fileStats{
		Path:          path,
		Vertices:      s.VertexCount,
		Edges:         s.EdgeCount,
		References:    s.ReferenceCount,
		Roots:         s.RootCount,
		MaxDepth:      s.MaxDepth,
		Kinds:         kinds,
		StrictRemoval: s.StrictRemoval,
	}
}

func (a *app) statsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Summarize one or more scene files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := manifest.LoadAll(cmd.Context(), args, a.manifestOptions()...)
			if err != nil {
				return err
			}
			all := make([]fileStats, 0, len(scenes))
			for _, sc := range scenes {
				all = append(all, newFileStats(sc.Path, sc.Graph.Stats()))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(all, "", "  ")
				if err != nil {
					return fmt.Errorf("encode stats: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))

				return err
			}
			for _, s := range all {
				a.printStats(out, s)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func (a *app) printStats(w io.Writer, s fileStats) {
	fmt.Fprintln(w, a.title(s.Path))
	fmt.Fprintf(w, "  vertices:   %d\n", s.Vertices)
	fmt.Fprintf(w, "  edges:      %d\n", s.Edges)
	fmt.Fprintf(w, "  references: %d\n", s.References)
	fmt.Fprintf(w, "  roots:      %d\n", s.Roots)
	fmt.Fprintf(w, "  max depth:  %d\n", s.MaxDepth)
	for _, k := range core.Kinds() {
		if n := s.Kinds[k.String()]; n > 0 {
			fmt.Fprintf(w, "  %-11s %d\n", k.String()+":", n)
		}
	}
}
