// Package commands implements the scenegraph CLI: read-only inspection of
// YAML scene descriptions.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/manifest"
)

// envPrefix scopes environment overrides, e.g. SCENEGRAPH_LOG_LEVEL.
const envPrefix = "SCENEGRAPH"

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#00FF99"))

// app is the state shared by every subcommand of one root.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *slog.Logger
}

// Execute runs the CLI against os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "scenegraph",
		Short: "Inspect scene graph descriptions",
		Long: `scenegraph loads YAML scene descriptions into an in-memory scene graph
and answers questions about them: hierarchy, paths, payloads and filters.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("color", false, "style output with colors")
	pf.Bool("strict", false, "load graphs in strict-removal mode; no command removes vertices, stats reports the mode")

	root.AddCommand(
		a.treeCmd(),
		a.locateCmd(),
		a.pathCmd(),
		a.inspectCmd(),
		a.findCmd(),
		a.statsCmd(),
		a.walkCmd(),
	)

	return root
}

// initConfig layers flags over environment over the config file.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}

// load builds the graph described by path with the configured options.
func (a *app) load(path string) (*core.Graph, *manifest.Document, error) {
	return manifest.Load(path, a.manifestOptions()...)
}

func (a *app) manifestOptions() []manifest.Option {
	graphOpts := []core.GraphOption{core.WithLogger(a.logger)}
	if a.v.GetBool("strict") {
		graphOpts = append(graphOpts, core.WithStrictRemoval())
	}

	return []manifest.Option{
		manifest.WithLogger(a.logger),
		manifest.WithGraphOptions(graphOpts...),
	}
}

// title styles a heading when color is on.
func (a *app) title(s string) string {
	if !a.v.GetBool("color") {
		return s
	}

	return titleStyle.Render(s)
}

// resolve maps a path argument to a vertex, accepting "#N" for a raw index.
func resolve(g *core.Graph, arg string) (core.VertexIndex, error) {
	if idx, ok := strings.CutPrefix(arg, "#"); ok {
		n, err := strconv.ParseUint(idx, 10, 32)
		if err != nil || !g.HasVertex(core.VertexIndex(n)) {
			return core.NullVertex, fmt.Errorf("%s: %w", arg, core.ErrVertexNotFound)
		}

		return core.VertexIndex(n), nil
	}
	v, ok := g.Locate(arg)
	if !ok {
		return core.NullVertex, fmt.Errorf("%s: %w", arg, core.ErrVertexNotFound)
	}

	return v, nil
}
