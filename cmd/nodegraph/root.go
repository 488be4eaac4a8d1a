//go:build !js

package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/config"
	"github.com/phanxgames/nodegraph/internal/ctxlog"
	"github.com/phanxgames/nodegraph/internal/ui"
	"github.com/phanxgames/nodegraph/source"
)

var version = "0.3.0"

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
}

// graphFlags selects the graph payload. An explicit flag beats the config
// file's [source] section, and with neither the embedded sample is used.
type graphFlags struct {
	file string
	url  string
}

func (f *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "graph", "", "Read the graph payload from `FILE`")
	cmd.Flags().StringVar(&f.url, "url", "", "Fetch the graph payload from `URL`")
	cmd.MarkFlagsMutuallyExclusive("graph", "url")
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "nodegraph",
		Short:         "Interactive node-link diagrams",
		Long:          ui.Brand.Sprint("nodegraph") + " lays out a graph breadth-first on a grid and lets you drag its nodes around",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("nodegraph {{ .Version }}\n")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config `FILE` (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log debug records, including per-frame render stats")

	root.AddCommand(
		viewCmd(a),
		layoutCmd(a),
	)
	return root
}

// execute wraps cobra's Execute with colored error output.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		ui.Bad.Fprintf(os.Stderr, "nodegraph: %v\n", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Window.Debug = true
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Window.Debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, a.logger))
	return nil
}

// options returns the diagram options for the loaded config.
func (a *app) options() (nodegraph.Options, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return opts, err
	}
	opts.Logger = a.logger
	return opts, nil
}

// loadGraph reads the payload selected by flags and config.
func (a *app) loadGraph(ctx context.Context, f graphFlags) (nodegraph.Graph, error) {
	log := ctxlog.FromContext(ctx)
	file, url := f.file, f.url
	if file == "" && url == "" {
		file, url = a.cfg.Source.File, a.cfg.Source.URL
	}

	switch {
	case file != "":
		log.Debug("loading graph", "file", file)
		return source.LoadFile(file)
	case url != "":
		timeout, err := a.cfg.FetchTimeout()
		if err != nil {
			return nodegraph.Graph{}, err
		}
		fetcher := source.NewFetcher(url)
		if timeout > 0 {
			fetcher.Client.Timeout = timeout
		}
		return fetcher.Fetch(ctx)
	default:
		log.Debug("no graph source configured, using the sample graph")
		g, err := source.Decode(bytes.NewReader(sampleGraph))
		if err != nil {
			return nodegraph.Graph{}, fmt.Errorf("sample graph: %w", err)
		}
		return g, nil
	}
}
