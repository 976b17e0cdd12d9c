package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qosroute/config"
	"github.com/katalvlaran/qosroute/internal/logging"
	"github.com/katalvlaran/qosroute/loader"
	"github.com/katalvlaran/qosroute/network"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	output     string
	nodes      string
	edges      string
}

// app carries the state built in PersistentPreRunE.
type app struct {
	flags globalFlags
	cfg   *config.Config
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "qosroute",
		Short:         "QoS-constrained path search",
		Long:          "qosroute searches a network for a path that meets a bandwidth demand while minimising a weighted mix of delay, unreliability and resource cost.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	pf.StringVarP(&a.flags.output, "output", "o", "text", "output format: text|json")
	pf.StringVar(&a.flags.nodes, "nodes", "", "node table (overrides data.nodes)")
	pf.StringVar(&a.flags.edges, "edges", "", "edge table (overrides data.edges)")

	root.AddCommand(
		newSolveCmd(a),
		newCompareCmd(a),
		newDemandsCmd(a),
		newServeCmd(a),
		newGenerateCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		var err error
		if cfg, err = config.Load(a.flags.configPath); err != nil {
			return err
		}
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.nodes != "" {
		cfg.Data.Nodes = a.flags.nodes
	}
	if a.flags.edges != "" {
		cfg.Data.Edges = a.flags.edges
	}
	if a.flags.output != "text" && a.flags.output != "json" {
		return fmt.Errorf("unknown output format %q", a.flags.output)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log.With(zap.String("command", cmd.Name()))
	return nil
}

// loadGraph reads the tables named by the data section.
func (a *app) loadGraph() (*network.Graph, error) {
	d := a.cfg.Data
	if d.Nodes == "" || d.Edges == "" {
		return nil, fmt.Errorf("node and edge tables are required (--nodes/--edges or data.nodes/data.edges)")
	}
	var opts []loader.Option
	if d.Lenient {
		opts = append(opts, loader.WithLenientAttributes())
	}
	if d.SkipDuplicateLinks {
		opts = append(opts, loader.WithSkipDuplicateLinks())
	}
	g, err := loader.LoadGraphFiles(d.Nodes, d.Edges, opts...)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	a.log.Info("network loaded",
		zap.String("nodes", d.Nodes),
		zap.String("edges", d.Edges),
		zap.Int("vertices", st.Vertices),
		zap.Int("links", st.Links))
	return g, nil
}

func (a *app) out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
