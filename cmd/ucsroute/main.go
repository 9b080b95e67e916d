// Command ucsroute finds the cheapest train route between two stations of
// an edge-list network.
//
//	ucsroute route --file routes.csv --from A --to C
//	ucsroute route routes.csv            # prompts for both stations
//	ucsroute stops --file routes.csv --from A --to C
//	ucsroute batch --file routes.csv --queries pairs.csv
//	ucsroute networks routes.csv
//	ucsroute generate --kind grid --rows 3 --cols 3 > grid.csv
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsroute/core"
	"github.com/katalvlaran/ucsroute/internal/config"
	"github.com/katalvlaran/ucsroute/internal/logging"
	"github.com/katalvlaran/ucsroute/internal/report"
	"github.com/katalvlaran/ucsroute/loader"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// rootOptions carries persistent flags and the state resolved from them.
type rootOptions struct {
	configPath string
	file       string
	logLevel   string
	logFormat  string
	directed   bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "ucsroute",
		Short:         "Find the cheapest route between two stations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.file, "file", "", "edge list CSV with from,to,cost lines")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format: text|json")
	pf.BoolVar(&opts.directed, "directed", false, "treat each line as a one-way edge")

	root.AddCommand(newRouteCmd(opts))
	root.AddCommand(newStopsCmd(opts))
	root.AddCommand(newBatchCmd(opts))
	root.AddCommand(newNetworksCmd(opts))
	root.AddCommand(newGenerateCmd(opts))
	return root
}

// resolve merges defaults, the config file and explicitly set flags, then
// builds the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Graph.File = o.file
	}
	if flags.Changed("directed") {
		cfg.Graph.Directed = o.directed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logging.New(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// loadGraph loads the configured edge list; a positional argument wins
// over --file and graph.file.
func (o *rootOptions) loadGraph(args []string) (*core.Graph, error) {
	file := o.cfg.Graph.File
	if len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return nil, fmt.Errorf("no edge list given: pass a file argument, --file, or set graph.file")
	}

	lopts := []loader.Option{
		loader.WithComment(o.cfg.Graph.CommentRune()),
		loader.WithLogger(o.logger.With(slog.String("file", file))),
	}
	if o.cfg.Graph.Directed {
		lopts = append(lopts, loader.WithDirected())
	}

	return loader.Load(file, lopts...)
}

func (o *rootOptions) format() report.Format {
	return report.Format{
		Separator:    o.cfg.Output.Separator,
		Unit:         o.cfg.Output.Unit,
		ShowExpanded: o.cfg.Output.ShowExpanded,
	}
}
