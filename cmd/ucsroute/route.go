package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsroute/internal/config"
	"github.com/katalvlaran/ucsroute/internal/logging"
	"github.com/katalvlaran/ucsroute/internal/report"
	"github.com/katalvlaran/ucsroute/ucs"
)

func newRouteCmd(root *rootOptions) *cobra.Command {
	var (
		from, to     string
		trace        bool
		showExpanded bool
	)

	cmd := &cobra.Command{
		Use:   "route [file]",
		Short: "Print the cheapest route between two stations",
		Long: "Loads the edge list, asks for the boarding and alighting stations " +
			"unless --from/--to are given, and prints the cheapest path with its cost.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := root.loadGraph(args)
			if err != nil {
				return err
			}

			a := newAsker(cmd.InOrStdin(), cmd.OutOrStdout())
			if from, err = a.ask(from, questionFrom); err != nil {
				return err
			}
			if to, err = a.ask(to, questionTo); err != nil {
				return err
			}

			logger := root.logger
			var opts []ucs.Option
			if trace {
				logger = logging.New(config.LogConfig{
					Level:         "debug",
					Format:        root.cfg.Log.Format,
					IncludeCaller: root.cfg.Log.IncludeCaller,
				}, cmd.ErrOrStderr())
				opts = traceOptions(logger)
			}

			res := ucs.Search(g, from, to, opts...)
			logger.Debug("search finished",
				slog.String("from", from),
				slog.String("to", to),
				slog.Bool("found", res.Found),
				slog.Int("expanded", len(res.Expanded)),
			)

			f := root.format()
			if cmd.Flags().Changed("show-expanded") {
				f.ShowExpanded = showExpanded
			}

			return report.Route(cmd.OutOrStdout(), res, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&from, "from", "", "boarding station; prompted for when empty")
	fs.StringVar(&to, "to", "", "alighting station; prompted for when empty")
	fs.BoolVar(&trace, "trace", false, "log every frontier snapshot and expansion at debug level")
	fs.BoolVar(&showExpanded, "show-expanded", false, "print the expanded nodes before the path")

	return cmd
}

// traceOptions logs the search step by step: the frontier at each
// iteration, then every expansion and discarded rediscovery.
func traceOptions(logger *slog.Logger) []ucs.Option {
	ctx := context.Background()
	return []ucs.Option{
		ucs.WithOnIteration(func(i int, frontier []*ucs.Node) {
			if !logger.Enabled(ctx, slog.LevelDebug) {
				return
			}
			labels := make([]string, len(frontier))
			for j, n := range frontier {
				labels[j] = n.String()
			}
			logger.Debug("iteration", slog.Int("n", i), slog.Any("frontier", labels))
		}),
		ucs.WithOnExpand(func(n *ucs.Node) {
			logger.Debug("expand", slog.String("node", n.String()))
		}),
		ucs.WithOnDiscard(func(n *ucs.Node) {
			logger.Debug("discard", slog.String("node", n.String()))
		}),
	}
}
