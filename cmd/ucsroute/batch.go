package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsroute/internal/report"
	"github.com/katalvlaran/ucsroute/loader"
	"github.com/katalvlaran/ucsroute/ucs"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	var (
		queries     string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Answer many start,goal queries concurrently, one line each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if queries == "" {
				return fmt.Errorf("--queries is required")
			}
			g, err := root.loadGraph(args)
			if err != nil {
				return err
			}
			qs, err := loader.LoadQueries(queries)
			if err != nil {
				return err
			}

			limit := root.cfg.Batch.Concurrency
			if cmd.Flags().Changed("concurrency") {
				limit = concurrency
			}

			results, err := ucs.RunBatch(cmd.Context(), g, qs, limit)
			if err != nil {
				return err
			}
			root.logger.Info("batch finished",
				slog.Int("queries", len(qs)),
				slog.Int("limit", limit),
			)

			f := root.format()
			for _, res := range results {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), report.Line(res, f)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&queries, "queries", "", "CSV file of start,goal pairs")
	fs.IntVar(&concurrency, "concurrency", 0, "searches run at once (0 = GOMAXPROCS)")

	return cmd
}
