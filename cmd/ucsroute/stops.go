package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsroute/bfs"
	"github.com/katalvlaran/ucsroute/internal/report"
)

func newStopsCmd(root *rootOptions) *cobra.Command {
	var (
		from, to string
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "stops [file]",
		Short: "Print the route with the fewest stops, ignoring cost",
		Args:  cobra.MaximumNArgs(1),
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

			path, err := bfs.Route(g, from, to,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			switch {
			case errors.Is(err, bfs.ErrNoPath), errors.Is(err, bfs.ErrStartVertexNotFound):
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No route from %s to %s\n", from, to)
				return err
			case err != nil:
				return err
			}

			return report.Stops(cmd.OutOrStdout(), path, root.format())
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&from, "from", "", "boarding station; prompted for when empty")
	fs.StringVar(&to, "to", "", "alighting station; prompted for when empty")
	fs.IntVar(&maxDepth, "max-depth", 0, "give up beyond this many hops (0 = unlimited)")

	return cmd
}
