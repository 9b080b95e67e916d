package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsroute/builder"
	"github.com/katalvlaran/ucsroute/core"
	"github.com/katalvlaran/ucsroute/loader"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		kind             string
		n, rows, cols    int
		p                float64
		seed             int64
		minCost, maxCost int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic edge list to stdout",
		Long: "Writes one from,to,cost line per generated edge. Stations left without " +
			"any edge (possible with --kind random and a low --p) are not written.",
		Example: "  ucsroute generate --kind line --n 6 --min-cost 2 --max-cost 9 --seed 3\n" +
			"  ucsroute generate --kind grid --rows 4 --cols 4 > grid.csv",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ctor builder.Constructor
			switch kind {
			case "line":
				ctor = builder.Line(n)
			case "cycle":
				ctor = builder.Cycle(n)
			case "grid":
				ctor = builder.Grid(rows, cols)
			case "random":
				ctor = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown --kind %q (want line|cycle|grid|random)", kind)
			}
			if minCost < 0 || maxCost < minCost {
				return fmt.Errorf("invalid cost range [%d, %d]", minCost, maxCost)
			}

			var gopts []core.GraphOption
			if root.cfg.Graph.Directed {
				gopts = append(gopts, core.WithDirected())
			}
			g, err := builder.BuildGraph(gopts,
				[]builder.Option{builder.WithSeed(seed), builder.WithUniformCost(minCost, maxCost)},
				ctor,
			)
			if err != nil {
				return err
			}
			root.logger.Debug("network generated",
				slog.String("kind", kind),
				slog.Int("vertices", g.VertexCount()),
				slog.Int("edges", g.EdgeCount()),
			)

			return loader.Write(cmd.OutOrStdout(), g, loader.WithComment(root.cfg.Graph.CommentRune()))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&kind, "kind", "line", "topology: line|cycle|grid|random")
	fs.IntVar(&n, "n", 5, "stations for line, cycle and random")
	fs.IntVar(&rows, "rows", 3, "grid rows")
	fs.IntVar(&cols, "cols", 3, "grid columns")
	fs.Float64Var(&p, "p", 0.3, "link probability for random")
	fs.Int64Var(&seed, "seed", 1, "RNG seed")
	fs.Int64Var(&minCost, "min-cost", 1, "lowest edge cost")
	fs.Int64Var(&maxCost, "max-cost", 1, "highest edge cost")

	return cmd
}
