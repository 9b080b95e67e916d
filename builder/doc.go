// Package builder generates synthetic rail networks as core.Graph values:
// straight lines, circle lines, grids and random sparse networks.
//
// Generated networks are deterministic for a fixed seed and option order,
// which makes them suitable for golden tests, property tests against a
// reference shortest-path algorithm, benchmarks, and for producing sample
// edge lists with `ucsroute generate`.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformCost(1, 20)},
//		builder.Line(5),
//		builder.Cycle(4),
//	)
//
// Station IDs default to spreadsheet-style letters: A..Z, AA, AB, ...
// Grid stations use "rRcC" coordinates instead.
package builder
