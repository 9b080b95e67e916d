package builder

import (
	"fmt"

	"github.com/katalvlaran/ucsroute/core"
)

// Constructor adds one topology to g using the resolved config. It must not
// panic and must emit vertices and edges in a stable order.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// cons in order. Constructor errors are wrapped as "BuildGraph: %w".
//
// Constructors share the ID scheme, so composing two of them without
// distinct WithIDScheme calls joins them at their common station labels.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph.
func Apply(g *core.Graph, bopts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addVertices inserts ids 0..n-1 through cfg.idFn.
func addVertices(g *core.Graph, cfg config, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// link adds u—v with a freshly drawn cost. With mirror set, a directed
// graph also receives v→u at the same cost.
func link(g *core.Graph, cfg config, u, v string, mirror bool) error {
	c := cfg.costFn(cfg.rng)
	if err := g.AddEdge(u, v, c); err != nil {
		return fmt.Errorf("AddEdge(%s→%s, cost=%d): %w", u, v, c, err)
	}
	if mirror && g.Directed() {
		if err := g.AddEdge(v, u, c); err != nil {
			return fmt.Errorf("AddEdge(%s→%s, cost=%d): %w", v, u, c, err)
		}
	}

	return nil
}
