package builder

import (
	"fmt"

	"github.com/katalvlaran/ucsroute/core"
)

const (
	minLine  = 2
	minCycle = 3
	minGrid  = 1
)

// Line builds a straight line of n stations: 0—1—…—(n-1).
// In a directed graph the line runs one way only.
// Complexity: O(n).
func Line(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minLine {
			return fmt.Errorf("Line: n=%d < min=%d: %w", n, minLine, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Line: %w", err)
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, cfg.idFn(i), cfg.idFn(i+1), false); err != nil {
				return fmt.Errorf("Line: %w", err)
			}
		}

		return nil
	}
}

// Cycle builds a circle line of n stations, closing (n-1)—0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycle {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycle, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n), false); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// GridID is the fixed label of grid cell (r, c), e.g. "r0c2".
func GridID(r, c int) string { return fmt.Sprintf("r%dc%d", r, c) }

// Grid builds a rows×cols street grid with 4-neighborhood links. Edges are
// emitted per cell in row-major order, right neighbor first, then bottom.
// Directed graphs get both directions. Grid ignores the ID scheme.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGrid || cols < minGrid {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGrid, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("Grid: %w", err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(g, cfg, u, GridID(r, c+1), true); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, u, GridID(r+1, c), true); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi network: every admissible pair is
// linked independently with probability p. Undirected graphs try pairs
// i<j; directed graphs try all ordered pairs i≠j. Trials run in ascending
// (i, j) order, so the result is fixed by the seed.
//
// An RNG is required unless p is 0 or 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("RandomSparse: %w", err)
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := link(g, cfg, cfg.idFn(i), cfg.idFn(j), false); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}

func trial(cfg config, p float64) bool {
	switch {
	case p == 0:
		return false
	case p == 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
