package ucs

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunBatch runs one Search per query concurrently over the shared graph g
// and returns the results in query order.
//
// At most limit searches run at once; limit <= 0 means GOMAXPROCS. Each
// search owns its frontier and expanded set, and g is only read, so no
// further coordination is needed as long as g is not mutated meanwhile.
//
// The only error is ctx's: once ctx is done, queries that have not started
// are skipped and RunBatch returns ctx.Err() with no results.
func RunBatch(ctx context.Context, g Graph, queries []Query, limit int, opts ...Option) ([]*Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = Search(g, q.Start, q.Goal, opts...)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
