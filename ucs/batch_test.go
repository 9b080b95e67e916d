package ucs_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/ucsroute/ucs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_MatchesSequentialRun(t *testing.T) {
	g := routes(t)
	labels := g.Vertices()

	var queries []ucs.Query
	for _, s := range labels {
		for _, e := range labels {
			queries = append(queries, ucs.Query{Start: s, Goal: e})
		}
	}

	results, err := ucs.RunBatch(context.Background(), g, queries, 4)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, q := range queries {
		path, ok := ucs.Run(g, q.Start, q.Goal)
		res := results[i]
		require.NotNil(t, res)
		assert.Equal(t, q.Start, res.Start)
		assert.Equal(t, q.Goal, res.Goal)
		assert.Equal(t, ok, res.Found, "%s->%s", q.Start, q.Goal)
		assert.Equal(t, steps(path), steps(res.Path), "%s->%s", q.Start, q.Goal)
	}
}

func TestRunBatch_DefaultLimitAndHooks(t *testing.T) {
	var expansions atomic.Int64
	results, err := ucs.RunBatch(context.Background(), routes(t),
		[]ucs.Query{{Start: "A", Goal: "C"}, {Start: "E", Goal: "J"}},
		0,
		ucs.WithOnExpand(func(*ucs.Node) { expansions.Add(1) }),
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(10), results[0].Cost())
	assert.Equal(t, int64(30), results[1].Cost())
	// A→C expands 3 nodes, E→J expands 5.
	assert.Equal(t, int64(8), expansions.Load())
}

func TestRunBatch_Empty(t *testing.T) {
	results, err := ucs.RunBatch(context.Background(), routes(t), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ucs.RunBatch(ctx, routes(t), []ucs.Query{{Start: "A", Goal: "B"}}, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
