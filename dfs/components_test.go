package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucsroute/core"
	"github.com/katalvlaran/ucsroute/dfs"
)

func TestComponents_TwoNetworks(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "C", 5)
	_ = g.AddEdge("C", "D", 7)
	_ = g.AddEdge("A", "D", 15)
	_ = g.AddEdge("E", "F", 5)
	_ = g.AddEdge("F", "G", 5)
	_ = g.AddEdge("G", "J", 20)

	got, err := dfs.Components(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "D"},
		{"E", "F", "G", "J"},
	}, got)
}

func TestComponents_DirectedEdgesJoinBothEnds(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	_ = g.AddEdge("C", "B", 1)
	_ = g.AddEdge("A", "B", 1)
	require.NoError(t, g.AddVertex("Z"))

	got, err := dfs.Components(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"Z"}}, got)
}

func TestComponents_Empty(t *testing.T) {
	got, err := dfs.Components(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComponents_Errors(t *testing.T) {
	_, err := dfs.Components(context.Background(), nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_, err = dfs.Components(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}
