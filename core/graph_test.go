package core_test

import (
	"testing"

	"github.com/katalvlaran/ucsroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestAddVertex_EmptyLabel(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyLabel)
	assert.Equal(t, 0, g.VertexCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyLabel)
	require.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyLabel)
	require.ErrorIs(t, g.AddEdge("A", "B", -1), core.ErrNegativeCost)

	// Rejected edges leave no trace.
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 2. Adjacency shape
// ------------------------------------------------------------------------

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddVertex("A"))

	assert.Equal(t, []core.Edge{{To: "B", Cost: 5}}, g.Neighbors("A"))
	assert.True(t, g.HasVertex("A"))
}

func TestAddEdge_UndirectedMirrorsInFileOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("C", "D", 7))
	require.NoError(t, g.AddEdge("A", "D", 15))

	assert.Equal(t, []core.Edge{{To: "B", Cost: 5}, {To: "D", Cost: 15}}, g.Neighbors("A"))
	assert.Equal(t, []core.Edge{{To: "C", Cost: 7}, {To: "A", Cost: 15}}, g.Neighbors("D"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, g.VertexCount())
	assert.True(t, g.Symmetric())
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 5))

	assert.True(t, g.Directed())
	assert.Equal(t, []core.Edge{{To: "B", Cost: 5}}, g.Neighbors("A"))
	assert.Empty(t, g.Neighbors("B"))
	assert.True(t, g.HasVertex("B"), "target must still exist as a key")
	assert.False(t, g.Symmetric())
}

func TestAddEdge_SelfLoopStoredOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 3))
	assert.Equal(t, []core.Edge{{To: "A", Cost: 3}}, g.Neighbors("A"))
	assert.True(t, g.Symmetric())
}

func TestNeighbors_UnknownLabel(t *testing.T) {
	g := core.NewGraph()
	assert.Nil(t, g.Neighbors("nope"))
	assert.False(t, g.HasVertex("nope"))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	nb := g.Neighbors("A")
	nb[0].Cost = 999

	assert.Equal(t, int64(5), g.Neighbors("A")[0].Cost)
}

func TestNeighborLabels_UniqueSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	assert.Equal(t, []string{"B", "C"}, g.NeighborLabels("A"))
}

func TestAdjacency_DeepCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	adj := g.Adjacency()
	adj["A"][0].To = "Z"
	delete(adj, "B")

	assert.Equal(t, "B", g.Neighbors("A")[0].To)
	assert.True(t, g.HasVertex("B"))
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddVertex("B"))
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestSymmetric_DetectsCostMismatch(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "A", 6))
	assert.False(t, g.Symmetric())

	require.NoError(t, g.AddEdge("B", "A", 5))
	require.NoError(t, g.AddEdge("A", "B", 6))
	assert.True(t, g.Symmetric())
}

func TestEdges_UndirectedOncePerLine(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B", "C", 5))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("C", "C", 1))

	assert.Equal(t, []core.Arc{
		{From: "A", To: "B", Cost: 5},
		{From: "B", To: "C", Cost: 5},
		{From: "C", To: "C", Cost: 1},
	}, g.Edges())
}

func TestEdges_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("B", "A", 2))
	require.NoError(t, g.AddEdge("A", "B", 3))

	assert.Equal(t, []core.Arc{
		{From: "A", To: "B", Cost: 3},
		{From: "B", To: "A", Cost: 2},
	}, g.Edges())
}

func TestNilGraph_QueriesActEmpty(t *testing.T) {
	var g *core.Graph

	assert.False(t, g.HasVertex("A"))
	assert.Nil(t, g.Neighbors("A"))
	assert.Empty(t, g.NeighborLabels("A"))
	assert.Nil(t, g.Vertices())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Nil(t, g.Adjacency())
	assert.True(t, g.Symmetric())
	assert.Nil(t, g.Edges())
	assert.False(t, g.Directed())
}
