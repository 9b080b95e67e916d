package report_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/ucsroute/core"
	"github.com/katalvlaran/ucsroute/internal/report"
	"github.com/katalvlaran/ucsroute/ucs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 5))
	require.NoError(t, g.AddEdge("C", "D", 7))
	require.NoError(t, g.AddEdge("A", "D", 15))
	require.NoError(t, g.AddVertex("Z"))
	return g
}

func TestRoute_Found(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Route(&buf, ucs.Search(square(t), "A", "C"), report.Format{}))

	assert.Equal(t, "Path: A -> B -> C\n"+
		"Cost: 10\n"+
		"Your trip from A to C includes 1 stop and will take 10 minutes\n", buf.String())
}

func TestRoute_FoundWithExpandedAndCustomFormat(t *testing.T) {
	var buf bytes.Buffer
	f := report.Format{Separator: " > ", Unit: "km", ShowExpanded: true}
	require.NoError(t, report.Route(&buf, ucs.Search(square(t), "A", "D"), f))

	assert.Equal(t, "Expanded: A.0 B.5 C.10 D.15\n"+
		"Path: A > D\n"+
		"Cost: 15\n"+
		"Your trip from A to D includes 0 stops and will take 15 km\n", buf.String())
}

func TestRoute_NotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Route(&buf, ucs.Search(square(t), "A", "Z"), report.Format{}))
	assert.Equal(t, "No route from A to Z\n", buf.String())
}

func TestStops(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Stops(&buf, []string{"A", "B", "C", "D"}, report.Format{}))
	assert.Equal(t, "Path: A -> B -> C -> D\nStops: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, report.Stops(&buf, []string{"A"}, report.Format{}))
	assert.Equal(t, "Path: A\nStops: 0\n", buf.String())
}

func TestLine(t *testing.T) {
	g := square(t)
	assert.Equal(t, "A to C: A -> B -> C (10)", report.Line(ucs.Search(g, "A", "C"), report.Format{}))
	assert.Equal(t, "A to Z: no route", report.Line(ucs.Search(g, "A", "Z"), report.Format{}))
}
