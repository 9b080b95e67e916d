package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucsroute/internal/config"
	"github.com/katalvlaran/ucsroute/loader"
)

const routesFile = "testdata/routes.csv"

// execute runs the root command with args and stdin and returns stdout,
// stderr and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoute_Flags(t *testing.T) {
	out, _, err := execute(t, "", "route", "--file", routesFile, "--from", "A", "--to", "C")
	require.NoError(t, err)
	assert.Equal(t,
		"Path: A -> B -> C\nCost: 10\nYour trip from A to C includes 1 stop and will take 10 minutes\n",
		out)
}

func TestRoute_Prompts(t *testing.T) {
	out, _, err := execute(t, "A\nD\n", "route", routesFile)
	require.NoError(t, err)
	assert.Equal(t,
		questionFrom+" "+questionTo+" "+
			"Path: A -> D\nCost: 15\nYour trip from A to D includes 0 stops and will take 15 minutes\n",
		out)
}

func TestRoute_PromptWithoutTrailingNewline(t *testing.T) {
	out, _, err := execute(t, "E\nJ", "route", routesFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Path: E -> F -> G -> J\nCost: 30\n")
}

func TestRoute_PromptEmptyInput(t *testing.T) {
	_, _, err := execute(t, "", "route", routesFile)
	require.Error(t, err)
	assert.ErrorIs(t, err, errEmptyAnswer)

	_, _, err = execute(t, "A\n\n", "route", routesFile)
	assert.ErrorIs(t, err, errEmptyAnswer)
}

func TestRoute_NoRoute(t *testing.T) {
	out, _, err := execute(t, "", "route", routesFile, "--from", "A", "--to", "J")
	require.NoError(t, err)
	assert.Equal(t, "No route from A to J\n", out)
}

func TestRoute_ShowExpanded(t *testing.T) {
	out, _, err := execute(t, "", "route", routesFile, "--from", "E", "--to", "J", "--show-expanded")
	require.NoError(t, err)
	assert.Equal(t,
		"Expanded: E.0 F.5 G.10 H.20 J.30\n"+
			"Path: E -> F -> G -> J\nCost: 30\n"+
			"Your trip from E to J includes 2 stops and will take 30 minutes\n",
		out)
}

func TestRoute_Trace(t *testing.T) {
	out, errOut, err := execute(t, "", "route", routesFile, "--from", "A", "--to", "C", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost: 10")
	assert.Contains(t, errOut, "msg=iteration")
	assert.Contains(t, errOut, "msg=expand node=A.0")
	assert.Contains(t, errOut, "msg=expand node=C.10")
	assert.Contains(t, errOut, "msg=\"search finished\"")
}

func TestRoute_Directed(t *testing.T) {
	out, _, err := execute(t, "", "route", routesFile, "--directed", "--from", "C", "--to", "A")
	require.NoError(t, err)
	assert.Equal(t, "No route from C to A\n", out)
}

func TestRoute_LoadFailure(t *testing.T) {
	_, _, err := execute(t, "", "route", "testdata/missing.csv", "--from", "A", "--to", "B")
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrLoad)
	assert.ErrorIs(t, err, loader.ErrOpen)
}

func TestRoute_NoFile(t *testing.T) {
	_, _, err := execute(t, "", "route", "--from", "A", "--to", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no edge list")
}

func TestRoute_ConfigFile(t *testing.T) {
	abs, err := filepath.Abs(routesFile)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ucsroute.yaml")
	yaml := "graph:\n  file: " + abs + "\noutput:\n  separator: \" > \"\n  unit: min\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	out, _, err := execute(t, "", "--config", path, "route", "--from", "D", "--to", "B")
	require.NoError(t, err)
	assert.Equal(t,
		"Path: D > C > B\nCost: 12\nYour trip from D to B includes 1 stop and will take 12 min\n",
		out)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud", "route", routesFile, "--from", "A", "--to", "B")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestStops(t *testing.T) {
	out, _, err := execute(t, "", "stops", routesFile, "--from", "A", "--to", "C")
	require.NoError(t, err)
	assert.Equal(t, "Path: A -> B -> C\nStops: 1\n", out)

	out, _, err = execute(t, "", "stops", routesFile, "--from", "E", "--to", "J")
	require.NoError(t, err)
	assert.Equal(t, "Path: E -> F -> G -> J\nStops: 2\n", out)
}

func TestStops_NoRoute(t *testing.T) {
	out, _, err := execute(t, "", "stops", routesFile, "--from", "A", "--to", "J")
	require.NoError(t, err)
	assert.Equal(t, "No route from A to J\n", out)

	out, _, err = execute(t, "", "stops", routesFile, "--from", "Z", "--to", "A")
	require.NoError(t, err)
	assert.Equal(t, "No route from Z to A\n", out)
}

func TestBatch(t *testing.T) {
	out, _, err := execute(t, "", "batch", routesFile, "--queries", "testdata/queries.csv", "--concurrency", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"A to C: A -> B -> C (10)\n"+
			"E to J: E -> F -> G -> J (30)\n"+
			"A to J: no route\n"+
			"D to D: D (0)\n",
		out)
}

func TestBatch_RequiresQueries(t *testing.T) {
	_, _, err := execute(t, "", "batch", routesFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--queries")
}

func TestNetworks(t *testing.T) {
	out, _, err := execute(t, "", "networks", routesFile)
	require.NoError(t, err)
	assert.Equal(t, "1: A B C D\n2: E F G H I J\n", out)
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--kind", "line", "--n", "3")
	require.NoError(t, err)
	assert.Equal(t, "A,B,1\nB,C,1\n", out)

	out, _, err = execute(t, "", "generate", "--kind", "cycle", "--n", "3", "--min-cost", "4", "--max-cost", "4")
	require.NoError(t, err)
	assert.Equal(t, "A,B,4\nA,C,4\nB,C,4\n", out)
}

func TestGenerate_RoundTripsThroughRoute(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--kind", "grid", "--rows", "2", "--cols", "2")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	out, _, err = execute(t, "", "route", path, "--from", "r0c0", "--to", "r1c1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost: 2\n")
}

func TestGenerate_FullCostRange(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--kind", "line", "--n", "3",
		"--min-cost", "0", "--max-cost", "9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestGenerate_BadKind(t *testing.T) {
	_, _, err := execute(t, "", "generate", "--kind", "spiral")
	assert.ErrorContains(t, err, "unknown --kind")
}
