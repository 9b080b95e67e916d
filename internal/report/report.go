// Package report renders search results for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ucsroute/ucs"
)

// Format controls rendering. The zero value is usable: Separator falls back
// to " -> " and Unit to "minutes".
type Format struct {
	Separator    string
	Unit         string
	ShowExpanded bool
}

func (f Format) sep() string {
	if f.Separator == "" {
		return " -> "
	}

	return f.Separator
}

func (f Format) unit() string {
	if f.Unit == "" {
		return "minutes"
	}

	return f.Unit
}

// Route writes the summary of one search:
//
//	Expanded: A.0 B.5 C.10        (only with ShowExpanded)
//	Path: A -> B -> C
//	Cost: 10
//	Your trip from A to C includes 1 stop and will take 10 minutes
//
// or, when nothing was found, "No route from A to J".
func Route(w io.Writer, res *ucs.Result, f Format) error {
	if f.ShowExpanded {
		if _, err := fmt.Fprintf(w, "Expanded: %s\n", joinNodes(res.Expanded)); err != nil {
			return err
		}
	}
	if !res.Found {
		_, err := fmt.Fprintf(w, "No route from %s to %s\n", res.Start, res.Goal)
		return err
	}

	_, err := fmt.Fprintf(w, "Path: %s\nCost: %d\nYour trip from %s to %s includes %s and will take %d %s\n",
		strings.Join(res.Labels(), f.sep()),
		res.Cost(),
		res.Start, res.Goal,
		plural(res.Stops(), "stop"),
		res.Cost(), f.unit(),
	)

	return err
}

// Stops writes a fewest-hop route produced by package bfs.
func Stops(w io.Writer, path []string, f Format) error {
	stops := len(path) - 2
	if stops < 0 {
		stops = 0
	}
	_, err := fmt.Fprintf(w, "Path: %s\nStops: %d\n", strings.Join(path, f.sep()), stops)

	return err
}

// Line renders one search on a single line, for batch output:
//
//	A to C: A -> B -> C (10)
//	A to J: no route
func Line(res *ucs.Result, f Format) string {
	if !res.Found {
		return fmt.Sprintf("%s to %s: no route", res.Start, res.Goal)
	}

	return fmt.Sprintf("%s to %s: %s (%d)", res.Start, res.Goal, strings.Join(res.Labels(), f.sep()), res.Cost())
}

func joinNodes(nodes []*ucs.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}

	return strings.Join(parts, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
