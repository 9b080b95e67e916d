package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/ucsroute/core"
)

// ErrUnwritableLabel indicates a label that Parse would not read back as
// written: it starts with the comment rune or has surrounding whitespace.
var ErrUnwritableLabel = errors.New("loader: label cannot be written")

// Write emits g as a from,to,cost edge list, one line per arc of
// core.Graph.Edges. Only WithComment is consulted from opts; it must match
// the comment rune the output will be parsed with.
//
// Parsing the output with the same directedness restores the same multiset
// of edges. It does not restore stations without edges, nor the order of
// entries under a station, which decides search tie-breaks.
//
// A label that would not survive the round trip fails the whole call with
// ErrUnwritableLabel before anything is written.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return errors.New("loader: write nil graph")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	arcs := g.Edges()
	for _, a := range arcs {
		if err := checkLabel(a.From, o.Comment); err != nil {
			return err
		}
		if err := checkLabel(a.To, o.Comment); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	for _, a := range arcs {
		if err := cw.Write([]string{a.From, a.To, strconv.FormatInt(a.Cost, 10)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func checkLabel(label string, comment rune) error {
	if comment != 0 {
		if r, _ := utf8.DecodeRuneInString(label); r == comment {
			return fmt.Errorf("%w: %q starts with comment %q", ErrUnwritableLabel, label, comment)
		}
	}
	if strings.TrimSpace(label) != label {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrUnwritableLabel, label)
	}

	return nil
}
