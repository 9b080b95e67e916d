package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ucsroute/core"
)

// Load opens path and parses it with Parse.
//
// A missing or unreadable file yields an error wrapping ErrLoad and ErrOpen
// (and the underlying *fs.PathError).
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLoad, ErrOpen, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads `from,to,cost` records from r and builds the adjacency
// structure. Each record adds both labels as keys and appends {to,cost}
// under from and, unless WithDirected is set, {from,cost} under to, in
// record order. Surrounding whitespace in fields is ignored; blank and
// comment lines are skipped.
//
// No partial graph is ever returned: on the first bad record Parse stops
// and returns nil with an error wrapping ErrLoad plus one of ErrSyntax,
// ErrFieldCount, ErrBadCost or ErrEmptyLabel.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var gopts []core.GraphOption
	if o.Directed {
		gopts = append(gopts, core.WithDirected())
	}
	g := core.NewGraph(gopts...)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked per record below
	cr.TrimLeadingSpace = true
	cr.Comment = o.Comment
	cr.ReuseRecord = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: %w: line %d: %v", ErrLoad, ErrSyntax, pe.Line, pe.Err)
			}
			return nil, fmt.Errorf("%w: %w: %w", ErrLoad, ErrOpen, err)
		}
		line, _ := cr.FieldPos(0)

		from, to, cost, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrLoad, line, err)
		}
		if err = g.AddEdge(from, to, cost); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrLoad, line, err)
		}
	}

	o.Logger.Debug("graph loaded",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Bool("directed", g.Directed()),
	)

	return g, nil
}

// parseRecord validates one CSV record.
func parseRecord(rec []string) (from, to string, cost int64, err error) {
	if len(rec) != 3 {
		return "", "", 0, fmt.Errorf("%w: got %d", ErrFieldCount, len(rec))
	}
	from = strings.TrimSpace(rec[0])
	to = strings.TrimSpace(rec[1])
	if from == "" || to == "" {
		return "", "", 0, fmt.Errorf("%w: %q,%q", ErrEmptyLabel, rec[0], rec[1])
	}
	raw := strings.TrimSpace(rec[2])
	cost, err = strconv.ParseInt(raw, 10, 64)
	if err != nil || cost < 0 {
		return "", "", 0, fmt.Errorf("%w: %q", ErrBadCost, raw)
	}

	return from, to, cost, nil
}
