package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ucsroute/ucs"
)

// ErrQueryFieldCount indicates a query record without exactly two fields.
var ErrQueryFieldCount = errors.New("loader: query must have 2 fields")

// LoadQueries opens path and parses it with ParseQueries.
func LoadQueries(path string) ([]ucs.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLoad, ErrOpen, err)
	}
	defer f.Close()

	qs, err := ParseQueries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return qs, nil
}

// ParseQueries reads `start,goal` pairs, one per line, skipping blank and
// '#' comment lines. Errors wrap ErrLoad.
func ParseQueries(r io.Reader) ([]ucs.Query, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []ucs.Query
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

		if len(rec) != 2 {
			return nil, fmt.Errorf("%w: line %d: %w: got %d", ErrLoad, line, ErrQueryFieldCount, len(rec))
		}
		start, goal := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if start == "" || goal == "" {
			return nil, fmt.Errorf("%w: line %d: %w", ErrLoad, line, ErrEmptyLabel)
		}
		out = append(out, ucs.Query{Start: start, Goal: goal})
	}

	return out, nil
}
