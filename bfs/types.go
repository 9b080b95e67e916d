package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound is returned when the start station is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an Option was given an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a station the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a walk. An invalid value is remembered and reported as
// ErrOptionViolation when BFS starts.
type Option func(*BFSOptions)

// BFSOptions tunes a walk.
type BFSOptions struct {
	// Ctx is checked before each dequeue.
	Ctx context.Context

	// OnVisit runs as each station is dequeued, with its hop count.
	// A non-nil error stops the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth caps the hop count when > 0; 0 means no cap.
	MaxDepth int

	// FilterNeighbor returns false to ignore the edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a background context, no cap, no filter and a
// no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext cancels the walk with ctx. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. Nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk after d hops; d == 0 disables the cap and
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. Nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is what a walk learned: visit order, hop counts and the first
// station each one was reached from. The start has no Parent entry.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the stations from
// the start to dest. An unreached dest yields an error wrapping ErrNoPath.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}

	var path []string
	cur, ok := dest, true
	for ok {
		path = append(path, cur)
		cur, ok = r.Parent[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
