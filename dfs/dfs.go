package dfs

import (
	"fmt"

	"github.com/katalvlaran/ucsroute/core"
)

// Graph is the subset of *core.Graph that DFS reads.
type Graph interface {
	HasVertex(label string) bool
	Vertices() []string
	Neighbors(label string) []core.Edge
}

// walker encapsulates state during DFS.
type walker struct {
	graph Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID, or over the whole
// graph when WithFullTraversal is given (startID is then ignored).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing in single-source mode.
//   - the context error         if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped; Order is then nil.
//
// Complexity: O(V + E) time, O(V) memory for the recursion stack and maps.
func DFS(g Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:   make([]string, 0, len(vertices)),
			Depth:   make(map[string]int, len(vertices)),
			Parent:  make(map[string]string, len(vertices)),
			Visited: make(map[string]bool, len(vertices)),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(startID, 0)
	}
	for _, v := range vertices {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at depth, then recurses into unvisited neighbors in
// adjacency order.
func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	for _, e := range w.graph.Neighbors(id) {
		if e.To == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[e.To] {
			continue
		}
		w.res.Parent[e.To] = id
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
