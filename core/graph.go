// File: graph.go
// Role: Vertex and edge lifecycle plus read-only queries over the adjacency map.
// Determinism:
//   - Neighbors() preserves insertion order (the file order of the edge list).
//   - Vertices() returns labels sorted lexicographically.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
//   - Returned slices and maps are copies; callers may keep them.
// Nil receiver:
//   - Every query treats a nil *Graph as empty; mutations are not nil-safe.

package core

import "sort"

// AddVertex ensures label exists as a key, creating an empty sequence when
// it is seen for the first time. Adding an existing vertex is a no-op.
//
// Complexity: O(1).
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(label)

	return nil
}

// AddEdge appends {to, cost} under from and, unless the graph is directed,
// {from, cost} under to. Both endpoints are created if missing.
//
// Steps:
//  1. Validate labels and cost.
//  2. Lock, ensure both keys exist.
//  3. Append the forward entry; mirror it for undirected graphs.
//
// Self-loops are stored once even when undirected.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost int64) error {
	if from == "" || to == "" {
		return ErrEmptyLabel
	}
	if cost < 0 {
		return ErrNegativeCost
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Cost: cost})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{To: from, Cost: cost})
	}
	g.edgeCount++

	return nil
}

// ensureVertex must be called with mu held for writing.
func (g *Graph) ensureVertex(label string) {
	if _, ok := g.adjacency[label]; !ok {
		g.adjacency[label] = []Edge{}
	}
}

// HasVertex reports whether label is a key of the adjacency map.
// Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[label]

	return ok
}

// Neighbors returns a copy of the edge entries stored under label, in
// insertion order. An unknown label has no neighbors and yields nil; this
// is not an error because a search treats it as a dead end.
//
// Complexity: O(d), d = number of entries under label.
func (g *Graph) Neighbors(label string) []Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.adjacency[label]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// NeighborLabels returns the unique neighbor labels of label, sorted
// lexicographically.
func (g *Graph) NeighborLabels(label string) []string {
	edges := g.Neighbors(label)
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}
	sort.Strings(out)

	return out
}

// Vertices returns all labels sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adjacency))
	for label := range g.adjacency {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of labels.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls that succeeded; an
// undirected edge counts once even though it is stored twice.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Adjacency returns a deep copy of the label → entries mapping.
// Complexity: O(V+E).
func (g *Graph) Adjacency() map[string][]Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]Edge, len(g.adjacency))
	for label, edges := range g.adjacency {
		cp := make([]Edge, len(edges))
		copy(cp, edges)
		out[label] = cp
	}

	return out
}

// Symmetric reports whether every entry A→B with cost C is matched by an
// entry B→A with the same cost, counting multiplicity. Undirected graphs
// built only through AddEdge always satisfy it.
//
// Complexity: O(V+E).
func (g *Graph) Symmetric() bool {
	type arc struct {
		from, to string
		cost     int64
	}

	if g == nil {
		return true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	balance := make(map[arc]int)
	for from, edges := range g.adjacency {
		for _, e := range edges {
			if from == e.To {
				continue // a loop is its own mirror
			}
			balance[arc{from, e.To, e.Cost}]++
			balance[arc{e.To, from, e.Cost}]--
		}
	}
	for _, n := range balance {
		if n != 0 {
			return false
		}
	}

	return true
}

// Edges returns every edge once: all entries of a directed graph, and for
// an undirected graph only the entry whose From sorts first (loops once).
// Arcs come in sorted From order, then adjacency order.
//
// Feeding the arcs back to AddEdge restores the same multiset of edges, but
// not vertices without edges, and not the per-label entry order, which
// decides search tie-breaks.
//
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Arc {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	labels := make([]string, 0, len(g.adjacency))
	for label := range g.adjacency {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]Arc, 0, g.edgeCount)
	for _, from := range labels {
		for _, e := range g.adjacency[from] {
			if !g.directed && e.To < from {
				continue
			}
			out = append(out, Arc{From: from, To: e.To, Cost: e.Cost})
		}
	}

	return out
}
