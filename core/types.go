// Package core defines the adjacency structure used by the route finder:
// a mapping from station label to the ordered sequence of edge entries
// leaving that station.
//
// This file declares Edge, Graph, GraphOption, the sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyLabel    - vertex label is the empty string.
//	ErrNegativeCost  - edge cost below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrNegativeCost indicates an edge was added with a cost below zero.
	ErrNegativeCost = errors.New("core: negative edge cost")
)

// Edge is one adjacency entry: the neighbor reached and the cost of the hop.
//
// The owning vertex is implicit (it is the key the entry is stored under).
type Edge struct {
	// To is the neighbor label.
	To string

	// Cost is the non-negative price of traversing this edge.
	Cost int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected stores every added edge in the from→to direction only.
// The default is undirected: each AddEdge is mirrored.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is the in-memory adjacency structure.
//
// adjacency[label] holds edge entries in insertion order; that order is
// observable because it decides which of two equal-cost candidates a search
// expands first. mu guards adjacency and edgeCount so that a graph built on
// one goroutine may be read by many concurrent searches.
type Graph struct {
	mu sync.RWMutex

	directed bool

	adjacency map[string][]Edge
	edgeCount int // logical edges (one per AddEdge call)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are stored one-directionally.
func (g *Graph) Directed() bool { return g != nil && g.directed }

// Arc is one stored edge with both endpoints, as returned by Graph.Edges.
type Arc struct {
	From string
	To   string
	Cost int64
}
