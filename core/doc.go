// Package core provides the thread-safe adjacency structure that every
// search in this module reads from.
//
// A Graph maps a station label to an ordered sequence of edge entries
// {To, Cost}. Order is insertion order, which for graphs built by the
// loader is the order of lines in the edge-list file.
//
//   - Undirected by default: AddEdge("A", "B", 5) stores A→B and B→A.
//   - WithDirected() stores only A→B.
//   - Costs are non-negative integers (ErrNegativeCost otherwise).
//   - A single sync.RWMutex guards the map; build once, then share the
//     graph read-only between any number of concurrent searches.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddVertex(label string) error                  // O(1)
//	AddEdge(from, to string, cost int64) error     // O(1) amortized
//
//	// Query
//	HasVertex(label string) bool                   // O(1)
//	Neighbors(label string) []Edge                 // O(d), insertion order
//	NeighborLabels(label string) []string          // O(d log d), unique, sorted
//	Vertices() []string                            // O(V log V), sorted
//	VertexCount() int                              // O(1)
//	EdgeCount() int                                // O(1)
//	Adjacency() map[string][]Edge                  // O(V+E), deep copy
//	Symmetric() bool                               // O(V+E)
//	Edges() []Arc                                  // O(V log V + E), each edge once
//
// Quick ASCII example:
//
//	A──5──B
//	│     │
//	15    5
//	│     │
//	D──7──C
//
// Errors:
//
//	ErrEmptyLabel   – zero-length label
//	ErrNegativeCost – edge cost below zero
package core
