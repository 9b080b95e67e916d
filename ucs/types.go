// Package ucs defines the node record, the search options and the result
// type for uniform-cost search over a core.Graph.
package ucs

import (
	"fmt"

	"github.com/katalvlaran/ucsroute/core"
)

// Graph is the read-only view a search needs: the ordered edge entries
// leaving a label. *core.Graph satisfies it. An unknown label must yield no
// entries rather than an error.
type Graph interface {
	Neighbors(label string) []core.Edge
}

// Node is one discovery of a station: the label, the accumulated cost of the
// path it was reached by, and the node it was reached from (nil for the
// start). Nodes are never mutated once created; reaching a label again by
// another path creates a new Node.
type Node struct {
	Label  string
	Cost   int64
	Parent *Node
}

// String renders the node as "label.cost", e.g. "B.5".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s.%d", n.Label, n.Cost)
}

// SameLabel reports whether a and b name the same station, ignoring cost and
// parent. It is the only identity used for membership tests; two nil nodes
// or a nil and a non-nil node never match.
func SameLabel(a, b *Node) bool {
	if a == nil || b == nil {
		return false
	}

	return a.Label == b.Label
}

// Options configures a Search.
//
// Every hook is optional and observes the run without changing it:
//
//	OnIteration – called at the start of each loop iteration with the
//	              1-based iteration count and the frontier in extraction order.
//	OnExpand    – called when a node is appended to the expanded set.
//	OnDiscard   – called when a popped node fails the validity check.
//	OnEnqueue   – called when a discovered neighbor enters the frontier.
//
// Hooks passed to RunBatch are invoked from several goroutines at once.
type Options struct {
	OnIteration func(iteration int, frontier []*Node)
	OnExpand    func(n *Node)
	OnDiscard   func(n *Node)
	OnEnqueue   func(n *Node)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks, except OnIteration which
// stays nil so the frontier snapshot is only built when someone asks.
func DefaultOptions() Options {
	return Options{
		OnExpand:  func(*Node) {},
		OnDiscard: func(*Node) {},
		OnEnqueue: func(*Node) {},
	}
}

// WithOnIteration registers a per-iteration frontier observer.
func WithOnIteration(fn func(iteration int, frontier []*Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithOnExpand registers a callback for every expanded node.
func WithOnExpand(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscard registers a callback for stale frontier entries.
func WithOnDiscard(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithOnEnqueue registers a callback for every node pushed to the frontier.
func WithOnEnqueue(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result is the outcome of one Search.
//
// Found is false when the goal was never expanded (the absence signal); Path
// is nil in that case. Expanded always lists every finalized node in
// expansion order, which is useful for explaining how a route was chosen.
type Result struct {
	Start    string
	Goal     string
	Found    bool
	Path     []*Node
	Expanded []*Node
}

// Cost returns the accumulated cost of the path, or 0 when nothing was found.
func (r *Result) Cost() int64 {
	if r == nil || !r.Found || len(r.Path) == 0 {
		return 0
	}

	return r.Path[len(r.Path)-1].Cost
}

// Stops returns the number of intermediate stations on the path, excluding
// the start and the goal.
func (r *Result) Stops() int {
	if r == nil || len(r.Path) < 2 {
		return 0
	}

	return len(r.Path) - 2
}

// Labels returns the station labels along the path.
func (r *Result) Labels() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.Path))
	for i, n := range r.Path {
		out[i] = n.Label
	}

	return out
}

// Query names one start/goal pair for RunBatch.
type Query struct {
	Start string
	Goal  string
}
