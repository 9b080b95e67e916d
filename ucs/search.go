package ucs

import "math"

// Run searches g for the cheapest path from start to goal.
//
// It returns the nodes from start to goal, each carrying its accumulated
// cost, and true; or nil and false when goal cannot be reached. Run never
// fails: unknown labels are dead ends, and start == goal yields the single
// node {start, 0}. Accumulated costs saturate at math.MaxInt64.
func Run(g Graph, start, goal string) ([]*Node, bool) {
	res := Search(g, start, goal)

	return res.Path, res.Found
}

// Search is Run with hooks and the full Result, including the expanded set.
//
// The loop:
//  1. Seed the frontier with {start, 0, nil}.
//  2. Pop the cheapest node (ties: earliest discovered).
//  3. Discard it if its label was already expanded.
//  4. Otherwise expand it; stop if the goal label is now expanded.
//  5. Push {neighbor, cost+edge, parent} for every adjacency entry, except
//     the one leading straight back to the node's own parent.
//
// Complexity:
//
//   - Time:  O(E log E); each adjacency entry is pushed at most once per
//     expansion of its owner, and every label is expanded at most once.
//   - Space: O(E) for the frontier, O(V) for the expanded set.
func Search(g Graph, start, goal string, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		g:    g,
		opts: o,
		goal: goal,
	}
	r.frontier.push(&Node{Label: start})
	r.loop()

	res := &Result{
		Start:    start,
		Goal:     goal,
		Expanded: r.expanded.Nodes(),
	}
	if last := r.expanded.Last(); last != nil && last.Label == goal {
		res.Found = true
		res.Path = FindPath(last)
	}

	return res
}

// runner holds the mutable state of a single search. Nothing in it outlives
// the call, so concurrent searches over one graph share only the graph.
type runner struct {
	g        Graph
	opts     Options
	goal     string
	frontier frontier
	expanded ExpandedSet
}

func (r *runner) loop() {
	for i := 1; r.frontier.Len() > 0; i++ {
		if r.opts.OnIteration != nil {
			r.opts.OnIteration(i, r.frontier.snapshot())
		}

		n := r.frontier.pop()

		// Stale rediscovery of a finalized label.
		if !r.expanded.ValidToExpand(n) {
			r.opts.OnDiscard(n)
			continue
		}

		r.expanded.Add(n)
		r.opts.OnExpand(n)
		if r.expanded.Contains(r.goal) {
			return
		}

		r.expandChildren(n)
	}
}

// expandChildren pushes one new node per adjacency entry of n, in adjacency
// order, skipping the immediate way back to n's parent.
func (r *runner) expandChildren(n *Node) {
	if r.g == nil {
		return
	}
	for _, e := range r.g.Neighbors(n.Label) {
		child := &Node{Label: e.To, Cost: addCost(n.Cost, e.Cost), Parent: n}
		if n.Parent != nil && SameLabel(n.Parent, child) {
			continue
		}
		r.frontier.push(child)
		r.opts.OnEnqueue(child)
	}
}

// addCost sums two non-negative costs, saturating at math.MaxInt64 so that
// an accumulated cost never wraps negative.
func addCost(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + b
}

// FindPath walks parent references from n back to the root and returns the
// chain root-first. A nil node yields nil.
func FindPath(n *Node) []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
