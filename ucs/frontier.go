package ucs

import (
	"container/heap"
	"sort"
)

// frontier holds discovered-but-not-expanded nodes. Duplicate labels are
// allowed; stale ones are filtered when popped.
//
// Extraction order is ascending cost, and among equal costs the earliest
// pushed entry first. That is exactly the order a stable sort of an
// append-only list would produce, at O(log n) per operation instead of a
// full resort per pop.
type frontier struct {
	items entryPQ
	seq   uint64
}

type entry struct {
	node *Node
	seq  uint64 // insertion order, the tie-breaker
}

func (f *frontier) Len() int { return f.items.Len() }

func (f *frontier) push(n *Node) {
	heap.Push(&f.items, entry{node: n, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() *Node {
	return heap.Pop(&f.items).(entry).node
}

// snapshot returns the pending nodes in the order they would be popped.
func (f *frontier) snapshot() []*Node {
	cp := make(entryPQ, len(f.items))
	copy(cp, f.items)
	sort.Sort(cp)
	out := make([]*Node, len(cp))
	for i, e := range cp {
		out[i] = e.node
	}

	return out
}

// entryPQ is a min-heap of entries ordered by (cost, seq).
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by cost, then by insertion sequence.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].node.Cost != pq[j].node.Cost {
		return pq[i].node.Cost < pq[j].node.Cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already swapped
// the minimum there.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = entry{}
	*pq = old[:n-1]

	return item
}
