// Package ucs implements uniform-cost search: the cheapest path between two
// stations of a weighted graph with non-negative costs.
//
// Overview:
//
//   - The frontier holds discovered nodes; the cheapest is expanded next.
//   - A label may sit in the frontier several times with different costs.
//     Only its first (cheapest) extraction is expanded; later ones fail the
//     validity check and are discarded. This gives Dijkstra's "finalize
//     once" guarantee without a decrease-key operation.
//   - When a node is expanded, the neighbor it was reached from is not
//     pushed again (parent-suppression). Longer cycles still reach the
//     frontier and are filtered by the validity check.
//   - The search stops as soon as the goal label is expanded, then rebuilds
//     the path by following Parent links.
//
// Tie-breaking:
//
//   - Among equal costs, the node discovered first is expanded first.
//     Discovery order follows adjacency order, i.e. edge-list file order.
//     This is part of the contract and covered by tests.
//
// Absence:
//
//   - An unreachable goal is not an error. Run returns (nil, false) and
//     Search returns a Result with Found == false.
//
// Performance and complexity:
//
//   - Time:  O(E log E), a binary heap keyed by (cost, discovery order).
//   - Space: O(E) frontier entries in the worst case, O(V) expanded nodes.
//
// API reference:
//
//	func Run(g Graph, start, goal string) ([]*Node, bool)
//	func Search(g Graph, start, goal string, opts ...Option) *Result
//	func RunBatch(ctx context.Context, g Graph, qs []Query, limit int, opts ...Option) ([]*Result, error)
//	func FindPath(n *Node) []*Node
//	func SameLabel(a, b *Node) bool
//
// Thread safety:
//
//   - Every call owns its own frontier and expanded set. Any number of
//     searches may read the same *core.Graph concurrently, provided nobody
//     mutates it meanwhile.
package ucs
