// Package bfs finds fewest-stop routes by breadth-first search over a
// core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (hops) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook may abort the traversal with an error.
//   - Neighbors can be pruned with WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	Edge costs are ignored on purpose. Comparing bfs.Route with ucs.Run on
//	the same graph shows when the cheapest route is not the shortest one.
//
// Determinism
//
//	Neighbors are enqueued in adjacency (edge-list file) order, so the
//	visit sequence and the chosen parent are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo/Route when dest was not reached.
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
