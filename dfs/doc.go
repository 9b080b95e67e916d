// Package dfs implements depth-first traversal over a core.Graph and uses it
// to split a rail network into its connected networks.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and forest
//     traversal over every vertex.
//   - Components: groups stations that are joined by any chain of edges,
//     ignoring direction. A query whose endpoints fall in different groups
//     has no route.
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E + V·d) where d is the deepest DFS tree, Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start label not in graph (single-source DFS)
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
