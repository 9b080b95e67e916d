// Package ucsroute finds the cheapest train route between two stations of
// a rail network described by a plain edge list.
//
// 🚆 What is ucsroute?
//
//	A small, thread-safe toolkit and CLI that brings together:
//		• Core primitives: an adjacency map that keeps edges in file order
//		• Loading: from,to,cost CSV edge lists and start,goal query files
//		• Uniform-cost search: cheapest path with a full expansion trace
//		• Breadth-first search: route with the fewest stops
//		• Depth-first search: split a map into its separate networks
//		• Builders: synthetic lines, circle lines, grids and random networks
//
// ✨ Why ucsroute?
//
//   - Deterministic – ties resolve by discovery order, so traces are stable
//   - Explainable – every expansion and discarded entry can be observed
//   - Concurrent – one loaded graph serves many searches at once
//
// Packages:
//
//	core/     — Graph, Edge and the thread-safe adjacency map
//	loader/   — CSV edge-list and query parsing, edge-list writing
//	ucs/      — uniform-cost search, path reconstruction, batch runs
//	bfs/      — fewest-hop routes
//	dfs/      — depth-first traversal and connected networks
//	builder/  — deterministic network generators
//	cmd/ucsroute — the command-line front end
//
// Quick start:
//
//	go install github.com/katalvlaran/ucsroute/cmd/ucsroute@latest
//	ucsroute route routes.csv
//	What station are you getting on the train?: A
//	What station are you getting off the train?: C
//	Path: A -> B -> C
//	Cost: 10
//	Your trip from A to C includes 1 stop and will take 10 minutes
package ucsroute
