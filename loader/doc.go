// Package loader turns a flat `from,to,cost` edge list into a core.Graph.
//
// Format:
//
//	A,B,5
//	B,C,5
//	# comment lines are skipped
//	C,D,7
//
// One line is one undirected edge; the cost is a non-negative integer.
// There is no header row. Entries under a label keep file order, which a
// uniform-cost search relies on to break ties between equal costs.
//
// Errors (sentinel, all wrapping ErrLoad):
//
//   - ErrOpen:       resource missing or unreadable.
//   - ErrSyntax:     the CSV tokenizer rejected the line.
//   - ErrFieldCount: a record does not have exactly three fields.
//   - ErrBadCost:    a cost is not a non-negative integer.
//   - ErrEmptyLabel: a from or to field is blank.
//
// Loading is all-or-nothing: a failed load never returns a graph.
package loader
