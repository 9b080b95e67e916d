package ucs

// ExpandedSet is the ordered list of finalized nodes with a label index.
// The zero value is ready to use.
type ExpandedSet struct {
	order  []*Node
	labels map[string]struct{}
}

// Add appends n. It does not check for duplicates; call ValidToExpand first.
func (s *ExpandedSet) Add(n *Node) {
	if s.labels == nil {
		s.labels = make(map[string]struct{})
	}
	s.order = append(s.order, n)
	s.labels[n.Label] = struct{}{}
}

// Contains reports whether a node with this label has been expanded.
func (s *ExpandedSet) Contains(label string) bool {
	_, ok := s.labels[label]

	return ok
}

// ValidToExpand reports whether n may still be expanded, i.e. no node with
// the same label is already in the set. A nil node is never valid.
func (s *ExpandedSet) ValidToExpand(n *Node) bool {
	if n == nil {
		return false
	}

	return !s.Contains(n.Label)
}

// Last returns the most recently added node, or nil for an empty set.
func (s *ExpandedSet) Last() *Node {
	if len(s.order) == 0 {
		return nil
	}

	return s.order[len(s.order)-1]
}

// Nodes returns the expanded nodes in expansion order.
func (s *ExpandedSet) Nodes() []*Node {
	out := make([]*Node, len(s.order))
	copy(out, s.order)

	return out
}

// Len returns the number of expanded nodes.
func (s *ExpandedSet) Len() int { return len(s.order) }
