package stree

import "github.com/rectree/rectree/gcell"

// AddEdge wires child's parent to parent, creating child's node first if it
// is not yet present (e.g. a freshly inserted Steiner bend). It returns
// ErrDoubleParent if child already has a non-null Uphill: every genuinely
// new edge targets a node that has none yet — reparenting an existing edge
// must go through RemoveEdge first.
func (t *STree) AddEdge(child, parent gcell.GCell) error {
	n, ok := t.Nodes[child]
	if !ok {
		n = &Node{Uphill: gcell.Null()}
		t.Nodes[child] = n
	}
	if !n.Uphill.IsNull() {
		return ErrDoubleParent
	}
	n.Uphill = parent

	return nil
}

// RemoveEdge clears child's Uphill back to null, after checking it
// currently equals expectedParent. It returns ErrParentMismatch if child is
// unknown or its recorded parent disagrees, which always indicates a bug
// in the caller's own bookkeeping rather than a reachable state from
// well-formed input.
func (t *STree) RemoveEdge(child, expectedParent gcell.GCell) error {
	n, ok := t.Nodes[child]
	if !ok || n.Uphill != expectedParent {
		return ErrParentMismatch
	}
	n.Uphill = gcell.Null()

	return nil
}

// ValidateRectilinear reports ErrNonRectilinearEdge if any node's edge to
// its parent is diagonal (differs in both X and Y). Called after
// Steinerisation, which must have rewritten every such edge into an
// axis-aligned pair.
func (t *STree) ValidateRectilinear() error {
	for cell, n := range t.Nodes {
		if n.Uphill.IsNull() {
			continue
		}
		if cell.X != n.Uphill.X && cell.Y != n.Uphill.Y {
			return ErrNonRectilinearEdge
		}
	}

	return nil
}
