package stree

import (
	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/portindex"
)

// Node is the per-cell record held by an STree: the uphill (parent)
// pointer, the number of original pins mapped to this cell, and a
// not-yet-wired timing-criticality slot carried through from the routed
// system this spec distills (see SPEC_FULL.md "criticality field"): no phase
// in this module reads or writes it beyond SetCriticality.
type Node struct {
	Uphill      gcell.GCell
	PortCount   int
	Criticality float64
}

// IsSteiner reports whether this node is a pure bend with no original pin
// mapped to it (PortCount == 0).
func (n *Node) IsSteiner() bool { return n.PortCount == 0 }

// STree is the rooted tree under construction. Source is gcell.Null() (and
// Nodes is empty) only for a net with no usable driver; otherwise Source is
// always a key of Nodes with a null Uphill.
type STree struct {
	Source gcell.GCell
	Nodes  map[gcell.GCell]*Node
	Ports  *portindex.Index
	Box    gcell.BoundingBox
}

// New returns an empty STree (no source, no nodes) ready for InitTree or
// direct pin insertion by a test.
func New() *STree {
	return &STree{
		Source: gcell.Null(),
		Nodes:  make(map[gcell.GCell]*Node),
		Ports:  portindex.New(),
	}
}

// addPin records one physical pin at cell: it maps to an existing node if
// one is already there (two pins coinciding at one GCell is expected and
// PortCount accumulates), or creates a fresh one.
func (t *STree) addPin(cell gcell.GCell) {
	n, ok := t.Nodes[cell]
	if !ok {
		n = &Node{Uphill: gcell.Null()}
		t.Nodes[cell] = n
	}
	n.PortCount++
	t.Box.Extend(cell)
	t.Ports.Push(cell)
}

// SetCriticality sets the timing-criticality value of the node at cell, if
// present. No build phase in this module consults it.
func (t *STree) SetCriticality(cell gcell.GCell, criticality float64) {
	if n, ok := t.Nodes[cell]; ok {
		n.Criticality = criticality
	}
}

// Children inverts the Uphill parent relation into a child-set map. It is
// recomputed on demand by every phase that needs it rather than kept as a
// mirrored structure alongside Nodes.
func (t *STree) Children() map[gcell.GCell]map[gcell.GCell]struct{} {
	children := make(map[gcell.GCell]map[gcell.GCell]struct{}, len(t.Nodes))
	for cell, n := range t.Nodes {
		if n.Uphill.IsNull() {
			continue
		}
		set, ok := children[n.Uphill]
		if !ok {
			set = make(map[gcell.GCell]struct{})
			children[n.Uphill] = set
		}
		set[cell] = struct{}{}
	}

	return children
}
