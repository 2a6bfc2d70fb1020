package stree

import (
	"container/heap"

	"github.com/rectree/rectree/gcell"
)

// cellHeap is a min-heap of GCells ordered by gcell.GCell.Less, giving
// Kahn's algorithm below a deterministic tie-break among same-indegree
// frontier nodes (spec: "ties may be broken arbitrarily but
// deterministically").
type cellHeap []gcell.GCell

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(gcell.GCell)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// validateParents checks that every non-root node's Uphill names another
// node actually present in the tree, returning ErrDanglingParent if not.
// Kahn's algorithm below would otherwise misreport a dangling parent as a
// cycle (the orphaned child's indegree never reaches zero), which is a
// less useful diagnostic for what is really a distinct failure mode.
func (t *STree) validateParents() error {
	for _, n := range t.Nodes {
		if n.Uphill.IsNull() {
			continue
		}
		if _, ok := t.Nodes[n.Uphill]; !ok {
			return ErrDanglingParent
		}
	}

	return nil
}

// TopoSorted returns Nodes in topological order of the Uphill → child
// relation (root first), via Kahn's algorithm. Returns ErrCycle if the
// parent relation is not acyclic, which always indicates a bug in an
// earlier build phase.
func (t *STree) TopoSorted() ([]gcell.GCell, error) {
	if err := t.validateParents(); err != nil {
		return nil, err
	}
	children := t.Children()

	indeg := make(map[gcell.GCell]int, len(t.Nodes))
	for cell := range t.Nodes {
		indeg[cell] = 0
	}
	for _, kids := range children {
		for child := range kids {
			indeg[child]++
		}
	}

	frontier := &cellHeap{}
	for cell, d := range indeg {
		if d == 0 {
			heap.Push(frontier, cell)
		}
	}

	order := make([]gcell.GCell, 0, len(t.Nodes))
	for frontier.Len() > 0 {
		cell := heap.Pop(frontier).(gcell.GCell)
		order = append(order, cell)
		for child := range children[cell] {
			indeg[child]--
			if indeg[child] == 0 {
				heap.Push(frontier, child)
			}
		}
	}

	if len(order) != len(t.Nodes) {
		return nil, ErrCycle
	}

	return order, nil
}

// Altitudes returns, for every node, the longest downward path length to
// any descendant leaf (leaves have altitude 0), plus the overall maximum
// altitude. Computed via one reverse-topological pass: a node's altitude is
// known once all its descendants have been visited, so walking the
// root-first topological order backwards visits leaves first.
func (t *STree) Altitudes() (map[gcell.GCell]int, int, error) {
	sorted, err := t.TopoSorted()
	if err != nil {
		return nil, 0, err
	}

	altitudes := make(map[gcell.GCell]int, len(sorted))
	maxAlt := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		cell := sorted[i]
		if _, ok := altitudes[cell]; !ok {
			altitudes[cell] = 0
		}
		uphill := t.Nodes[cell].Uphill
		if uphill.IsNull() {
			continue
		}
		candidate := altitudes[cell] + 1
		if cur, ok := altitudes[uphill]; !ok || cur < candidate {
			altitudes[uphill] = candidate
		}
	}
	for _, a := range altitudes {
		if a > maxAlt {
			maxAlt = a
		}
	}

	return altitudes, maxAlt, nil
}
