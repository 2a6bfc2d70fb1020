package primdijkstra

import (
	"container/heap"

	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/neighbour"
	"github.com/rectree/rectree/stree"
)

// Build assigns an Uphill parent to every node of tree other than its
// source, via best-first expansion over the maximum-bounding-box neighbour
// graph. Each candidate edge (cell -> n) is scored
//
//	cost = alpha*pathDist(cell) + mdist(cell, n)
//
// and candidates are committed lowest-cost-first, so alpha=0 always commits
// the globally cheapest remaining edge (Prim's MST) and alpha=1 always
// commits a shortest path from the source (Dijkstra). tree must already be
// sealed (InitTree does this); Build is a no-op on an empty tree.
func Build(tree *stree.STree, alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return ErrAlphaOutOfRange
	}
	if tree.Source.IsNull() {
		return nil
	}

	oracle := neighbour.New(tree.Ports, tree.Box)
	bestCost := map[gcell.GCell]float64{tree.Source: 0}
	pq := &entryHeap{}
	heap.Init(pq)

	expand := func(pathDist int, cell gcell.GCell) error {
		return oracle.Each(cell, func(n gcell.GCell) {
			edge := cell.MDist(n)
			nextPathDist := pathDist + edge
			cost := alpha*float64(pathDist) + float64(edge)

			if bc, ok := bestCost[n]; ok && bc <= cost {
				return
			}
			bestCost[n] = cost
			heap.Push(pq, &entry{node: n, uphill: cell, pathDist: nextPathDist, cost: cost})
		})
	}

	if err := expand(0, tree.Source); err != nil {
		return err
	}

	for pq.Len() > 0 {
		next := heap.Pop(pq).(*entry)
		node := tree.Nodes[next.node]
		if !node.Uphill.IsNull() {
			continue
		}
		node.Uphill = next.uphill
		if err := expand(next.pathDist, next.node); err != nil {
			return err
		}
	}

	return nil
}
