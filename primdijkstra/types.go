package primdijkstra

import "github.com/rectree/rectree/gcell"

// entry is one pending candidate commit: node would be attached under
// uphill at path distance pathDist from the source, at composite cost
// cost. Ties in cost are broken by node's lexicographic GCell order so
// that two runs over the same input always commit in the same order.
type entry struct {
	node     gcell.GCell
	uphill   gcell.GCell
	pathDist int
	cost     float64
}

// entryHeap is a container/heap min-heap of *entry ordered by cost, mirroring
// the nodePQ priority queue this lineage's Dijkstra implementation uses, but
// keyed on the composite Prim-Dijkstra cost rather than a plain path weight.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].node.Less(h[j].node)
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) {
	*h = append(*h, x.(*entry))
}
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
