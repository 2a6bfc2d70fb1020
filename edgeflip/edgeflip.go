package edgeflip

import (
	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/stree"
)

// Build runs PD-II's best-improvement greedy local search to a fixed point
// and reports how many flips it committed. Each outer iteration rebuilds
// children and descendant counts from scratch (cheap relative to the
// O(fanout^2) candidate scan), scans every (v, new_src, new_dst) triple, and
// commits only the single lowest-delta move if that delta is negative.
func Build(tree *stree.STree, alpha float64) (int, error) {
	if alpha < 0 || alpha > 1 {
		return 0, ErrAlphaOutOfRange
	}
	if tree.Source.IsNull() {
		return 0, nil
	}

	committed := 0
	for {
		children := tree.Children()
		leafCount := descendantCounts(tree.Source, children)

		found := false
		var bestDelta float64
		var best triple

		for v, node := range tree.Nodes {
			if v == tree.Source {
				continue
			}
			p := node.Uphill
			for newSrc := range children[p] {
				if newSrc == v {
					continue
				}
				for newDst := range children[v] {
					delta := flipDelta(alpha, p, v, newSrc, newDst, leafCount[v], leafCount[newDst])
					cand := triple{v: v, src: newSrc, dst: newDst}
					if !found || delta < bestDelta || (delta == bestDelta && cand.less(best)) {
						found, bestDelta, best = true, delta, cand
					}
				}
			}
		}

		if !found || bestDelta >= 0 {
			return committed, nil
		}

		// Remove (p,v) and (v,new_dst); install (new_src,new_dst) and the
		// flipped (new_dst,v), via the shared edge-mutation invariant
		// checks rather than overwriting Uphill directly.
		p := tree.Nodes[best.v].Uphill
		if err := tree.RemoveEdge(best.v, p); err != nil {
			return committed, err
		}
		if err := tree.RemoveEdge(best.dst, best.v); err != nil {
			return committed, err
		}
		if err := tree.AddEdge(best.dst, best.src); err != nil {
			return committed, err
		}
		if err := tree.AddEdge(best.v, best.dst); err != nil {
			return committed, err
		}
		committed++
	}
}

// triple identifies one candidate move by its three cells, for a
// deterministic tie-break among equal-delta candidates: lexicographic
// GCell order keeps repeated runs over the same input reproducible,
// matching this package's other phases.
type triple struct{ v, src, dst gcell.GCell }

func (t triple) less(o triple) bool {
	if t.v != o.v {
		return t.v.Less(o.v)
	}
	if t.src != o.src {
		return t.src.Less(o.src)
	}

	return t.dst.Less(o.dst)
}

// flipDelta computes the weighted cost change of flipping v off p and onto
// new_dst, per the detour-cost model: orig and next are (K+1)*edge sums
// over the two edges affected, and delta blends the path-weighted and
// wirelength-weighted views of that change by alpha.
func flipDelta(alpha float64, p, v, newSrc, newDst gcell.GCell, leafV, leafDst int) float64 {
	pv := float64(p.MDist(v))
	vDst := float64(v.MDist(newDst))
	srcDst := float64(newSrc.MDist(newDst))

	orig := pv*float64(1+leafV) + vDst*float64(1+leafDst)
	next := (srcDst+vDst)*float64((1+leafV)-(1+leafDst)) + srcDst*float64(1+leafDst)

	return alpha*(next-orig) + (1-alpha)*(srcDst-pv)
}

// descendantCounts returns, for every node reachable from source via
// children, the number of its strict descendants (0 for a leaf).
func descendantCounts(source gcell.GCell, children map[gcell.GCell]map[gcell.GCell]struct{}) map[gcell.GCell]int {
	counts := make(map[gcell.GCell]int)
	var walk func(gcell.GCell) int
	walk = func(c gcell.GCell) int {
		total := 0
		for child := range children[c] {
			total += 1 + walk(child)
		}
		counts[c] = total

		return total
	}
	walk(source)

	return counts
}
