package hvw

import (
	"sort"

	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/stree"
)

// Build Steinerises tree in place: every node with altitude >= 1 gets its
// diagonal incident edges rewritten into L-shapes chosen to maximise
// sibling overlap, followed by a same-node overlap cleanup pass, and
// finally a check that every surviving edge is axis-aligned. Returns an
// error if tree's parent relation is already malformed (propagated from
// the altitude computation), if a commit site's own edge-mutation
// invariant is violated, or if a diagonal edge somehow survives — all of
// which always indicate a bug in a build phase, never a reachable state
// from well-formed input.
func Build(tree *stree.STree, maxFlexibleEdges int) (Stats, error) {
	var stats Stats
	if tree.Source.IsNull() {
		return stats, nil
	}

	altitudes, _, err := tree.Altitudes()
	if err != nil {
		return stats, err
	}

	order := make([]gcell.GCell, 0, len(altitudes))
	for cell, alt := range altitudes {
		if alt >= 1 {
			order = append(order, cell)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if altitudes[order[i]] != altitudes[order[j]] {
			return altitudes[order[i]] < altitudes[order[j]]
		}

		return order[i].Less(order[j])
	})

	createdBends := make(map[gcell.GCell]bool)
	for _, v := range order {
		steinerised, err := processNode(tree, v, &stats, createdBends, maxFlexibleEdges)
		if err != nil {
			return stats, err
		}
		if steinerised {
			stats.NodesSteinerised++
		}
		if err := cleanupOverlap(tree, v); err != nil {
			return stats, err
		}
	}

	// A bend can end up serving more than one of v's flexible children at
	// once (they happened to compute the same L-shape corner); that bend
	// now carries the same kind of redundant nested overlap among its own
	// children that cleanupOverlap above resolves for v. Bends are never
	// part of the altitude-ordered traversal (both of a bend's own edges
	// are rectilinear by construction, so it never itself has flexible
	// edges to Steinerise) — but it still needs this same cleanup pass.
	bends := make([]gcell.GCell, 0, len(createdBends))
	for b := range createdBends {
		bends = append(bends, b)
	}
	sort.Slice(bends, func(i, j int) bool { return bends[i].Less(bends[j]) })
	for _, b := range bends {
		if err := cleanupOverlap(tree, b); err != nil {
			return stats, err
		}
	}

	if err := tree.ValidateRectilinear(); err != nil {
		return stats, err
	}

	return stats, nil
}

// processNode partitions v's incident edges into fixed and flexible,
// chooses a bend orientation for every flexible edge, and commits the
// resulting bends via AddEdge/RemoveEdge. It reports whether any edge was
// rewritten. Every newly created bend cell is recorded into created for a
// later cleanup pass.
func processNode(tree *stree.STree, v gcell.GCell, stats *Stats, created map[gcell.GCell]bool, maxFlexibleEdges int) (bool, error) {
	node := tree.Nodes[v]
	origUphill := node.Uphill

	var fixed []gcell.GCell
	var flexible []flexEdge

	classify := func(other gcell.GCell, backward bool) {
		if other.X == v.X || other.Y == v.Y {
			fixed = append(fixed, other)
		} else {
			flexible = append(flexible, flexEdge{other: other, backward: backward})
		}
	}

	if !origUphill.IsNull() {
		classify(origUphill, true)
	}
	children := tree.Children()[v]
	childList := make([]gcell.GCell, 0, len(children))
	for c := range children {
		childList = append(childList, c)
	}
	sort.Slice(childList, func(i, j int) bool { return childList[i].Less(childList[j]) })
	for _, c := range childList {
		classify(c, false)
	}

	if len(flexible) == 0 {
		return false, nil
	}
	sort.Slice(flexible, func(i, j int) bool { return flexible[i].other.Less(flexible[j].other) })

	var mask int
	if len(flexible) <= maxFlexibleEdges {
		mask = chooseMaskExhaustive(v, fixed, flexible)
	} else {
		mask = chooseMaskGreedy(v, fixed, flexible)
		stats.HeuristicFallbacks++
	}

	for i, fe := range flexible {
		bend := bendFor(v, fe.other, mask&(1<<uint(i)) != 0)
		if fe.backward {
			if _, ok := tree.Nodes[bend]; !ok {
				if err := tree.AddEdge(bend, origUphill); err != nil {
					return false, err
				}
			}
			if !origUphill.IsNull() {
				if err := tree.RemoveEdge(v, origUphill); err != nil {
					return false, err
				}
			}
			if err := tree.AddEdge(v, bend); err != nil {
				return false, err
			}
		} else {
			if _, ok := tree.Nodes[bend]; !ok {
				if err := tree.AddEdge(bend, v); err != nil {
					return false, err
				}
			}
			if err := tree.RemoveEdge(fe.other, v); err != nil {
				return false, err
			}
			if err := tree.AddEdge(fe.other, bend); err != nil {
				return false, err
			}
		}
		created[bend] = true
	}

	return true, nil
}

// cleanupOverlap collapses any remaining nested same-direction edges
// incident at v: within each direction, the nearest edge becomes the
// anchor and every farther same-direction edge reparents onto the
// anchor's endpoint via RemoveEdge/AddEdge, eliminating the redundant
// shared portion of wire. A node has at most one backward (parent) edge by
// construction (Node.Uphill is a single field), so at most one element of
// any group is ever backward; the reversal branch below runs at most once
// per group.
func cleanupOverlap(tree *stree.STree, v gcell.GCell) error {
	node := tree.Nodes[v]
	type inc struct {
		other    gcell.GCell
		backward bool
	}
	var incident []inc
	if !node.Uphill.IsNull() {
		incident = append(incident, inc{other: node.Uphill, backward: true})
	}
	for c := range tree.Children()[v] {
		incident = append(incident, inc{other: c, backward: false})
	}

	groups := make(map[segKey][]inc)
	for _, e := range incident {
		key, _ := decompose(v, e.other)
		groups[key] = append(groups[key], e)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return v.MDist(group[i].other) < v.MDist(group[j].other)
		})
		anchor := group[0]
		for _, far := range group[1:] {
			if far.backward {
				// far is v's parent edge, anchor is the nearer child:
				// reverse the local topology so v routes through anchor.
				if err := tree.RemoveEdge(anchor.other, v); err != nil {
					return err
				}
				if err := tree.RemoveEdge(v, far.other); err != nil {
					return err
				}
				if err := tree.AddEdge(anchor.other, far.other); err != nil {
					return err
				}
				if err := tree.AddEdge(v, anchor.other); err != nil {
					return err
				}
			} else {
				if err := tree.RemoveEdge(far.other, v); err != nil {
					return err
				}
				if err := tree.AddEdge(far.other, anchor.other); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
