package hvw

import "github.com/rectree/rectree/gcell"

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// decompose splits the segment from anchor to other (assumed axis-aligned:
// exactly one coordinate differs) into its segKey and length.
func decompose(anchor, other gcell.GCell) (segKey, int) {
	if other.X != anchor.X {
		sign := 1
		if other.X < anchor.X {
			sign = -1
		}

		return segKey{anchor: anchor, axis: 0, sign: sign}, abs(int(other.X) - int(anchor.X))
	}
	sign := 1
	if other.Y < anchor.Y {
		sign = -1
	}

	return segKey{anchor: anchor, axis: 1, sign: sign}, abs(int(other.Y) - int(anchor.Y))
}

// addSegment registers the segment anchor->other in reg, extending any
// existing colinear segment with the same anchor and direction, and
// returns the overlap length gained (0 if this is a new direction).
func addSegment(reg map[segKey]int, anchor, other gcell.GCell) int {
	key, length := decompose(anchor, other)
	cur, ok := reg[key]
	if !ok {
		reg[key] = length

		return 0
	}
	overlap := length
	if cur < overlap {
		overlap = cur
	}
	if length > cur {
		reg[key] = length
	}

	return overlap
}

// bendFor computes the L-shape bend point for flexible edge (v, other)
// under bit: set means the bend sits on v's column (v.X, other.Y); clear
// means it sits on v's row (other.X, v.Y).
func bendFor(v, other gcell.GCell, bitSet bool) gcell.GCell {
	if bitSet {
		return gcell.New(int(v.X), int(other.Y))
	}

	return gcell.New(int(other.X), int(v.Y))
}

// overlapForMask computes the total colinear overlap produced by seeding
// fixed's segments first, then adding each flexible edge's two segments
// (v->bend, bend->other) under mask's bit choices.
func overlapForMask(v gcell.GCell, fixed []gcell.GCell, flexible []flexEdge, mask int) int {
	reg := make(map[segKey]int)
	total := 0
	for _, other := range fixed {
		total += addSegment(reg, v, other)
	}
	for i, fe := range flexible {
		bend := bendFor(v, fe.other, mask&(1<<uint(i)) != 0)
		total += addSegment(reg, v, bend)
		total += addSegment(reg, bend, fe.other)
	}

	return total
}

// chooseMaskExhaustive brute-forces every choice bitmask and returns the one
// with maximum overlap, lowest bitmask breaking ties.
func chooseMaskExhaustive(v gcell.GCell, fixed []gcell.GCell, flexible []flexEdge) int {
	best, bestOverlap := 0, -1
	for mask := 0; mask < (1 << uint(len(flexible))); mask++ {
		overlap := overlapForMask(v, fixed, flexible, mask)
		if overlap > bestOverlap {
			bestOverlap, best = overlap, mask
		}
	}

	return best
}

// chooseMaskGreedy resolves high-fanout nodes (k > maxFlexibleEdges)
// without the 2^k scan: it commits each flexible edge's bit independently,
// in order, maximising that single edge's overlap contribution against the
// segments already seeded (fixed edges plus every earlier edge's chosen
// bend), preferring bit 0 on a tie.
func chooseMaskGreedy(v gcell.GCell, fixed []gcell.GCell, flexible []flexEdge) int {
	reg := make(map[segKey]int)
	for _, other := range fixed {
		addSegment(reg, v, other)
	}

	mask := 0
	for i, fe := range flexible {
		bend0 := bendFor(v, fe.other, false)
		bend1 := bendFor(v, fe.other, true)

		trial := func(bend gcell.GCell) int {
			clone := make(map[segKey]int, len(reg))
			for k, v := range reg {
				clone[k] = v
			}

			return addSegment(clone, v, bend) + addSegment(clone, bend, fe.other)
		}

		score0, score1 := trial(bend0), trial(bend1)
		chosenBend := bend0
		if score1 > score0 {
			mask |= 1 << uint(i)
			chosenBend = bend1
		}
		addSegment(reg, v, chosenBend)
		addSegment(reg, chosenBend, fe.other)
	}

	return mask
}
