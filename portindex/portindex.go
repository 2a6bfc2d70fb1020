package portindex

import (
	"math"
	"sort"

	"github.com/rectree/rectree/gcell"
)

// minX/maxX are the smallest/largest representable X, used as probe
// coordinates so a PrevCell/NextCell query at a given Y ignores X entirely
// and lands purely on the row boundary (GCell's total order is row-major:
// see gcell.GCell.Less).
const (
	minX = math.MinInt16
	maxX = math.MaxInt16
)

// PrevCell returns the greatest element strictly less than c, or
// gcell.Null() if none. Binary search over the sealed slice: O(log p).
func (idx *Index) PrevCell(c gcell.GCell) (gcell.GCell, error) {
	if !idx.sealed {
		return gcell.GCell{}, ErrNotSealed
	}

	// b is the index of the first element >= c (standard lower bound).
	b := sort.Search(len(idx.cells), func(i int) bool { return !idx.cells[i].Less(c) })
	if b == 0 {
		return gcell.Null(), nil
	}

	return idx.cells[b-1], nil
}

// NextCell returns the least element strictly greater than c, or
// gcell.Null() if none. Binary search over the sealed slice: O(log p).
func (idx *Index) NextCell(c gcell.GCell) (gcell.GCell, error) {
	if !idx.sealed {
		return gcell.GCell{}, ErrNotSealed
	}

	// b is the index of the first element > c (standard upper bound).
	b := sort.Search(len(idx.cells), func(i int) bool { return c.Less(idx.cells[i]) })
	if b == len(idx.cells) {
		return gcell.Null(), nil
	}

	return idx.cells[b], nil
}

// PrevY returns the largest y' < y for which some indexed cell has
// y-coordinate y', or -1 if none. Implemented as a single PrevCell probe at
// the row's leftmost possible column, per Feline's GCellSet::prev_y.
func (idx *Index) PrevY(y int16) (int16, error) {
	c, err := idx.PrevCell(gcell.GCell{X: minX, Y: y})
	if err != nil {
		return 0, err
	}
	if c.IsNull() {
		return -1, nil
	}

	return c.Y, nil
}

// NextY returns the smallest y' > y for which some indexed cell has
// y-coordinate y', or -1 if none. Implemented as a single NextCell probe at
// the row's rightmost possible column, per Feline's GCellSet::next_y.
func (idx *Index) NextY(y int16) (int16, error) {
	c, err := idx.NextCell(gcell.GCell{X: maxX, Y: y})
	if err != nil {
		return 0, err
	}
	if c.IsNull() {
		return -1, nil
	}

	return c.Y, nil
}
