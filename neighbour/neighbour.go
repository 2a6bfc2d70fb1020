package neighbour

import (
	"math"

	"github.com/rectree/rectree/gcell"
)

// Each calls fn once for every maximum-bounding-box neighbour of cell, in
// no particular guaranteed order. It is the allocation-free form of
// Neighbours, for hot call sites such as PrimDijkstra's expansion step.
func (o *Oracle) Each(cell gcell.GCell, fn func(gcell.GCell)) error {
	prev, err := o.ports.PrevCell(cell)
	if err != nil {
		return err
	}
	next, err := o.ports.NextCell(cell)
	if err != nil {
		return err
	}

	// Same-row neighbours.
	if prev.Y == cell.Y {
		fn(prev)
	}
	if next.Y == cell.Y {
		fn(next)
	}

	if err := o.sweep(cell, prev, next, false, fn); err != nil {
		return err
	}
	if err := o.sweep(cell, prev, next, true, fn); err != nil {
		return err
	}

	return nil
}

// sweep walks one vertical direction (decreasing Y when up is false,
// increasing Y when up is true), narrowing a left and a right closed
// x-interval as candidates are emitted, exactly mirroring Feline's
// iterate_neighbours: the two directions share identical interval logic
// and differ only in which way the rows are stepped.
func (o *Oracle) sweep(cell, rowPrev, rowNext gcell.GCell, up bool, fn func(gcell.GCell)) error {
	// nextRow probes past every cell of row y; a Null result, rather than
	// PrevY/NextY's -1 (itself a valid row), marks the end of the grid.
	nextRow := func(y int16) (gcell.GCell, error) {
		if up {
			return o.ports.NextCell(gcell.GCell{X: math.MaxInt16, Y: y})
		}
		return o.ports.PrevCell(gcell.GCell{X: math.MinInt16, Y: y})
	}

	x0 := o.box.X0
	if rowPrev.Y == cell.Y {
		x0 = rowPrev.X + 1
	}
	x1 := o.box.X1
	if rowNext.Y == cell.Y {
		x1 = rowNext.X - 1
	}

	row, err := nextRow(cell.Y)
	if err != nil {
		return err
	}
	for !row.IsNull() && (x0 <= cell.X || x1 > cell.X) {
		y := row.Y
		if x0 <= cell.X {
			l, err := o.ports.PrevCell(gcell.GCell{X: cell.X + 1, Y: y})
			if err != nil {
				return err
			}
			if l.Y == y && l.X >= x0 {
				fn(l)
				x0 = l.X + 1
				if l.X == cell.X {
					// A cell straight above/below lies in every later box.
					x1 = cell.X
				}
			}
		}
		if x1 > cell.X {
			r, err := o.ports.NextCell(gcell.GCell{X: cell.X, Y: y})
			if err != nil {
				return err
			}
			if r.Y == y && r.X <= x1 {
				fn(r)
				x1 = r.X - 1
			}
		}
		row, err = nextRow(y)
		if err != nil {
			return err
		}
	}

	return nil
}

// Neighbours returns the maximum-bounding-box neighbour set of cell as a
// slice, for call sites that prefer a value over a callback (tests,
// diagnostics).
func (o *Oracle) Neighbours(cell gcell.GCell) ([]gcell.GCell, error) {
	var out []gcell.GCell
	err := o.Each(cell, func(n gcell.GCell) { out = append(out, n) })

	return out, err
}
