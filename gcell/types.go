package gcell

import "math"

// GCell is a point on the integer placement grid. The zero value is not a
// valid "no cell" sentinel — use Null() for that, since (0, 0) is a
// perfectly ordinary grid cell.
type GCell struct {
	X, Y int16
}

// nullX/nullY place Null() strictly before every representable cell under
// Less, so prev/next-cell binary search never mistakes Null for a real
// boundary element.
const (
	nullX = math.MinInt16
	nullY = math.MinInt16
)

// Null returns the sentinel "no cell" value.
func Null() GCell { return GCell{X: nullX, Y: nullY} }

// IsNull reports whether c is the sentinel "no cell" value.
func (c GCell) IsNull() bool { return c.X == nullX && c.Y == nullY }

// New constructs a GCell from plain ints, narrowing to int16.
func New(x, y int) GCell { return GCell{X: int16(x), Y: int16(y)} }

// MDist returns the Manhattan distance between c and other.
func (c GCell) MDist(other GCell) int {
	dx := int(c.X) - int(other.X)
	if dx < 0 {
		dx = -dx
	}
	dy := int(c.Y) - int(other.Y)
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Less reports whether c sorts strictly before other in the total order
// every PortIndex query assumes: primarily by Y (grid row), then by X.
// Row-major ordering is what lets PrevY/NextY locate the nearest non-empty
// row via a single PrevCell/NextCell probe at (±inf, y) — a column-major
// order would scatter a single row's cells across the sorted sequence.
func (c GCell) Less(other GCell) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}

	return c.X < other.X
}

// LessEq reports whether c sorts at or before other in lexicographic order.
func (c GCell) LessEq(other GCell) bool {
	return c == other || c.Less(other)
}

// BoundingBox is an inclusive axis-aligned rectangle over GCell coordinates.
// The zero value is empty and must not be queried before at least one
// Extend call; Empty reports that state explicitly so callers never read a
// meaningless rectangle by accident.
type BoundingBox struct {
	X0, Y0, X1, Y1 int16
	initialized    bool
}

// Extend grows bb, if necessary, so that it contains c. The first Extend
// call on a zero-value BoundingBox collapses it to the single point c.
func (bb *BoundingBox) Extend(c GCell) {
	if !bb.initialized {
		bb.X0, bb.Y0, bb.X1, bb.Y1 = c.X, c.Y, c.X, c.Y
		bb.initialized = true

		return
	}
	if c.X < bb.X0 {
		bb.X0 = c.X
	}
	if c.X > bb.X1 {
		bb.X1 = c.X
	}
	if c.Y < bb.Y0 {
		bb.Y0 = c.Y
	}
	if c.Y > bb.Y1 {
		bb.Y1 = c.Y
	}
}

// Empty reports whether bb has never been extended.
func (bb BoundingBox) Empty() bool { return !bb.initialized }
