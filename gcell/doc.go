// Package gcell defines the integer grid-coordinate primitives shared by
// every later stage of rectilinear Steiner-tree construction: GCell (a
// single grid point) and BoundingBox (an inclusive axis-aligned rectangle).
//
// GCell values are compared row-major: primarily by Y, then by X. This
// ordering is load-bearing for portindex and neighbour, which rely on it
// to binary search a sorted set of cells and to locate a row's nearest
// occupant with a single probe.
package gcell
