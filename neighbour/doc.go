// Package neighbour implements the "maximum bounding box" neighbour query
// from Prim-Dijkstra Revisited: for a query cell q, the neighbour set is
// every other indexed cell n such that the axis-aligned bounding box of
// {q, n} contains no third indexed cell.
//
// The query is answered without ever scanning all p cells: same-row
// neighbours come from a single PrevCell/NextCell probe, and the
// above/below sweep narrows a left and a right open x-interval one grid
// row at a time, stopping as soon as both intervals close or the grid runs
// out of non-empty rows. Total cost is O((k+1) log p) for a query
// returning k neighbours.
package neighbour
