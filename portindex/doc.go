// Package portindex provides PortIndex, a seal-then-query sorted sequence
// of gcell.GCell values supporting predecessor/successor lookups both by
// exact coordinate and by grid row (Y).
//
// PortIndex is append-only while building: Push as many cells as needed,
// then call Seal exactly once before any query. Querying before Seal, or
// Pushing after Seal without re-sealing, returns ErrNotSealed — following
// this lineage's error-taxonomy convention of returning a sentinel rather
// than asserting, since an unsealed-index query is a caller bug the caller
// should be able to recover from, not a reason to crash the process.
//
// All four queries are O(log p) binary searches over the sealed slice,
// where p is the number of cells; PrevY/NextY are each implemented as one
// PrevCell/NextCell probe at the grid's X extremes, per the Prim-Dijkstra
// Revisited neighbour-query construction.
package portindex
