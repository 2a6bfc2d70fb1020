// Package primdijkstra builds the initial, edge-free-no-more rooted tree
// over an STree's pin set: a best-first expansion from the source that
// trades total wire length against path-from-source length via a single
// weight, alpha.
//
// The algorithm is Prim-Dijkstra Revisited's hybrid: with alpha=0 it
// degenerates to Prim's MST over the neighbour graph (always take the
// globally cheapest edge); with alpha=1 every committed path is a shortest
// path from the source (Dijkstra). Values in between trade one off against
// the other. Expansion is driven by a min-heap over a composite
// (alpha*path_dist + edge) cost, exactly as in Feline's run_prim_djistrka,
// using the same lazy-decrease-key discipline (push a new candidate rather
// than mutating a queued one, and discard stale pops) that this lineage's
// own Dijkstra implementation uses.
package primdijkstra
