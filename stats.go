package rectree

// BuildStats summarises one BuildTree run: how much work each local-search
// phase did, and whether HvwSteineriser's heuristic fallback fired. This
// gives a caller observability into the build without this package taking
// a logging dependency (see WithLogf for the non-fatal diagnostic path).
type BuildStats struct {
	// EdgeFlipMoves is the number of PD-II single-flip moves committed.
	EdgeFlipMoves int
	// NodesSteinerised is the number of nodes that had at least one
	// diagonal edge rewritten into an L-shape.
	NodesSteinerised int
	// HeuristicFallbacks is the number of nodes whose flexible-edge fanout
	// exceeded MaxFlexibleEdges and were resolved by the greedy fallback
	// instead of exhaustive bitmask search.
	HeuristicFallbacks int
}
