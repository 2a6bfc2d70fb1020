package hvw

import "github.com/rectree/rectree/gcell"

// Stats summarises one Build run, for a caller's build diagnostics.
type Stats struct {
	// NodesSteinerised counts nodes that had at least one flexible edge
	// rewritten into an L-shape.
	NodesSteinerised int
	// HeuristicFallbacks counts nodes whose flexible-edge fanout reached
	// the design's 2^k enumeration limit and were resolved by the greedy
	// per-edge fallback instead of exhaustive bitmask search.
	HeuristicFallbacks int
}

// DefaultMaxFlexibleEdges is the design's assumed upper bound on k (spec:
// "design assumes k < 10"): passed as Build's maxFlexibleEdges, a node with
// more flexible edges than this is resolved by the deterministic greedy
// fallback instead of exhaustive bitmask search.
const DefaultMaxFlexibleEdges = 9

// flexEdge is one of v's incident edges whose other endpoint shares
// neither coordinate with v — a candidate for L-shape insertion.
type flexEdge struct {
	other    gcell.GCell
	backward bool // true if other is v's parent (the driving edge)
}

// segKey identifies a family of colinear segments: all segments sharing
// the same anchor point, axis, and direction sign can overlap with one
// another.
type segKey struct {
	anchor gcell.GCell
	axis   int // 0 = horizontal (x varies), 1 = vertical (y varies)
	sign   int // +1 or -1
}
