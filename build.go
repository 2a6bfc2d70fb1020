package rectree

import (
	"github.com/rectree/rectree/edgeflip"
	"github.com/rectree/rectree/hvw"
	"github.com/rectree/rectree/primdijkstra"
	"github.com/rectree/rectree/stree"
)

// BuildTree runs the fixed phase order — init, PrimDijkstra, EdgeFlipper,
// HvwSteineriser — over net, resolved through geo, and returns the
// resulting tree plus diagnostics. It fails only if alpha lies outside
// [0, 1] or a precondition violation surfaces from an earlier phase
// (always a bug, never a reachable state from well-formed input); a net
// with no driver or no
// usable sinks is not an error and yields an empty or single-node tree.
func BuildTree(net NetEnumeration, geo GeometryOracle, opts ...Option) (*stree.STree, BuildStats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	tree := stree.InitTree(net, geo)

	var stats BuildStats
	if tree.Source.IsNull() {
		return tree, stats, nil
	}

	if err := primdijkstra.Build(tree, o.Alpha); err != nil {
		return tree, stats, err
	}

	moves, err := edgeflip.Build(tree, o.Alpha)
	if err != nil {
		return tree, stats, err
	}
	stats.EdgeFlipMoves = moves
	if moves > 0 {
		o.Logf("rectree: edgeflip committed %d moves", moves)
	}

	hvwStats, err := hvw.Build(tree, o.MaxFlexibleEdges)
	if err != nil {
		return tree, stats, err
	}
	stats.NodesSteinerised = hvwStats.NodesSteinerised
	stats.HeuristicFallbacks = hvwStats.HeuristicFallbacks
	if hvwStats.HeuristicFallbacks > 0 {
		o.Logf("rectree: hvw heuristic fallback fired on %d node(s)", hvwStats.HeuristicFallbacks)
	}

	return tree, stats, nil
}
