package edgeflip_test

import (
	"testing"

	"github.com/rectree/rectree/edgeflip"
	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/stree"
	"github.com/stretchr/testify/require"
)

// manualTree builds an STree directly from an explicit parent map, bypassing
// PrimDijkstra so each test can set up an exact topology.
func manualTree(source gcell.GCell, parents map[gcell.GCell]gcell.GCell) *stree.STree {
	tree := stree.New()
	tree.Source = source
	tree.Nodes[source] = &stree.Node{Uphill: gcell.Null()}
	for c, p := range parents {
		tree.Nodes[c] = &stree.Node{Uphill: p}
	}

	return tree
}

func TestBuildCommitsWirelengthImprovingFlip(t *testing.T) {
	p := gcell.New(0, 0)
	v := gcell.New(10, 0)
	newSrc := gcell.New(1, 5)
	newDst := gcell.New(1, 6)

	tree := manualTree(p, map[gcell.GCell]gcell.GCell{
		v:      p,
		newSrc: p,
		newDst: v,
	})

	moves, err := edgeflip.Build(tree, 0)
	require.NoError(t, err)
	require.Equal(t, 1, moves)

	require.Equal(t, newDst, tree.Nodes[v].Uphill)
	require.Equal(t, newSrc, tree.Nodes[newDst].Uphill)

	children := tree.Children()
	require.Equal(t, map[gcell.GCell]struct{}{newSrc: {}}, children[p])

	order, err := tree.TopoSorted()
	require.NoError(t, err)
	require.Len(t, order, 4)
}

func TestBuildConvergesToFixedPoint(t *testing.T) {
	p := gcell.New(0, 0)
	v := gcell.New(10, 0)
	newSrc := gcell.New(1, 5)
	newDst := gcell.New(1, 6)

	tree := manualTree(p, map[gcell.GCell]gcell.GCell{
		v:      p,
		newSrc: p,
		newDst: v,
	})

	_, err := edgeflip.Build(tree, 0)
	require.NoError(t, err)

	moves, err := edgeflip.Build(tree, 0)
	require.NoError(t, err)
	require.Equal(t, 0, moves)
}

func TestBuildNoMoveOnSingleChildChain(t *testing.T) {
	a := gcell.New(0, 0)
	b := gcell.New(1, 0)
	c := gcell.New(2, 0)

	tree := manualTree(a, map[gcell.GCell]gcell.GCell{b: a, c: b})

	moves, err := edgeflip.Build(tree, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, moves)
}

func TestBuildRejectsAlphaOutOfRange(t *testing.T) {
	tree := manualTree(gcell.New(0, 0), nil)
	_, err := edgeflip.Build(tree, -0.01)
	require.ErrorIs(t, err, edgeflip.ErrAlphaOutOfRange)
	_, err = edgeflip.Build(tree, 1.01)
	require.ErrorIs(t, err, edgeflip.ErrAlphaOutOfRange)
}

func TestBuildEmptyTreeIsNoop(t *testing.T) {
	tree := stree.New()
	moves, err := edgeflip.Build(tree, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, moves)
}
