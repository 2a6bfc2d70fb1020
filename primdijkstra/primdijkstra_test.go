package primdijkstra_test

import (
	"sort"
	"testing"

	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/neighbour"
	"github.com/rectree/rectree/primdijkstra"
	"github.com/rectree/rectree/stree"
	"github.com/stretchr/testify/require"
)

func buildSealedTree(t *testing.T, source gcell.GCell, cells []gcell.GCell) *stree.STree {
	t.Helper()
	tree := stree.New()
	tree.Source = source
	for _, c := range cells {
		tree.Nodes[c] = &stree.Node{Uphill: gcell.Null()}
		tree.Box.Extend(c)
		tree.Ports.Push(c)
	}
	tree.Ports.Seal()

	return tree
}

// bruteMSTWeight computes the minimum spanning tree weight over the
// maximum-bounding-box neighbour graph of cells, via Kruskal with a plain
// union-find, as an independent reference for the alpha=0 case.
func bruteMSTWeight(t *testing.T, tree *stree.STree, cells []gcell.GCell) int {
	t.Helper()
	oracle := neighbour.New(tree.Ports, tree.Box)

	type edge struct {
		a, b gcell.GCell
		w    int
	}
	seen := map[[2]gcell.GCell]bool{}
	var edges []edge
	for _, c := range cells {
		ns, err := oracle.Neighbours(c)
		require.NoError(t, err)
		for _, n := range ns {
			key := [2]gcell.GCell{c, n}
			rev := [2]gcell.GCell{n, c}
			if seen[key] || seen[rev] {
				continue
			}
			seen[key] = true
			edges = append(edges, edge{a: c, b: n, w: c.MDist(n)})
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].w < edges[j].w })

	parent := map[gcell.GCell]gcell.GCell{}
	for _, c := range cells {
		parent[c] = c
	}
	var find func(gcell.GCell) gcell.GCell
	find = func(x gcell.GCell) gcell.GCell {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	total, joined := 0, 0
	for _, e := range edges {
		ra, rb := find(e.a), find(e.b)
		if ra == rb {
			continue
		}
		parent[ra] = rb
		total += e.w
		joined++
	}
	require.Equal(t, len(cells)-1, joined, "neighbour graph must be connected")

	return total
}

func TestBuildAlphaZeroMatchesMST(t *testing.T) {
	cells := []gcell.GCell{
		gcell.New(0, 0), gcell.New(5, 0), gcell.New(5, 5),
		gcell.New(0, 5), gcell.New(2, 2), gcell.New(8, 3),
	}
	tree := buildSealedTree(t, cells[0], cells)
	wantWeight := bruteMSTWeight(t, tree, cells)

	require.NoError(t, primdijkstra.Build(tree, 0))

	gotWeight := 0
	for cell, n := range tree.Nodes {
		if n.Uphill.IsNull() {
			require.Equal(t, tree.Source, cell)
			continue
		}
		gotWeight += cell.MDist(n.Uphill)
	}
	require.Equal(t, wantWeight, gotWeight)
}

func TestBuildAlphaOnePathDistEqualsManhattan(t *testing.T) {
	cells := []gcell.GCell{
		gcell.New(0, 0), gcell.New(5, 0), gcell.New(5, 5),
		gcell.New(0, 5), gcell.New(2, 2), gcell.New(8, 3), gcell.New(-3, 4),
	}
	tree := buildSealedTree(t, cells[0], cells)

	require.NoError(t, primdijkstra.Build(tree, 1))

	for _, cell := range cells {
		pathDist := 0
		cur := cell
		for cur != tree.Source {
			n := tree.Nodes[cur]
			require.False(t, n.Uphill.IsNull(), "every non-source node must have a parent")
			pathDist += cur.MDist(n.Uphill)
			cur = n.Uphill
		}
		require.Equal(t, cell.MDist(tree.Source), pathDist, "cell %v", cell)
	}
}

func TestBuildExactlyOneNullUphill(t *testing.T) {
	cells := []gcell.GCell{gcell.New(0, 0), gcell.New(3, 1), gcell.New(1, 4)}
	tree := buildSealedTree(t, cells[0], cells)

	require.NoError(t, primdijkstra.Build(tree, 0.5))

	nullCount := 0
	for cell, n := range tree.Nodes {
		if n.Uphill.IsNull() {
			nullCount++
			require.Equal(t, tree.Source, cell)
		}
	}
	require.Equal(t, 1, nullCount)
}

func TestBuildRejectsAlphaOutOfRange(t *testing.T) {
	tree := buildSealedTree(t, gcell.New(0, 0), []gcell.GCell{gcell.New(0, 0), gcell.New(1, 1)})
	require.ErrorIs(t, primdijkstra.Build(tree, -0.1), primdijkstra.ErrAlphaOutOfRange)
	require.ErrorIs(t, primdijkstra.Build(tree, 1.1), primdijkstra.ErrAlphaOutOfRange)
}

func TestBuildEmptyTreeIsNoop(t *testing.T) {
	tree := stree.New()
	require.NoError(t, primdijkstra.Build(tree, 0.5))
	require.Empty(t, tree.Nodes)
}
