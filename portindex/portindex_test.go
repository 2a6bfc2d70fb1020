package portindex_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/portindex"
	"github.com/stretchr/testify/require"
)

func TestQueryBeforeSealErrors(t *testing.T) {
	idx := portindex.New()
	idx.Push(gcell.New(1, 1))

	_, err := idx.PrevCell(gcell.New(0, 0))
	require.ErrorIs(t, err, portindex.ErrNotSealed)

	_, err = idx.NextCell(gcell.New(0, 0))
	require.ErrorIs(t, err, portindex.ErrNotSealed)

	_, err = idx.PrevY(0)
	require.ErrorIs(t, err, portindex.ErrNotSealed)

	_, err = idx.NextY(0)
	require.ErrorIs(t, err, portindex.ErrNotSealed)
}

func TestPrevNextCellAgainstLinearScan(t *testing.T) {
	cells := []gcell.GCell{
		gcell.New(2, 0), gcell.New(5, 0), gcell.New(0, 1),
		gcell.New(3, 1), gcell.New(1, 3), gcell.New(4, 3),
	}
	idx := portindex.New()
	for _, c := range cells {
		idx.Push(c)
	}
	idx.Seal()

	sorted := append([]gcell.GCell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	linearPrev := func(q gcell.GCell) gcell.GCell {
		best := gcell.Null()
		for _, c := range sorted {
			if c.Less(q) && (best.IsNull() || best.Less(c)) {
				best = c
			}
		}
		return best
	}
	linearNext := func(q gcell.GCell) gcell.GCell {
		best := gcell.Null()
		for _, c := range sorted {
			if q.Less(c) && (best.IsNull() || c.Less(best)) {
				best = c
			}
		}
		return best
	}

	queries := append(append([]gcell.GCell(nil), cells...),
		gcell.New(-1, -1), gcell.New(10, 10), gcell.New(2, 0), gcell.New(3, 1))
	for _, q := range queries {
		prev, err := idx.PrevCell(q)
		require.NoError(t, err)
		require.Equal(t, linearPrev(q), prev, "prev_cell(%v)", q)

		next, err := idx.NextCell(q)
		require.NoError(t, err)
		require.Equal(t, linearNext(q), next, "next_cell(%v)", q)
	}
}

func TestPrevNextYAgainstLinearScan(t *testing.T) {
	rows := []int16{-3, -3, 0, 0, 2, 7, 7, 9}
	idx := portindex.New()
	for i, y := range rows {
		idx.Push(gcell.New(i, int(y)))
	}
	idx.Seal()

	rowSet := map[int16]bool{}
	for _, y := range rows {
		rowSet[y] = true
	}
	linearPrevY := func(y int16) int16 {
		best := int16(-1)
		found := false
		for r := range rowSet {
			if r < y && (!found || r > best) {
				best, found = r, true
			}
		}
		if !found {
			return -1
		}
		return best
	}
	linearNextY := func(y int16) int16 {
		best := int16(0)
		found := false
		for r := range rowSet {
			if r > y && (!found || r < best) {
				best, found = r, true
			}
		}
		if !found {
			return -1
		}
		return best
	}

	for y := int16(-5); y <= 11; y++ {
		pv, err := idx.PrevY(y)
		require.NoError(t, err)
		require.Equal(t, linearPrevY(y), pv, "prev_y(%d)", y)

		nv, err := idx.NextY(y)
		require.NoError(t, err)
		require.Equal(t, linearNextY(y), nv, "next_y(%d)", y)
	}
}

func TestFuzzPrevNextCellRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(40)
		var cells []gcell.GCell
		idx := portindex.New()
		for i := 0; i < n; i++ {
			c := gcell.New(rng.Intn(20)-10, rng.Intn(20)-10)
			cells = append(cells, c)
			idx.Push(c)
		}
		idx.Seal()

		for q := 0; q < 20; q++ {
			query := gcell.New(rng.Intn(24)-12, rng.Intn(24)-12)
			wantPrev, wantNext := gcell.Null(), gcell.Null()
			for _, c := range cells {
				if c.Less(query) && (wantPrev.IsNull() || wantPrev.Less(c)) {
					wantPrev = c
				}
				if query.Less(c) && (wantNext.IsNull() || c.Less(wantNext)) {
					wantNext = c
				}
			}
			gotPrev, err := idx.PrevCell(query)
			require.NoError(t, err)
			require.Equal(t, wantPrev, gotPrev)

			gotNext, err := idx.NextCell(query)
			require.NoError(t, err)
			require.Equal(t, wantNext, gotNext)
		}
	}
}
