package gcell_test

import (
	"testing"

	"github.com/rectree/rectree/gcell"
	"github.com/stretchr/testify/require"
)

func TestMDist(t *testing.T) {
	a := gcell.New(0, 0)
	b := gcell.New(3, -2)
	require.Equal(t, 5, a.MDist(b))
	require.Equal(t, 5, b.MDist(a))
	require.Equal(t, 0, a.MDist(a))
}

func TestLessLexicographic(t *testing.T) {
	// Row-major: lower Y always sorts first, regardless of X.
	require.True(t, gcell.New(2, 0).Less(gcell.New(1, 5)))
	require.True(t, gcell.New(1, 0).Less(gcell.New(2, 0)))
	require.False(t, gcell.New(1, 1).Less(gcell.New(1, 1)))
	require.True(t, gcell.New(1, 1).LessEq(gcell.New(1, 1)))
}

func TestNullSentinel(t *testing.T) {
	require.True(t, gcell.Null().IsNull())
	require.False(t, gcell.New(0, 0).IsNull())
	require.True(t, gcell.Null().Less(gcell.New(-30000, -30000)))
}

func TestBoundingBoxExtend(t *testing.T) {
	var bb gcell.BoundingBox
	require.True(t, bb.Empty())

	bb.Extend(gcell.New(2, 3))
	require.False(t, bb.Empty())
	require.Equal(t, gcell.BoundingBox{X0: 2, Y0: 3, X1: 2, Y1: 3}, stripInit(bb))

	bb.Extend(gcell.New(-1, 5))
	bb.Extend(gcell.New(4, 1))
	require.Equal(t, int16(-1), bb.X0)
	require.Equal(t, int16(4), bb.X1)
	require.Equal(t, int16(1), bb.Y0)
	require.Equal(t, int16(5), bb.Y1)
}

// stripInit zeroes the unexported initialized flag for struct-literal
// comparison in TestBoundingBoxExtend.
func stripInit(bb gcell.BoundingBox) gcell.BoundingBox {
	bb = gcell.BoundingBox{X0: bb.X0, Y0: bb.Y0, X1: bb.X1, Y1: bb.Y1}

	return bb
}
