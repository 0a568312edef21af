package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixcore/geom"
)

func square() []geom.PointF {
	return []geom.PointF{geom.PtF(0, 0), geom.PtF(10, 0), geom.PtF(10, 10), geom.PtF(0, 10)}
}

func reversed(pts []geom.PointF) []geom.PointF {
	out := make([]geom.PointF, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func assertNear(t *testing.T, want, got []geom.PointF) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Near(want[i], 1e-3), "point %d: got %v want %v", i, got[i], want[i])
	}
}

func TestParallelLine(t *testing.T) {
	a, b := ParallelLine(geom.PtF(0, 0), geom.PtF(10, 0), 2)
	assert.Equal(t, geom.PtF(0, 2), a)
	assert.Equal(t, geom.PtF(10, 2), b)

	a, b = ParallelLine(geom.PtF(0, 0), geom.PtF(0, 10), 3)
	assert.Equal(t, geom.PtF(-3, 0), a)
	assert.Equal(t, geom.PtF(-3, 10), b)

	p := geom.PtF(4, 4)
	a, b = ParallelLine(p, p, 5)
	assert.Equal(t, p, a)
	assert.Equal(t, p, b)
}

func TestSignedArea(t *testing.T) {
	assert.Equal(t, float32(200), SignedArea(square()))
	assert.Equal(t, float32(-200), SignedArea(reversed(square())))
}

func TestOffsetClosedMiddle(t *testing.T) {
	left, right := Offset(square(), 2, geom.StrokeMiddle, true)
	assertNear(t, []geom.PointF{
		geom.PtF(-1, -1), geom.PtF(11, -1), geom.PtF(11, 11), geom.PtF(-1, 11),
	}, left)
	assertNear(t, []geom.PointF{
		geom.PtF(1, 1), geom.PtF(9, 1), geom.PtF(9, 9), geom.PtF(1, 9),
	}, right)
}

func TestOffsetOpenPolyline(t *testing.T) {
	path := []geom.PointF{geom.PtF(0, 0), geom.PtF(10, 0), geom.PtF(10, 10)}
	left, right := Offset(path, 2, geom.StrokeMiddle, false)
	assertNear(t, []geom.PointF{geom.PtF(0, -1), geom.PtF(11, -1), geom.PtF(11, 10)}, left)
	assertNear(t, []geom.PointF{geom.PtF(0, 1), geom.PtF(9, 1), geom.PtF(9, 10)}, right)
}

func TestOffsetInnerFollowsWinding(t *testing.T) {
	for _, tt := range []struct {
		name string
		pts  []geom.PointF
	}{
		{"clockwise", square()},
		{"counter-clockwise", reversed(square())},
	} {
		t.Run(tt.name, func(t *testing.T) {
			left, right := Offset(tt.pts, 2, geom.StrokeInner, true)
			inner := right
			if SignedArea(tt.pts) < 0 {
				inner = left
			}
			inside := geom.RectF(2, 2, 6, 6)
			for _, p := range inner {
				assert.True(t, inside.Contains(p), "%v not on the inner square", p)
			}
		})
	}
}

func TestOffsetOuterGrows(t *testing.T) {
	left, _ := Offset(square(), 3, geom.StrokeOuter, true)
	assertNear(t, []geom.PointF{
		geom.PtF(-3, -3), geom.PtF(13, -3), geom.PtF(13, 13), geom.PtF(-3, 13),
	}, left)
}

func TestOffsetDegenerate(t *testing.T) {
	l, r := Offset([]geom.PointF{geom.PtF(1, 1), geom.PtF(1, 1)}, 2, geom.StrokeMiddle, false)
	assert.Nil(t, l)
	assert.Nil(t, r)
}

func TestOutline(t *testing.T) {
	path := []geom.PointF{geom.PtF(0, 0), geom.PtF(10, 0), geom.PtF(10, 10)}
	open := Outline(path, 2, geom.StrokeMiddle, false)
	assert.Len(t, open, 6)
	assert.True(t, open[3].Near(geom.PtF(9, 10), 1e-3), "right side is reversed")

	closed := Outline(square(), 2, geom.StrokeMiddle, true)
	require.Len(t, closed, 9)
	assert.Equal(t, geom.KindBreak, closed[4].Kind)
}

func TestOutlineMiterLimit(t *testing.T) {
	// A hairpin turn would put the miter far from the vertex.
	path := []geom.PointF{geom.PtF(0, 0), geom.PtF(100, 0), geom.PtF(0, 1)}
	left, right := Offset(path, 2, geom.StrokeMiddle, false)
	for _, side := range [][]geom.PointF{left, right} {
		assert.LessOrEqual(t, Distance(side[1], path[1]), float32(MiterLimit*1+1e-3))
	}
}
