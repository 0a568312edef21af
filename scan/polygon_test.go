package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixcore/geom"
)

func pts(xy ...float32) []geom.PointF {
	out := make([]geom.PointF, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.PtF(xy[i], xy[i+1]))
	}
	return out
}

func TestPolygonRectangle(t *testing.T) {
	lines := Polygon(pts(0, 0, 4, 0, 4, 3, 0, 3))
	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, i, l.AxisValue())
		assert.True(t, l.IsHorizontal())
		assert.Equal(t, []geom.Span{geom.NewSpan(0, 4)}, l.Spans())
	}
}

func TestPolygonPixelCentres(t *testing.T) {
	// Edges at x=0.4 and x=2.6 cover the centres 0.5, 1.5 and 2.5.
	lines := Polygon(pts(0.4, 0, 2.6, 0, 2.6, 1, 0.4, 1))
	require.Len(t, lines, 1)
	assert.Equal(t, []geom.Span{geom.NewSpan(0, 3)}, lines[0].Spans())

	// Edges at x=0.6 and x=2.4 only cover 1.5.
	lines = Polygon(pts(0.6, 0, 2.4, 0, 2.4, 1, 0.6, 1))
	require.Len(t, lines, 1)
	assert.Equal(t, []geom.Span{geom.NewSpan(1, 1)}, lines[0].Spans())
}

func TestPolygonHole(t *testing.T) {
	shape := pts(0, 0, 10, 0, 10, 10, 0, 10)
	shape = append(shape, geom.PtFKind(0, 0, geom.KindBreak))
	shape = append(shape, pts(3, 3, 7, 3, 7, 7, 3, 7)...)

	lines := Polygon(shape)
	require.Len(t, lines, 10)
	assert.Equal(t, []geom.Span{geom.NewSpan(0, 10)}, lines[1].Spans())
	assert.Equal(t, []geom.Span{geom.NewSpan(0, 3), geom.NewSpan(7, 3)}, lines[5].Spans())
	assert.Equal(t, 4, lines[5].Count())
}

func TestPolygonTriangle(t *testing.T) {
	lines := Polygon(pts(0, 0, 8, 0, 0, 8))
	require.Len(t, lines, 8)
	for _, l := range lines {
		y := l.AxisValue()
		assert.Equal(t, 0, l.Count()%2)
		// The hypotenuse crosses row y at x = 7.5-y; a centre on the
		// right edge is outside.
		if y == 7 {
			assert.Nil(t, l.Spans())
			continue
		}
		assert.Equal(t, []geom.Span{geom.NewSpan(0, 7-y)}, l.Spans(), "row %d", y)
	}
}

func TestPolygonDegenerate(t *testing.T) {
	assert.Nil(t, Polygon(nil))
	assert.Nil(t, Polygon(pts(0, 5, 10, 5, 20, 5)), "horizontal only")
	assert.Nil(t, Polygon(pts(1, 1)))
}

func TestClipPolygonTallTriangle(t *testing.T) {
	clip := geom.Rect(0, 0, 8, 8)
	lines := ClipPolygon(pts(0, -5e6, 4, 5e6, -4, 5e6), clip)
	require.Len(t, lines, 8)
	for i, l := range lines {
		assert.Equal(t, i, l.AxisValue())
		assert.Equal(t, []geom.Span{geom.NewSpan(0, 2)}, l.Spans(), "row %d", i)
	}
}

func TestClipPolygonMatchesPolygon(t *testing.T) {
	shape := pts(-3, -2, 12, 1, 9, 14, 2, 7)
	clip := geom.Rect(1, 2, 6, 5)

	var want []OddEvenLine
	for _, l := range Polygon(shape) {
		y := l.AxisValue()
		if y < clip.Y || y >= clip.Bottom() {
			continue
		}
		var xs []int
		for _, s := range l.Spans() {
			a, b := max(s.Start, clip.X), min(s.Start+s.Length, clip.Right())
			if a < b {
				xs = append(xs, a, b)
			}
		}
		want = append(want, NewOddEvenLine(y, true, xs...))
	}

	got := ClipPolygon(shape, clip)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].AxisValue(), got[i].AxisValue())
		assert.Equal(t, want[i].Spans(), got[i].Spans(), "row %d", want[i].AxisValue())
	}
}

func TestClipPolygonOutside(t *testing.T) {
	assert.Nil(t, ClipPolygon(pts(0, 0, 4, 0, 4, 4), geom.Rect(0, 0, 0, 5)))
	assert.Nil(t, ClipPolygon(pts(0, 20, 4, 20, 4, 24), geom.Rect(0, 0, 8, 8)))

	// Entirely left of the clip: every crossing clamps to its edge.
	for _, l := range ClipPolygon(pts(-9, 0, -5, 0, -5, 4), geom.Rect(0, 0, 8, 8)) {
		assert.Nil(t, l.Spans())
	}
}
