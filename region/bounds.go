package region

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/geom"
)

// Bounds returns the smallest float rectangle containing every valid,
// non-break point. It returns the zero rectangle when there is none.
func Bounds(points ...geom.PointF) geom.RectangleF {
	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	seen := false
	for _, p := range points {
		if !p.Valid() || p.Kind == geom.KindBreak {
			continue
		}
		seen = true
		minX = math32.Min(minX, p.X)
		minY = math32.Min(minY, p.Y)
		maxX = math32.Max(maxX, p.X)
		maxY = math32.Max(maxY, p.Y)
	}
	if !seen {
		return geom.RectangleF{}
	}
	return geom.RectF(minX, minY, maxX-minX, maxY-minY)
}

// BoundsInt returns the pixel rectangle covering every valid, non-break
// point; both extreme pixels are included.
func BoundsInt(points ...geom.Point) geom.Rectangle {
	first := true
	var minX, minY, maxX, maxY int
	for _, p := range points {
		if !p.Valid() || p.Kind == geom.KindBreak {
			continue
		}
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if first {
		return geom.Rectangle{}
	}
	return geom.Rect(minX, minY, maxX-minX+1, maxY-minY+1)
}

// StrokeAreas returns the outer and inner rectangles bounding a stroke of
// the given width drawn along r. The band between them is the stroke. For
// StrokeMiddle the extra odd pixel goes outside.
func StrokeAreas(r geom.Rectangle, width int, mode geom.StrokeMode) (outer, inner geom.Rectangle) {
	width = max(width, 0)
	switch mode {
	case geom.StrokeInner:
		return r, r.Inflate(-width, -width)
	case geom.StrokeOuter:
		return r.Inflate(width, width), r
	default:
		out := (width + 1) / 2
		in := width / 2
		return r.Inflate(out, out), r.Inflate(-in, -in)
	}
}
