package scan

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/geom"
)

type edge struct {
	x0, y0 float32
	x1, y1 float32
}

func newEdge(p0, p1 geom.PointF) edge {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	return edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y}
}

func (e edge) xAt(y float32) float32 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// Polygon scan-fills points with the even-odd rule and returns one
// horizontal OddEvenLine per row that has crossings.
//
// Rows are sampled at pixel centres (y+0.5); a crossing at x becomes the
// first pixel whose centre is at or right of x, so each pair [a, b) covers
// the pixels whose centres lie inside the polygon. KindBreak points split
// the list into contours, each implicitly closed. Horizontal edges and
// invalid points are ignored.
//
// Polygon visits every row the points span. Use ClipPolygon when only a
// destination's pixels matter.
func Polygon(points []geom.PointF) []OddEvenLine {
	return polygon(points, nil)
}

// ClipPolygon is Polygon limited to the rows of clip, with crossings
// clamped to its columns. The work done is bounded by the clip height
// times the number of edges, wherever the points lie.
func ClipPolygon(points []geom.PointF, clip geom.Rectangle) []OddEvenLine {
	if clip.Empty() {
		return nil
	}
	return polygon(points, &clip)
}

func polygon(points []geom.PointF, clip *geom.Rectangle) []OddEvenLine {
	edges := buildEdges(points)
	if len(edges) == 0 {
		return nil
	}

	yMin, yMax := edges[0].y0, edges[0].y1
	for _, e := range edges[1:] {
		yMin = math32.Min(yMin, e.y0)
		yMax = math32.Max(yMax, e.y1)
	}
	y0, y1 := math32.Floor(yMin), math32.Ceil(yMax)
	xLo, xHi := math32.Inf(-1), math32.Inf(1)
	if clip != nil {
		y0 = math32.Max(y0, float32(clip.Y))
		y1 = math32.Min(y1, float32(clip.Bottom()))
		xLo, xHi = float32(clip.X), float32(clip.Right())
	}

	var lines []OddEvenLine
	xs := make([]int, 0, 8)
	for y := int(y0); y < int(y1); y++ {
		sy := float32(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if e.y0 <= sy && sy < e.y1 {
				x := math32.Ceil(e.xAt(sy) - 0.5)
				xs = append(xs, int(math32.Min(math32.Max(x, xLo), xHi)))
			}
		}
		if len(xs) == 0 {
			continue
		}
		lines = append(lines, NewOddEvenLine(y, true, xs...))
	}
	return lines
}

func buildEdges(points []geom.PointF) []edge {
	var edges []edge
	var contour []geom.PointF
	flush := func() {
		n := len(contour)
		for i := 0; i < n && n > 1; i++ {
			p0, p1 := contour[i], contour[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			edges = append(edges, newEdge(p0, p1))
		}
		contour = contour[:0]
	}
	for _, p := range points {
		switch {
		case p.Kind == geom.KindBreak:
			flush()
		case p.Valid():
			contour = append(contour, p)
		}
	}
	flush()
	return edges
}
