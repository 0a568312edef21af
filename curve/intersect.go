package curve

import (
	"math"

	"github.com/gogpu/pixcore/geom"
)

// MaxCoordinate bounds intersection results. Points further than this from
// the origin on either axis come from nearly parallel lines and are
// reported as "no intersection" rather than fed to the renderer.
const MaxCoordinate = 7680

// parallelEps is the determinant below which two lines are parallel.
const parallelEps = 1e-9

// segmentEps is the slack used when testing whether a point lies on a
// segment.
const segmentEps = 1e-4

// line is a*x + b*y = c.
type line struct {
	a, b, c float64
}

func lineThrough(p1, p2 geom.PointF) line {
	a := float64(p2.Y) - float64(p1.Y)
	b := float64(p1.X) - float64(p2.X)
	return line{a: a, b: b, c: a*float64(p1.X) + b*float64(p1.Y)}
}

func (l line) intersect(o line) (x, y float64, ok bool) {
	det := l.a*o.b - o.a*l.b
	if math.Abs(det) < parallelEps {
		return 0, 0, false
	}
	x = (o.b*l.c - l.b*o.c) / det
	y = (l.a*o.c - o.a*l.c) / det
	if math.Abs(x) > MaxCoordinate || math.Abs(y) > MaxCoordinate {
		return 0, 0, false
	}
	return x, y, true
}

// LineIntersection returns the point where the infinite lines through
// (a1, a2) and (b1, b2) cross. It reports false for parallel or coincident
// lines and for crossings beyond MaxCoordinate.
func LineIntersection(a1, a2, b1, b2 geom.PointF) (geom.PointF, bool) {
	x, y, ok := lineThrough(a1, a2).intersect(lineThrough(b1, b2))
	if !ok {
		return geom.InvalidPointF, false
	}
	return geom.PtF(float32(x), float32(y)), true
}

// Intersect returns the point where segments a1-a2 and b1-b2 meet.
// Segments sharing an endpoint meet at that endpoint without solving.
func Intersect(a1, a2, b1, b2 geom.PointF) (geom.PointF, bool) {
	switch {
	case a1.Eq(b1) || a1.Eq(b2):
		return a1, true
	case a2.Eq(b1) || a2.Eq(b2):
		return a2, true
	}
	x, y, ok := lineThrough(a1, a2).intersect(lineThrough(b1, b2))
	if !ok || !onSegment(a1, a2, x, y) || !onSegment(b1, b2, x, y) {
		return geom.InvalidPointF, false
	}
	return geom.PtF(float32(x), float32(y)), true
}

func onSegment(p1, p2 geom.PointF, x, y float64) bool {
	minX, maxX := minMax64(float64(p1.X), float64(p2.X))
	minY, maxY := minMax64(float64(p1.Y), float64(p2.Y))
	return x >= minX-segmentEps && x <= maxX+segmentEps &&
		y >= minY-segmentEps && y <= maxY+segmentEps
}

func minMax64(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
