package curve

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/geom"
)

// MiterLimit caps how far a resolved corner may sit from its vertex, in
// multiples of the offset distance. Sharper corners fall back to the
// midpoint of the two offset endpoints.
const MiterLimit = 4

// ParallelLine returns the segment a-b moved perpendicular to itself by
// dist. Positive distances move it to the right of its direction of travel
// in Y-down coordinates. A zero-length segment is returned unchanged.
func ParallelLine(a, b geom.PointF, dist float32) (geom.PointF, geom.PointF) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math32.Hypot(dx, dy)
	if length == 0 {
		return a, b
	}
	nx, ny := -dy/length*dist, dx/length*dist
	return geom.PtF(a.X+nx, a.Y+ny), geom.PtF(b.X+nx, b.Y+ny)
}

// SignedArea returns twice the signed area of a closed polygon. In Y-down
// coordinates a positive result means the interior lies to the right of
// the direction of travel.
func SignedArea(points []geom.PointF) float32 {
	var sum float32
	n := len(points)
	for i := 0; i < n; i++ {
		p, q := points[i], points[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// Offset derives the two sides of a stroke along polyline.
//
// Each segment gets a parallel line on each side: at half the width for
// StrokeMiddle, or at the full width on one side for StrokeInner and
// StrokeOuter, whose other side is the path itself. Interior vertices are
// resolved by intersecting the adjacent offset lines; exactly parallel
// neighbours (and corners past MiterLimit) use the midpoint of the two
// offset endpoints instead.
//
// Inner and outer follow the winding of a closed path; an open path treats
// its right-hand side as inside. Consecutive duplicate points are dropped.
func Offset(polyline []geom.PointF, width float32, mode geom.StrokeMode, closed bool) (left, right []geom.PointF) {
	pts := dedupe(polyline, closed)
	if len(pts) < 2 {
		return nil, nil
	}
	if closed && len(pts) < 3 {
		closed = false
	}

	inside := float32(1)
	if closed && SignedArea(pts) < 0 {
		inside = -1
	}

	var dl, dr float32
	switch mode {
	case geom.StrokeInner:
		if inside > 0 {
			dl, dr = 0, width
		} else {
			dl, dr = -width, 0
		}
	case geom.StrokeOuter:
		if inside > 0 {
			dl, dr = -width, 0
		} else {
			dl, dr = 0, width
		}
	default:
		dl, dr = -width/2, width/2
	}

	return offsetSide(pts, dl, closed), offsetSide(pts, dr, closed)
}

// Outline returns a fill polygon for the stroke. An open path yields one
// contour: the left side followed by the reversed right side. A closed path
// yields two contours separated by a KindBreak marker, to be filled with
// the even-odd rule.
func Outline(polyline []geom.PointF, width float32, mode geom.StrokeMode, closed bool) []geom.PointF {
	left, right := Offset(polyline, width, mode, closed)
	if left == nil {
		return nil
	}
	out := make([]geom.PointF, 0, len(left)+len(right)+1)
	out = append(out, left...)
	if closed && len(left) >= 3 {
		out = append(out, geom.PtFKind(0, 0, geom.KindBreak))
		return append(out, right...)
	}
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return out
}

func offsetSide(pts []geom.PointF, dist float32, closed bool) []geom.PointF {
	n := len(pts)
	if dist == 0 {
		out := make([]geom.PointF, n)
		copy(out, pts)
		return out
	}

	segs := n - 1
	if closed {
		segs = n
	}
	type seg struct{ a, b geom.PointF }
	lines := make([]seg, segs)
	for i := 0; i < segs; i++ {
		a, b := ParallelLine(pts[i], pts[(i+1)%n], dist)
		lines[i] = seg{a, b}
	}

	out := make([]geom.PointF, n)
	for i := 0; i < n; i++ {
		var prev, next seg
		switch {
		case !closed && i == 0:
			out[i] = lines[0].a
			continue
		case !closed && i == n-1:
			out[i] = lines[segs-1].b
			continue
		case i == 0:
			prev, next = lines[segs-1], lines[0]
		default:
			prev, next = lines[i-1], lines[i]
		}
		out[i] = corner(pts[i], prev.a, prev.b, next.a, next.b, dist)
	}
	return out
}

func corner(vertex, a1, a2, b1, b2 geom.PointF, dist float32) geom.PointF {
	p, ok := LineIntersection(a1, a2, b1, b2)
	if !ok || Distance(p, vertex) > MiterLimit*math32.Abs(dist) {
		return Midpoint(a2, b1)
	}
	return p
}

func dedupe(points []geom.PointF, closed bool) []geom.PointF {
	out := make([]geom.PointF, 0, len(points))
	for _, p := range points {
		if !p.Valid() || p.Kind == geom.KindBreak {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Eq(p) {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Eq(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
