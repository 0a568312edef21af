package curve

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/geom"
)

// Rotate turns p about center by degrees. Positive angles turn clockwise on
// screen (Y down). The kind of p is kept.
func Rotate(p, center geom.PointF, degrees float32) geom.PointF {
	if degrees == 0 || !p.Valid() {
		return p
	}
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	dx, dy := p.X-center.X, p.Y-center.Y
	return geom.PtFKind(center.X+dx*cos-dy*sin, center.Y+dx*sin+dy*cos, p.Kind)
}

// Rotation is a rotation about a fixed centre.
type Rotation struct {
	Angle  float32 // degrees
	Center geom.PointF
}

// Identity reports whether the rotation leaves points unchanged.
func (r Rotation) Identity() bool {
	return math32.Mod(r.Angle, 360) == 0
}

// Apply rotates one point.
func (r Rotation) Apply(p geom.PointF) geom.PointF {
	if r.Identity() {
		return p
	}
	return Rotate(p, r.Center, r.Angle)
}

// ApplyAll returns a rotated copy of points. Break markers pass through.
func (r Rotation) ApplyAll(points []geom.PointF) []geom.PointF {
	out := make([]geom.PointF, len(points))
	for i, p := range points {
		if p.Kind == geom.KindBreak {
			out[i] = p
			continue
		}
		out[i] = r.Apply(p)
	}
	return out
}

// Scale returns a copy of points scaled by (sx, sy) about center.
func Scale(points []geom.PointF, sx, sy float32, center geom.PointF) []geom.PointF {
	out := make([]geom.PointF, len(points))
	for i, p := range points {
		if p.Kind == geom.KindBreak || !p.Valid() {
			out[i] = p
			continue
		}
		out[i] = geom.PtFKind(center.X+(p.X-center.X)*sx, center.Y+(p.Y-center.Y)*sy, p.Kind)
	}
	return out
}

// Translate returns a copy of points moved by (dx, dy).
func Translate(points []geom.PointF, dx, dy float32) []geom.PointF {
	out := make([]geom.PointF, len(points))
	for i, p := range points {
		if p.Kind == geom.KindBreak || !p.Valid() {
			out[i] = p
			continue
		}
		out[i] = geom.PtFKind(p.X+dx, p.Y+dy, p.Kind)
	}
	return out
}
