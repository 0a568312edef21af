package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Round converts p to an integer point, rounding half away from zero. An
// invalid p converts to InvalidPoint.
func (p PointF) Round() Point {
	if !p.Valid() {
		return InvalidPoint
	}
	return PtKind(int(math32.Round(p.X)), int(math32.Round(p.Y)), p.Kind)
}

// Float converts p to a float point.
func (p Point) Float() PointF {
	if !p.Valid() {
		return InvalidPointF
	}
	return PtFKind(float32(p.X), float32(p.Y), p.Kind)
}

// Fixed converts p to 26.6 fixed point, the unit used by font rasterizers.
func (p PointF) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// PointFromFixed converts a 26.6 fixed point back to a float point.
func PointFromFixed(p fixed.Point26_6) PointF {
	return PtF(float32(p.X)/64, float32(p.Y)/64)
}

// Ceil converts s to an integer size that never under-covers it: each
// dimension is truncated, then incremented when the truncation discarded a
// nonzero fraction.
func (s SizeF) Ceil() Size {
	return Size{W: enlarge(s.W), H: enlarge(s.H)}
}

// Float converts s to a float size.
func (s Size) Float() SizeF {
	return SizeF{W: float32(s.W), H: float32(s.H)}
}

// Round converts r to an integer rectangle: the position is rounded half
// away from zero and each dimension is enlarged as in SizeF.Ceil.
func (r RectangleF) Round() Rectangle {
	if !r.Valid() {
		return Rectangle{}
	}
	return Rectangle{
		X: int(math32.Round(r.X)),
		Y: int(math32.Round(r.Y)),
		W: enlarge(r.W),
		H: enlarge(r.H),
	}
}

// Float converts r to a float rectangle.
func (r Rectangle) Float() RectangleF {
	return RectangleF{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H)}
}

// Fixed converts r to a 26.6 fixed rectangle.
func (r RectangleF) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.X), Y: toFixed(r.Y)},
		Max: fixed.Point26_6{X: toFixed(r.Right()), Y: toFixed(r.Bottom())},
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}

func enlarge(v float32) int {
	if !finite(v) {
		return 0
	}
	n := int(v)
	if v > 0 && float32(n) != v {
		n++
	}
	return n
}
