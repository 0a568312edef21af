package geom

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Unset is the integer sentinel that marks a coordinate as missing.
const Unset = math.MinInt32

// PointKind tags a point inside a point list.
type PointKind uint8

const (
	// KindNormal is an ordinary vertex.
	KindNormal PointKind = iota
	// KindBreak separates two contours in one point list.
	KindBreak
	// KindSegment marks the start of an independent segment.
	KindSegment
)

// String returns the kind name.
func (k PointKind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindBreak:
		return "Break"
	case KindSegment:
		return "Segment"
	default:
		return fmt.Sprintf("PointKind(%d)", k)
	}
}

// Point is an integer 2D location.
type Point struct {
	X, Y int
	Kind PointKind

	invalid bool
}

// InvalidPoint is the canonical invalid integer point.
var InvalidPoint = Point{X: Unset, Y: Unset, invalid: true}

// Pt creates a normal point. Either coordinate equal to Unset yields an
// invalid point.
func Pt(x, y int) Point {
	return PtKind(x, y, KindNormal)
}

// PtKind creates a point with an explicit kind.
func PtKind(x, y int, kind PointKind) Point {
	return Point{X: x, Y: y, Kind: kind, invalid: x == Unset || y == Unset}
}

// Valid reports whether the point was constructed from usable coordinates.
func (p Point) Valid() bool { return !p.invalid }

// WithKind returns a copy of p tagged with kind.
func (p Point) WithKind(kind PointKind) Point {
	p.Kind = kind
	return p
}

// Add returns p+q. The kind of p is kept.
func (p Point) Add(q Point) Point {
	return PtKind(p.X+q.X, p.Y+q.Y, p.Kind)
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return PtKind(p.X-q.X, p.Y-q.Y, p.Kind)
}

// Mul returns the component-wise product.
func (p Point) Mul(q Point) Point {
	return PtKind(p.X*q.X, p.Y*q.Y, p.Kind)
}

// Div returns the component-wise quotient. A zero divisor component is
// replaced by 1, so Div never panics; the result is then the dividend.
func (p Point) Div(q Point) Point {
	return PtKind(p.X/safeDivisor(q.X), p.Y/safeDivisor(q.Y), p.Kind)
}

// Mod returns the component-wise remainder, with the same zero-divisor
// substitution as Div.
func (p Point) Mod(q Point) Point {
	return PtKind(p.X%safeDivisor(q.X), p.Y%safeDivisor(q.Y), p.Kind)
}

// Scale multiplies both coordinates by s.
func (p Point) Scale(s int) Point {
	return PtKind(p.X*s, p.Y*s, p.Kind)
}

// Eq reports whether p and q have the same coordinates. Kind is ignored.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// String returns a representation like "(3,4)".
func (p Point) String() string {
	if p.invalid {
		return "(invalid)"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PointF is a float 2D location.
type PointF struct {
	X, Y float32
	Kind PointKind

	invalid bool
}

// InvalidPointF is the canonical invalid float point.
var InvalidPointF = PointF{X: math32.NaN(), Y: math32.NaN(), invalid: true}

// PtF creates a normal float point. NaN or infinite coordinates yield an
// invalid point.
func PtF(x, y float32) PointF {
	return PtFKind(x, y, KindNormal)
}

// PtFKind creates a float point with an explicit kind.
func PtFKind(x, y float32, kind PointKind) PointF {
	return PointF{X: x, Y: y, Kind: kind, invalid: !finite(x) || !finite(y)}
}

// Valid reports whether the point was constructed from finite coordinates.
func (p PointF) Valid() bool { return !p.invalid }

// WithKind returns a copy of p tagged with kind.
func (p PointF) WithKind(kind PointKind) PointF {
	p.Kind = kind
	return p
}

// Add returns p+q.
func (p PointF) Add(q PointF) PointF {
	return PtFKind(p.X+q.X, p.Y+q.Y, p.Kind)
}

// Sub returns p-q.
func (p PointF) Sub(q PointF) PointF {
	return PtFKind(p.X-q.X, p.Y-q.Y, p.Kind)
}

// Mul returns the component-wise product.
func (p PointF) Mul(q PointF) PointF {
	return PtFKind(p.X*q.X, p.Y*q.Y, p.Kind)
}

// Div returns the component-wise quotient. A zero divisor component is
// replaced by 1 to keep NaN and Inf out of the pipeline.
func (p PointF) Div(q PointF) PointF {
	return PtFKind(p.X/safeDivisorF(q.X), p.Y/safeDivisorF(q.Y), p.Kind)
}

// Mod returns the component-wise floating remainder with the same
// zero-divisor substitution as Div.
func (p PointF) Mod(q PointF) PointF {
	return PtFKind(math32.Mod(p.X, safeDivisorF(q.X)), math32.Mod(p.Y, safeDivisorF(q.Y)), p.Kind)
}

// Scale multiplies both coordinates by s.
func (p PointF) Scale(s float32) PointF {
	return PtFKind(p.X*s, p.Y*s, p.Kind)
}

// Lerp interpolates between p (t=0) and q (t=1).
func (p PointF) Lerp(q PointF, t float32) PointF {
	return PtFKind(p.X+(q.X-p.X)*t, p.Y+(q.Y-p.Y)*t, p.Kind)
}

// Eq reports whether p and q have the same coordinates. Kind is ignored.
func (p PointF) Eq(q PointF) bool {
	return p.X == q.X && p.Y == q.Y
}

// Near reports whether p and q are within eps of each other on both axes.
func (p PointF) Near(q PointF, eps float32) bool {
	return math32.Abs(p.X-q.X) <= eps && math32.Abs(p.Y-q.Y) <= eps
}

// String returns a representation like "(3.5,4)".
func (p PointF) String() string {
	if p.invalid {
		return "(invalid)"
	}
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func safeDivisor(v int) int {
	if v == 0 {
		return 1
	}
	return v
}

func safeDivisorF(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
