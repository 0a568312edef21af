package curve

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/geom"
)

// Slope returns Δy/Δx between two points. The second result is false when
// Δx is zero (a vertical line), in which case the slope is 0.
func Slope(p1, p2 geom.PointF) (float32, bool) {
	dx := p2.X - p1.X
	if dx == 0 {
		return 0, false
	}
	return (p2.Y - p1.Y) / dx, true
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 geom.PointF) float32 {
	return math32.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Angle returns the direction from p1 to p2 in degrees, in (-180, 180].
// Y grows downwards, so positive angles turn clockwise on screen.
func Angle(p1, p2 geom.PointF) float32 {
	return math32.Atan2(p2.Y-p1.Y, p2.X-p1.X) * 180 / math32.Pi
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 geom.PointF) geom.PointF {
	return geom.PtF((p1.X+p2.X)/2, (p1.Y+p2.Y)/2)
}

const (
	// SlopeShift is the number of fractional bits in a table slope.
	SlopeShift = 24
	// Big is the fixed-point one used by SlopeTable.
	Big = 1 << SlopeShift
	// SlopeTableSize is the largest |Δx| served from the table.
	SlopeTableSize = 3000
)

// SlopeTable holds Big/i for i in 1..SlopeTableSize so integer line
// steppers can replace a division with a multiplication.
//
// Table slopes are truncated reciprocals: they are an approximation meant
// for Bresenham-style drawing and must not be used where exact maths is
// needed. Build one with NewSlopeTable during setup and pass it to the
// steppers that need it; it is read-only afterwards.
type SlopeTable struct {
	recip [SlopeTableSize + 1]int64
}

// NewSlopeTable builds the reciprocal table.
func NewSlopeTable() *SlopeTable {
	t := &SlopeTable{}
	for i := 1; i <= SlopeTableSize; i++ {
		t.recip[i] = Big / int64(i)
	}
	return t
}

// Reciprocal returns Big/i for 1 <= i <= SlopeTableSize and computes it
// directly otherwise. Reciprocal(0) is 0.
func (t *SlopeTable) Reciprocal(i int) int64 {
	switch {
	case i == 0:
		return 0
	case i > 0 && i <= SlopeTableSize:
		return t.recip[i]
	default:
		return Big / int64(i)
	}
}

// Slope returns dy/dx as a fixed-point number with SlopeShift fractional
// bits. A zero dx returns 0; callers stepping along y must handle vertical
// lines themselves.
func (t *SlopeTable) Slope(dx, dy int) int64 {
	if dx == 0 {
		return 0
	}
	adx := dx
	if adx < 0 {
		adx = -adx
	}
	if adx > SlopeTableSize {
		return int64(dy) * Big / int64(dx)
	}
	s := int64(dy) * t.recip[adx]
	if dx < 0 {
		s = -s
	}
	return s
}
