package scan

import (
	"math"
	"math/bits"

	"github.com/gogpu/pixcore/curve"
	"github.com/gogpu/pixcore/geom"
)

// Hairline returns the pixels of a one pixel wide line from p0 to p1,
// both included, stepping along the major axis.
//
// The minor coordinate advances by a fixed-point slope from table; a nil
// table falls back to exact division. Table slopes are truncated, so the
// stepper carries the leftover numerator as an error term and the minor
// coordinate at every step is the exactly rounded one. Invalid endpoints
// yield nil.
//
// Coordinates must lie within the int32 range.
func Hairline(p0, p1 geom.Point, table *curve.SlopeTable) []geom.Point {
	return hairline(p0, p1, table, nil)
}

// ClipHairline is Hairline restricted to the pixels inside clip. The
// pixels are the same ones Hairline produces; only the steps that can
// reach clip are walked, so the cost does not depend on how far the
// endpoints lie outside it.
func ClipHairline(p0, p1 geom.Point, table *curve.SlopeTable, clip geom.Rectangle) []geom.Point {
	if clip.Empty() {
		return nil
	}
	return hairline(p0, p1, table, &clip)
}

func hairline(p0, p1 geom.Point, table *curve.SlopeTable, clip *geom.Rectangle) []geom.Point {
	if !p0.Valid() || !p1.Valid() {
		return nil
	}
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	if dx == 0 && dy == 0 {
		if clip != nil && !clip.Contains(p0) {
			return nil
		}
		return []geom.Point{geom.Pt(p0.X, p0.Y)}
	}

	var (
		s  axisStep
		at func(major, minor int) geom.Point
	)
	if abs(dx) >= abs(dy) {
		s = newAxisStep(p0.X, p0.Y, dx, dy, table)
		at = func(major, minor int) geom.Point { return geom.Pt(major, minor) }
	} else {
		s = newAxisStep(p0.Y, p0.X, dy, dx, table)
		at = func(major, minor int) geom.Point { return geom.Pt(minor, major) }
	}

	lo, hi := 0, s.n
	if clip != nil {
		if abs(dx) >= abs(dy) {
			lo, hi = s.within(clip.X, clip.Right(), clip.Y, clip.Bottom())
		} else {
			lo, hi = s.within(clip.Y, clip.Bottom(), clip.X, clip.Right())
		}
		if lo > hi {
			return nil
		}
	}
	return s.walk(lo, hi, at, clip)
}

// axisStep walks a line along its major axis: n steps of dir, while the
// minor coordinate moves d in total.
type axisStep struct {
	major, minor int
	dir, n, d    int

	inc int64 // fixed-point minor increment per step
	rem int64 // d*Big - inc*n, spread over the steps
}

func newAxisStep(major, minor, dMajor, dMinor int, table *curve.SlopeTable) axisStep {
	s := axisStep{major: major, minor: minor, dir: sign(dMajor), n: abs(dMajor), d: dMinor}
	s.inc = slope(table, s.n, s.d)
	s.rem = int64(s.d)*curve.Big - s.inc*int64(s.n)
	return s
}

// start returns the accumulator at step i and the remainder numerator
// over n, so that acc + e/n is the exact fixed-point minor coordinate and
// 0 <= e < n.
func (s axisStep) start(i int) (acc, e int64) {
	acc = int64(s.minor)<<curve.SlopeShift + curve.Big/2
	if i == 0 || s.d == 0 {
		return acc, 0
	}
	n := int64(s.n)
	hi, lo := bits.Mul64(uint64(i), uint64(abs(s.d)))
	q, r := bits.Div64(hi, lo, uint64(s.n))
	whole := int64(q)<<curve.SlopeShift + (int64(r)<<curve.SlopeShift)/n
	frac := (int64(r) << curve.SlopeShift) % n
	if s.d < 0 {
		whole = -whole
		if frac > 0 {
			whole--
			frac = n - frac
		}
	}
	return acc + whole, frac
}

// within returns the step range whose major coordinate lies in
// [majLo, majHi) and whose minor coordinate may lie in [minLo, minHi).
// The minor bound is solved in floating point with a small margin; walk
// drops the few extra pixels.
func (s axisStep) within(majLo, majHi, minLo, minHi int) (lo, hi int) {
	lo, hi = 0, s.n
	if s.dir > 0 {
		lo, hi = max(lo, majLo-s.major), min(hi, majHi-1-s.major)
	} else {
		lo, hi = max(lo, s.major-(majHi-1)), min(hi, s.major-majLo)
	}
	if s.d == 0 {
		if s.minor < minLo || s.minor >= minHi {
			return 1, 0
		}
		return lo, hi
	}

	// minor(i) = floor(minor + 0.5 + i*d/n)
	at := func(m int) float64 {
		return (float64(m) - float64(s.minor) - 0.5) * float64(s.n) / float64(s.d)
	}
	a, b := at(minLo), at(minHi)
	if a > b {
		a, b = b, a
	}
	a = math.Max(math.Floor(a)-2, -1)
	b = math.Min(math.Ceil(b)+2, float64(s.n)+1)
	return max(lo, int(a)), min(hi, int(b))
}

func (s axisStep) walk(lo, hi int, at func(major, minor int) geom.Point, clip *geom.Rectangle) []geom.Point {
	n := int64(s.n)
	acc, e := s.start(lo)
	pts := make([]geom.Point, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		p := at(s.major+i*s.dir, int(acc>>curve.SlopeShift))
		if clip == nil || clip.Contains(p) {
			pts = append(pts, p)
		}
		acc += s.inc
		e += s.rem
		q := floorDiv(e, n)
		acc += q
		e -= q * n
	}
	return pts
}

// HairlineRuns merges a hairline into axis runs: horizontal runs for a
// mostly horizontal line, vertical ones otherwise.
func HairlineRuns(p0, p1 geom.Point, table *curve.SlopeTable) []AxisLine {
	return mergeRuns(Hairline(p0, p1, table), abs(p1.X-p0.X) >= abs(p1.Y-p0.Y))
}

// ClipHairlineRuns is HairlineRuns over ClipHairline.
func ClipHairlineRuns(p0, p1 geom.Point, table *curve.SlopeTable, clip geom.Rectangle) []AxisLine {
	return mergeRuns(ClipHairline(p0, p1, table, clip), abs(p1.X-p0.X) >= abs(p1.Y-p0.Y))
}

func mergeRuns(pts []geom.Point, horizontal bool) []AxisLine {
	if len(pts) == 0 {
		return nil
	}
	axisOf := func(p geom.Point) (axis, pos int) {
		if horizontal {
			return p.Y, p.X
		}
		return p.X, p.Y
	}

	var runs []AxisLine
	axis, from := axisOf(pts[0])
	to := from
	for _, p := range pts[1:] {
		a, pos := axisOf(p)
		if a == axis {
			to = pos
			continue
		}
		runs = append(runs, runBetween(axis, from, to, horizontal))
		axis, from, to = a, pos, pos
	}
	return append(runs, runBetween(axis, from, to, horizontal))
}

func runBetween(axis, from, to int, horizontal bool) AxisLine {
	if to < from {
		from, to = to, from
	}
	return NewAxisLine(axis, from, to-from, horizontal)
}

// slope returns the minor-axis increment per major step, d/n.
func slope(table *curve.SlopeTable, n, d int) int64 {
	if table == nil {
		return int64(d) * curve.Big / int64(n)
	}
	return table.Slope(n, d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
