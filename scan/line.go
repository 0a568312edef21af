package scan

import (
	"fmt"
	"slices"

	"github.com/gogpu/pixcore/geom"
)

// Line is a run of pixel positions along one scanline or column.
type Line interface {
	// AxisValue is the row of a horizontal line or the column of a
	// vertical one.
	AxisValue() int
	IsHorizontal() bool
	// Spans returns the covered positions along the line, in order.
	Spans() []geom.Span
	// Opacity is the coverage applied to every covered pixel.
	Opacity() uint8
}

// AxisLine is one run from Start to End inclusive at a fixed axis value.
type AxisLine struct {
	Axis       int
	Start      int
	End        int
	Horizontal bool

	// Draw is false for runs kept only for bookkeeping.
	Draw bool
	// Alpha fades anti-aliased edge runs; 255 is fully covered.
	Alpha uint8
}

// NewAxisLine creates a drawn, opaque run from start covering |stretch|
// further positions.
func NewAxisLine(axis, start, stretch int, horizontal bool) AxisLine {
	if stretch < 0 {
		stretch = -stretch
	}
	return AxisLine{
		Axis:       axis,
		Start:      start,
		End:        start + stretch,
		Horizontal: horizontal,
		Draw:       true,
		Alpha:      255,
	}
}

// WithAlpha returns a copy of l with the given coverage.
func (l AxisLine) WithAlpha(alpha uint8) AxisLine {
	l.Alpha = alpha
	return l
}

// Len returns the number of positions covered.
func (l AxisLine) Len() int { return l.End - l.Start + 1 }

func (l AxisLine) AxisValue() int     { return l.Axis }
func (l AxisLine) IsHorizontal() bool { return l.Horizontal }
func (l AxisLine) Opacity() uint8     { return l.Alpha }

// Spans returns the single span of a drawn line, or nil.
func (l AxisLine) Spans() []geom.Span {
	if !l.Draw || l.Alpha == 0 {
		return nil
	}
	return []geom.Span{geom.SpanBetween(l.Start, l.End)}
}

func (l AxisLine) String() string {
	dir := "v"
	if l.Horizontal {
		dir = "h"
	}
	return fmt.Sprintf("%s%d[%d..%d]", dir, l.Axis, l.Start, l.End)
}

// OddEvenLine is a sorted set of edge crossings on one line. Entries 2k
// and 2k+1 bound a filled half-open interval [v[2k], v[2k+1]).
type OddEvenLine struct {
	Axis       int
	Horizontal bool

	values []int
}

// NewOddEvenLine copies and sorts values. A single crossing is doubled
// into a zero-length pair. Empty input gives an empty line; callers check
// Count before indexing.
func NewOddEvenLine(axis int, horizontal bool, values ...int) OddEvenLine {
	var v []int
	switch len(values) {
	case 0:
		v = make([]int, 0)
	case 1:
		v = []int{values[0], values[0]}
	default:
		v = slices.Clone(values)
		slices.Sort(v)
	}
	return OddEvenLine{Axis: axis, Horizontal: horizontal, values: v}
}

// Count returns the number of crossings.
func (l OddEvenLine) Count() int { return len(l.values) }

// At returns crossing i. It panics when i is out of range.
func (l OddEvenLine) At(i int) int { return l.values[i] }

// Values returns a copy of the sorted crossings.
func (l OddEvenLine) Values() []int { return slices.Clone(l.values) }

// Pairs returns the fill intervals, including zero-length ones. An
// unmatched last crossing is ignored.
func (l OddEvenLine) Pairs() []geom.Span {
	if len(l.values) < 2 {
		return nil
	}
	out := make([]geom.Span, 0, len(l.values)/2)
	for i := 0; i+1 < len(l.values); i += 2 {
		out = append(out, geom.NewSpan(l.values[i], l.values[i+1]-l.values[i]))
	}
	return out
}

func (l OddEvenLine) AxisValue() int     { return l.Axis }
func (l OddEvenLine) IsHorizontal() bool { return l.Horizontal }
func (l OddEvenLine) Opacity() uint8     { return 255 }

// Spans returns the non-empty fill intervals.
func (l OddEvenLine) Spans() []geom.Span {
	pairs := l.Pairs()
	out := pairs[:0]
	for _, s := range pairs {
		if !s.Empty() {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Run is one span of a line, positioned in buffer coordinates.
type Run struct {
	Axis       int
	Horizontal bool
	Span       geom.Span
	Alpha      uint8
}

// Rect returns the one pixel thick rectangle covered by the run.
func (r Run) Rect() geom.Rectangle {
	if r.Horizontal {
		return geom.Rect(r.Span.Start, r.Axis, r.Span.Count(), 1)
	}
	return geom.Rect(r.Axis, r.Span.Start, 1, r.Span.Count())
}

// Spans flattens lines into runs, skipping empty and undrawn lines.
func Spans(lines ...Line) []Run {
	var out []Run
	for _, l := range lines {
		if l == nil {
			continue
		}
		for _, s := range l.Spans() {
			out = append(out, Run{
				Axis:       l.AxisValue(),
				Horizontal: l.IsHorizontal(),
				Span:       s,
				Alpha:      l.Opacity(),
			})
		}
	}
	return out
}
