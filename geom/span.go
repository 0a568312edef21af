package geom

import "fmt"

// Span is a contiguous run of integer positions. When LineLength is
// positive the positions are linear indices into a buffer whose rows are
// LineLength wide, and the span may wrap across rows.
type Span struct {
	Start  int
	Length int

	// LineLength is the row width used to wrap the span; 0 means no wrap.
	LineLength int
	// LineBreak marks a span that ends a logical line.
	LineBreak bool
}

// NewSpan creates a span; a negative length is clamped to zero.
func NewSpan(start, length int) Span {
	return Span{Start: start, Length: max(length, 0)}
}

// SpanBetween creates the span covering start..end inclusive.
func SpanBetween(start, end int) Span {
	s := Span{Start: start}
	s.SetEnd(end)
	return s
}

// Count returns the number of positions in the span.
func (s Span) Count() int { return s.Length }

// Empty reports whether the span holds no positions.
func (s Span) Empty() bool { return s.Length <= 0 }

// End returns the last position, Start+Length-1.
func (s Span) End() int { return s.Start + s.Length - 1 }

// SetEnd moves the last position to v by recomputing Length; Start never
// changes. A v before Start leaves an empty span.
func (s *Span) SetEnd(v int) {
	s.Length = max(v-s.Start+1, 0)
}

// Contains reports whether v is one of the span's positions.
func (s Span) Contains(v int) bool {
	return s.Length > 0 && v >= s.Start && v <= s.End()
}

// Intersect returns the positions shared by s and o. The line metadata of s
// is kept.
func (s Span) Intersect(o Span) Span {
	if s.Empty() || o.Empty() {
		return Span{Start: s.Start, LineLength: s.LineLength}
	}
	r := s
	r.Start = max(s.Start, o.Start)
	r.SetEnd(min(s.End(), o.End()))
	return r
}

// Offset moves the span by d positions.
func (s Span) Offset(d int) Span {
	s.Start += d
	return s
}

// RowRun is the part of a wrapped span that falls on one row.
type RowRun struct {
	Row, Col, Count int
}

// Rows splits the span into per-row runs using LineLength. Without a
// positive LineLength the whole span is reported as row 0.
func (s Span) Rows() []RowRun {
	if s.Empty() {
		return nil
	}
	if s.LineLength <= 0 {
		return []RowRun{{Row: 0, Col: s.Start, Count: s.Length}}
	}
	var runs []RowRun
	pos, left := s.Start, s.Length
	for left > 0 {
		row, col := floorDivMod(pos, s.LineLength)
		n := min(s.LineLength-col, left)
		runs = append(runs, RowRun{Row: row, Col: col, Count: n})
		pos += n
		left -= n
	}
	return runs
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d]", s.Start, s.End())
}

func floorDivMod(a, b int) (int, int) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
