package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanEndLaw(t *testing.T) {
	for start := -3; start < 4; start++ {
		for length := 0; length < 6; length++ {
			s := NewSpan(start, length)
			assert.Equal(t, s.Start+s.Count()-1, s.End())

			for v := start; v < start+8; v++ {
				m := s
				m.SetEnd(v)
				assert.Equal(t, start, m.Start, "SetEnd must not move Start")
				assert.Equal(t, v-start+1, m.Count())
				assert.Equal(t, v, m.End())
			}
		}
	}
}

func TestSpanSetEndBeforeStart(t *testing.T) {
	s := NewSpan(10, 5)
	s.SetEnd(4)
	assert.Equal(t, 0, s.Count())
	assert.True(t, s.Empty())
	assert.Equal(t, 10, s.Start)
}

func TestSpanNegativeLength(t *testing.T) {
	assert.Equal(t, 0, NewSpan(3, -4).Count())
}

func TestSpanIntersect(t *testing.T) {
	a := SpanBetween(2, 9)
	assert.Equal(t, SpanBetween(5, 9), a.Intersect(SpanBetween(5, 20)))
	assert.True(t, a.Intersect(SpanBetween(10, 20)).Empty())
	assert.True(t, a.Contains(9))
	assert.False(t, a.Contains(10))
}

func TestSpanRows(t *testing.T) {
	s := Span{Start: 8, Length: 7, LineLength: 5}
	assert.Equal(t, []RowRun{{Row: 1, Col: 3, Count: 2}, {Row: 2, Col: 0, Count: 5}}, s.Rows())

	flat := NewSpan(4, 3)
	assert.Equal(t, []RowRun{{Row: 0, Col: 4, Count: 3}}, flat.Rows())
	assert.Nil(t, NewSpan(4, 0).Rows())

	neg := Span{Start: -2, Length: 4, LineLength: 5}
	assert.Equal(t, []RowRun{{Row: -1, Col: 3, Count: 2}, {Row: 0, Col: 0, Count: 2}}, neg.Rows())
}
