package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/pixcore/geom"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 geom.PointF
		want           geom.PointF
		ok             bool
	}{
		{
			name: "crossing diagonals",
			a1:   geom.PtF(0, 0), a2: geom.PtF(10, 10),
			b1: geom.PtF(0, 10), b2: geom.PtF(10, 0),
			want: geom.PtF(5, 5), ok: true,
		},
		{
			name: "shared endpoint",
			a1:   geom.PtF(0, 0), a2: geom.PtF(5, 5),
			b1: geom.PtF(5, 5), b2: geom.PtF(10, 0),
			want: geom.PtF(5, 5), ok: true,
		},
		{
			name: "touching at interior",
			a1:   geom.PtF(0, 0), a2: geom.PtF(10, 0),
			b1: geom.PtF(4, 0), b2: geom.PtF(4, 8),
			want: geom.PtF(4, 0), ok: true,
		},
		{
			name: "parallel",
			a1:   geom.PtF(0, 0), a2: geom.PtF(10, 0),
			b1: geom.PtF(0, 1), b2: geom.PtF(10, 1),
		},
		{
			name: "lines cross outside segments",
			a1:   geom.PtF(0, 0), a2: geom.PtF(1, 1),
			b1: geom.PtF(0, 10), b2: geom.PtF(10, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a1, tt.a2, tt.b1, tt.b2)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Near(tt.want, 1e-4), "got %v", got)
			} else {
				assert.False(t, got.Valid())
			}
		})
	}
}

func TestLineIntersection(t *testing.T) {
	p, ok := LineIntersection(geom.PtF(0, 0), geom.PtF(1, 1), geom.PtF(0, 10), geom.PtF(10, 0))
	assert.True(t, ok)
	assert.True(t, p.Near(geom.PtF(5, 5), 1e-4))
}

func TestIntersectionBeyondBound(t *testing.T) {
	// Nearly parallel lines meet around x = -1e6.
	_, ok := LineIntersection(geom.PtF(0, 0), geom.PtF(100, 0), geom.PtF(0, 1), geom.PtF(100, 1.0001))
	assert.False(t, ok)
}
