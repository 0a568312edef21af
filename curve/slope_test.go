package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/pixcore/geom"
)

func TestSlope(t *testing.T) {
	s, ok := Slope(geom.PtF(0, 0), geom.PtF(2, 4))
	assert.True(t, ok)
	assert.Equal(t, float32(2), s)

	s, ok = Slope(geom.PtF(3, 0), geom.PtF(3, 9))
	assert.False(t, ok, "vertical")
	assert.Zero(t, s)
}

func TestDistanceAngleMidpoint(t *testing.T) {
	a, b := geom.PtF(0, 0), geom.PtF(3, 4)
	assert.Equal(t, float32(5), Distance(a, b))
	assert.InDelta(t, 90, Angle(a, geom.PtF(0, 7)), 1e-4)
	assert.InDelta(t, 180, Angle(a, geom.PtF(-2, 0)), 1e-4)
	assert.Equal(t, geom.PtF(1.5, 2), Midpoint(a, b))
}

func TestSlopeTable(t *testing.T) {
	table := NewSlopeTable()

	tests := []struct {
		name   string
		dx, dy int
		want   int64
		delta  float64
	}{
		{"zero dx", 0, 5, 0, 0},
		{"flat", 10, 0, 0, 0},
		{"diagonal", 3, 3, Big, 3},
		{"negative dx", -4, 2, -Big / 2, 0},
		{"shallow", 8, 1, Big / 8, 0},
		{"outside table", 5000, 2500, Big / 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, table.Slope(tt.dx, tt.dy), tt.delta)
		})
	}
}

func TestSlopeTableReciprocal(t *testing.T) {
	table := NewSlopeTable()
	assert.Zero(t, table.Reciprocal(0))
	assert.Equal(t, int64(Big), table.Reciprocal(1))
	assert.Equal(t, int64(Big/3), table.Reciprocal(3))
	assert.Equal(t, int64(Big/SlopeTableSize), table.Reciprocal(SlopeTableSize))
	assert.Equal(t, int64(Big/4000), table.Reciprocal(4000))
	assert.Equal(t, int64(-Big/3), table.Reciprocal(-3))
}

func TestSlopeTableMatchesDivision(t *testing.T) {
	table := NewSlopeTable()
	for dx := 1; dx <= SlopeTableSize; dx += 37 {
		for _, dy := range []int{-dx, -1, 1, dx / 2, dx} {
			exact := float64(dy) * Big / float64(dx)
			// Truncation error grows with |dy|.
			assert.InDelta(t, exact, table.Slope(dx, dy), float64(abs(dy))+1, "dx=%d dy=%d", dx, dy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
