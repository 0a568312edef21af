package geom

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rectangle
		want Rectangle
	}{
		{"overlap", Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(5, 5, 5, 5)},
		{"contained", Rect(0, 0, 10, 10), Rect(2, 3, 4, 5), Rect(2, 3, 4, 5)},
		{"touching edge", Rect(0, 0, 10, 10), Rect(10, 0, 5, 5), Rectangle{}},
		{"disjoint", Rect(0, 0, 2, 2), Rect(5, 5, 2, 2), Rectangle{}},
		{"empty operand", Rect(0, 0, 0, 10), Rect(0, 0, 10, 10), Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersect(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersect(tt.a))
		})
	}
}

func TestRectangleIntersectProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := Rect(rng.Intn(40)-20, rng.Intn(40)-20, rng.Intn(20), rng.Intn(20))
		b := Rect(rng.Intn(40)-20, rng.Intn(40)-20, rng.Intn(20), rng.Intn(20))

		ab := a.Intersect(b)
		if ab.Empty() == a.Intersects(b) {
			t.Fatalf("Intersect(%v,%v)=%v but Intersects=%v", a, b, ab, a.Intersects(b))
		}
		if ab != b.Intersect(a) {
			t.Fatalf("Intersect not commutative for %v, %v", a, b)
		}
		if !ab.Empty() && (!a.ContainsRect(ab) || !b.ContainsRect(ab)) {
			t.Fatalf("intersection %v escapes %v or %v", ab, a, b)
		}
	}
}

func TestRectangleUnion(t *testing.T) {
	assert.Equal(t, Rect(0, 0, 15, 15), Rect(0, 0, 10, 10).Union(Rect(5, 5, 10, 10)))
	assert.Equal(t, Rect(5, 5, 1, 1), Rectangle{}.Union(Rect(5, 5, 1, 1)))
	assert.Equal(t, Rect(5, 5, 1, 1), Rect(5, 5, 1, 1).Union(Rect(0, 0, 0, 9)))
}

func TestRectangleQueries(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	assert.True(t, r.Contains(Pt(10, 20)))
	assert.False(t, r.Contains(Pt(40, 20)))
	assert.False(t, r.Contains(InvalidPoint))
	assert.Equal(t, Pt(25, 40), r.Center())
	assert.Equal(t, Rect(8, 17, 34, 46), r.Inflate(2, 3))
	assert.Equal(t, Rect(30, 45, 0, 0), r.Inflate(-20, -25))
	assert.Equal(t, image.Rect(10, 20, 40, 60), r.Image())
	assert.Equal(t, r, FromImage(r.Image()))
	assert.Equal(t, Rect(1, 2, 3, 4), RectFromPoints(Pt(4, 6), Pt(1, 2)))
}

func TestRectangleFValidity(t *testing.T) {
	assert.True(t, RectF(0, 0, 1, 1).Valid())
	assert.False(t, RectF(0, 0, -1, 1).Valid())
	assert.True(t, RectF(0, 0, 0, 1).Empty())

	a := RectF(0, 0, 10, 10)
	b := RectF(2.5, 2.5, 10, 10)
	assert.Equal(t, RectF(2.5, 2.5, 7.5, 7.5), a.Intersect(b))
	assert.Equal(t, RectF(0, 0, 12.5, 12.5), a.Union(b))
	assert.True(t, a.Contains(PtF(10, 10)))
	assert.Equal(t, PtF(5, 5), a.Center())
}
