package blit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixcore/geom"
	"github.com/gogpu/pixcore/region"
)

func newInts(t *testing.T, w, h int, values ...int) *Buffer[int] {
	t.Helper()
	b, err := NewBuffer[int](w, h)
	require.NoError(t, err)
	copy(b.Pix, values)
	return b
}

func TestFillClipsToDestination(t *testing.T) {
	dst := newInts(t, 5, 5)
	p := Fill(dst, geom.Rect(3, 3, 10, 10), 7, Options[int]{})
	assert.Equal(t, region.NewPerimeter(3, 3, 2, 2), p)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := 0
			if x >= 3 && y >= 3 {
				want = 7
			}
			assert.Equal(t, want, dst.At(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestCopyClipsToDestination(t *testing.T) {
	src := newInts(t, 10, 10)
	Fill(src, src.Bounds(), 1, Options[int]{})
	dst := newInts(t, 5, 5)

	p := Copy(dst, 3, 3, src, src.Bounds(), Options[int]{})
	assert.Equal(t, region.NewPerimeter(3, 3, 2, 2), p)
	assert.Equal(t, 4, sum(dst.Pix))
}

func TestCopyNegativeOffset(t *testing.T) {
	src := newInts(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	dst := newInts(t, 4, 4)

	p := Copy(dst, -1, -1, src, src.Bounds(), Options[int]{})
	assert.Equal(t, region.NewPerimeter(0, 0, 2, 2), p)
	assert.Equal(t, []int{5, 6}, dst.Row(0)[:2])
	assert.Equal(t, []int{8, 9}, dst.Row(1)[:2])
	assert.Zero(t, dst.At(2, 0))
}

func TestCopyNoOp(t *testing.T) {
	src := newInts(t, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	dst := newInts(t, 3, 3)

	assert.True(t, Copy(dst, 5, 0, src, src.Bounds(), Options[int]{}).IsEmpty())
	assert.True(t, Copy(dst, 0, 0, src, geom.Rect(0, 0, 0, 3), Options[int]{}).IsEmpty())
	assert.True(t, Fill(dst, geom.Rect(0, 0, -2, 3), 1, Options[int]{}).IsEmpty())
	assert.True(t, Copy[int](nil, 0, 0, src, src.Bounds(), Options[int]{}).IsEmpty())
	assert.Zero(t, sum(dst.Pix))
}

func TestCopyBackdrop(t *testing.T) {
	src := newInts(t, 2, 2, 1, 1, 1, 1)
	dst := newInts(t, 2, 2, 0, 9, 0, 0)

	Copy(dst, 0, 0, src, src.Bounds(), Options[int]{Command: Backdrop})
	assert.Equal(t, []int{1, 9, 1, 1}, dst.Pix)
}

func TestCopyClear(t *testing.T) {
	src := newInts(t, 2, 2, 1, 1, 1, 1)
	dst := newInts(t, 3, 1, 4, 4, 4)

	p := Copy(dst, 1, 0, src, src.Bounds(), Options[int]{Command: Clear})
	assert.Equal(t, region.NewPerimeter(1, 0, 2, 1), p)
	assert.Equal(t, []int{4, 0, 0}, dst.Pix)

	dst = newInts(t, 3, 1, 4, 4, 4)
	Copy(dst, 0, 0, nil, geom.Rect(0, 0, 2, 1), Options[int]{})
	assert.Equal(t, []int{0, 0, 4}, dst.Pix, "nil source clears")
}

func TestFillCondition(t *testing.T) {
	dst := newInts(t, 5, 1, 1, 6, 3, 8, 5)
	aux, err := NewBuffer[uint32](5, 1)
	require.NoError(t, err)

	opts := Options[int]{
		When:     Condition[int]{Criteria: GreaterThan, Value: 5},
		Aux:      aux,
		AuxValue: 42,
	}
	p := Fill(dst, dst.Bounds(), 0, opts)
	assert.Equal(t, region.NewPerimeter(0, 0, 5, 1), p)
	assert.Equal(t, []int{1, 0, 3, 0, 5}, dst.Pix)
	assert.Equal(t, []uint32{0, 42, 0, 42, 0}, aux.Pix, "aux follows written pixels")
}

func TestFillFloat(t *testing.T) {
	depth, err := NewBuffer[float32](3, 3)
	require.NoError(t, err)
	Fill(depth, depth.Bounds(), 1, Options[float32]{})

	// Only overwrite where the new depth is nearer.
	opts := Options[float32]{When: Condition[float32]{Criteria: GreaterThan, Value: 0.5}}
	Fill(depth, geom.Rect(1, 1, 5, 5), 0.5, opts)
	Fill(depth, geom.Rect(0, 0, 2, 2), 0.25, Options[float32]{When: Condition[float32]{Criteria: GreaterThan, Value: 0.75}})

	assert.Equal(t, []float32{
		0.25, 0.25, 1,
		0.25, 0.5, 0.5,
		1, 0.5, 0.5,
	}, depth.Pix)
}

func TestRowsReclampShortBuffer(t *testing.T) {
	dst := newInts(t, 4, 3)
	// Break the contract: drop the last two pixels.
	dst.Pix = dst.Pix[:len(dst.Pix)-2]

	assert.NotPanics(t, func() {
		Fill(dst, dst.Bounds(), 1, Options[int]{})
	})
	assert.Equal(t, 10, sum(dst.Pix))

	src := newInts(t, 4, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	src.Pix = src.Pix[:9]
	full := newInts(t, 4, 3)
	assert.NotPanics(t, func() {
		Copy(full, 0, 0, src, geom.Rect(0, 0, 4, 3), Options[int]{})
	})
	assert.Equal(t, 9, sum(full.Pix))
}

func TestPaddedStride(t *testing.T) {
	pix := make([]int, 2*5+3)
	dst, err := FromSlice(pix, 3, 3, 5)
	require.NoError(t, err)

	Fill(dst, dst.Bounds(), 1, Options[int]{})
	assert.Equal(t, 9, sum(pix))
	assert.Zero(t, pix[3], "padding untouched")
	assert.Zero(t, pix[4])
}

func TestMulti(t *testing.T) {
	small := newInts(t, 2, 2)
	large := newInts(t, 4, 4, 3)

	ps := FillMulti([]*Buffer[int]{small, large}, geom.Rect(1, 1, 3, 3), 1, Options[int]{
		When: Condition[int]{Criteria: Equal, Value: 0},
	})
	require.Len(t, ps, 2)
	assert.Equal(t, region.NewPerimeter(1, 1, 1, 1), ps[0])
	assert.Equal(t, region.NewPerimeter(1, 1, 3, 3), ps[1])
	assert.Equal(t, 1, sum(small.Pix))
	assert.Equal(t, 3+9, sum(large.Pix))

	src := newInts(t, 1, 1, 5)
	ps = CopyMulti([]*Buffer[int]{small, nil, large}, 0, 0, src, src.Bounds(), Options[int]{})
	assert.Equal(t, []region.Perimeter{
		region.NewPerimeter(0, 0, 1, 1), region.Empty, region.NewPerimeter(0, 0, 1, 1),
	}, ps)
	assert.Equal(t, 5, small.At(0, 0))
	assert.Equal(t, 5, large.At(0, 0))
}

func sum(v []int) int {
	n := 0
	for _, x := range v {
		n += x
	}
	return n
}
