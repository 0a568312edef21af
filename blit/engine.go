package blit

import (
	"math"

	"github.com/gogpu/pixcore/geom"
	"github.com/gogpu/pixcore/region"
)

// rows visits a clip one row at a time. di and si are the linear indices
// of the row start in destination and source; n is the row width after
// re-clamping against the remaining lengths. Fills pass math.MaxInt as the
// source length.
func rows(c region.Clip, dstLen, dstStride, srcLen, srcStride int, visit func(y, di, si, n int)) {
	if c.Empty() {
		return
	}
	di, si := c.DstIndex(dstStride), c.SrcIndex(srcStride)
	for y := 0; y < c.H; y++ {
		n := min(c.W, dstLen-di, srcLen-si)
		if n <= 0 {
			return
		}
		visit(y, di, si, n)
		di += dstStride
		si += srcStride
	}
}

// picker decides the value of one destination pixel. si indexes the source
// (or the virtual source of a fill); (sx, sy) are its coordinates. It
// returns false to leave the pixel untouched.
type picker[T Pixel] func(cur T, si, sx, sy int) (T, bool)

func apply[T Pixel](dst *Buffer[T], c region.Clip, srcLen, srcStride int, opts *Options[T], pick picker[T]) region.Perimeter {
	rows(c, len(dst.Pix), dst.Stride, srcLen, srcStride, func(y, di, si, n int) {
		row := dst.Pix[di : di+n]
		for k, cur := range row {
			if !opts.When.Match(cur) {
				continue
			}
			v, ok := pick(cur, si+k, c.SrcX+k, c.SrcY+y)
			if !ok {
				continue
			}
			row[k] = v
			opts.touch(c.DstX+k, c.DstY+y)
		}
	})
	return c.Perimeter()
}

func valuePicker[T Pixel](cmd Command, value func(si int) T) picker[T] {
	backdrop, clr := cmd.Has(Backdrop), cmd.Has(Clear)
	return func(cur T, si, _, _ int) (T, bool) {
		if backdrop && cur != 0 {
			return cur, false
		}
		if clr {
			return 0, true
		}
		return value(si), true
	}
}

// Copy copies area of src to (dx, dy) in dst and returns the destination
// region it covered.
//
// Backdrop restricts writes to zero destination pixels and Clear writes
// zero instead of the source; a nil src behaves like Clear over the area
// moved to (dx, dy). The When condition gates every write.
func Copy[T Pixel](dst *Buffer[T], dx, dy int, src *Buffer[T], area geom.Rectangle, opts Options[T]) region.Perimeter {
	if dst == nil {
		return region.Empty
	}
	if src == nil {
		opts.Command |= Clear
		return Fill(dst, geom.Rect(dx, dy, area.W, area.H), 0, opts)
	}
	c := region.CorrectRegion(area, src.Width, src.Height, dx, dy, dst.Width, dst.Height)
	pick := valuePicker(opts.Command, func(si int) T { return src.Pix[si] })
	return apply(dst, c, len(src.Pix), src.Stride, &opts, pick)
}

// Fill floods area of dst with value.
func Fill[T Pixel](dst *Buffer[T], area geom.Rectangle, value T, opts Options[T]) region.Perimeter {
	if dst == nil {
		return region.Empty
	}
	c := region.CorrectFill(area, dst.Width, dst.Height)
	pick := valuePicker(opts.Command, func(int) T { return value })
	return apply(dst, c, math.MaxInt, area.W, &opts, pick)
}

// CopyMulti runs the same Copy into every destination. Each destination
// is clipped and gated on its own contents.
func CopyMulti[T Pixel](dsts []*Buffer[T], dx, dy int, src *Buffer[T], area geom.Rectangle, opts Options[T]) []region.Perimeter {
	out := make([]region.Perimeter, len(dsts))
	for i, dst := range dsts {
		out[i] = Copy(dst, dx, dy, src, area, opts)
	}
	return out
}

// FillMulti runs the same Fill into every destination.
func FillMulti[T Pixel](dsts []*Buffer[T], area geom.Rectangle, value T, opts Options[T]) []region.Perimeter {
	out := make([]region.Perimeter, len(dsts))
	for i, dst := range dsts {
		out[i] = Fill(dst, area, value, opts)
	}
	return out
}
