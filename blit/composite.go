package blit

import (
	"math"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/geom"
	"github.com/gogpu/pixcore/region"
	"github.com/gogpu/pixcore/scan"
)

// colorPicker implements the colour write decision on top of a source
// colour lookup.
func colorPicker(opts *Options[color.Rgba], source func(si int) color.Rgba) picker[color.Rgba] {
	cmd := opts.Command
	global := opts.alpha()
	mask := opts.Mask

	return func(cur color.Rgba, si, sx, sy int) (color.Rgba, bool) {
		if cmd.Has(Clear) {
			if cmd.Has(InvertColor) {
				return cur.Invert(), true
			}
			if cmd.Has(Backdrop) && cur != color.Empty {
				return cur, false
			}
			return color.Empty, true
		}

		s := source(si)
		if cmd.Has(InvertColor) {
			s = s.Invert()
		}
		if cmd.Has(Opaque) {
			if cmd.Has(Backdrop) && cur != color.Empty {
				return cur, false
			}
			return s, true
		}

		a := color.MulDiv255(s.A(), global)
		if mask != nil {
			a = color.MulDiv255(a, mask.At(sx, sy))
		}
		if cmd.Has(Backdrop) {
			a = color.MulDiv255(a, 255-cur.A())
		}
		if a == 0 {
			return cur, false
		}
		return color.Blend(cur, s, a), true
	}
}

// Composite draws area of src at (dx, dy) in dst.
//
// Without Opaque each pixel is blended with the source alpha, scaled by
// the coverage mask and the global alpha; with Backdrop that alpha is
// further scaled by the inverted destination alpha, so the source only
// shows where the destination is still transparent. A nil src clears the
// area moved to (dx, dy).
func Composite(dst *Buffer[color.Rgba], dx, dy int, src *Buffer[color.Rgba], area geom.Rectangle, opts Options[color.Rgba]) region.Perimeter {
	if dst == nil {
		return region.Empty
	}
	if src == nil {
		opts.Command |= Clear
		return FillColor(dst, geom.Rect(dx, dy, area.W, area.H), color.Empty, opts)
	}
	c := region.CorrectRegion(area, src.Width, src.Height, dx, dy, dst.Width, dst.Height)
	pick := colorPicker(&opts, func(si int) color.Rgba { return src.Pix[si] })
	return apply(dst, c, len(src.Pix), src.Stride, &opts, pick)
}

// FillColor floods area of dst with c under the colour write rules of
// Composite. A Mask is addressed relative to the area origin.
func FillColor(dst *Buffer[color.Rgba], area geom.Rectangle, c color.Rgba, opts Options[color.Rgba]) region.Perimeter {
	if dst == nil {
		return region.Empty
	}
	clip := region.CorrectFill(area, dst.Width, dst.Height)
	pick := colorPicker(&opts, func(int) color.Rgba { return c })
	return apply(dst, clip, math.MaxInt, area.W, &opts, pick)
}

// CompositeMulti runs the same Composite into every destination.
func CompositeMulti(dsts []*Buffer[color.Rgba], dx, dy int, src *Buffer[color.Rgba], area geom.Rectangle, opts Options[color.Rgba]) []region.Perimeter {
	out := make([]region.Perimeter, len(dsts))
	for i, dst := range dsts {
		out[i] = Composite(dst, dx, dy, src, area, opts)
	}
	return out
}

// FillSpan fills one scanline run with c. The run's alpha scales the
// global alpha.
func FillSpan(dst *Buffer[color.Rgba], run scan.Run, c color.Rgba, opts Options[color.Rgba]) region.Perimeter {
	if run.Alpha == 0 || run.Span.Empty() {
		return region.Empty
	}
	opts.Alpha = color.MulDiv255(opts.alpha(), run.Alpha)
	return FillColor(dst, run.Rect(), c, opts)
}

// FillLine fills every span of l with c and returns the union of the
// covered regions.
func FillLine(dst *Buffer[color.Rgba], l scan.Line, c color.Rgba, opts Options[color.Rgba]) region.Perimeter {
	p := region.Empty
	for _, run := range scan.Spans(l) {
		p = p.Union(FillSpan(dst, run, c, opts))
	}
	return p
}

// FillPolygon scan-fills points with c using the even-odd rule. Only the
// rows of dst are scanned.
func FillPolygon(dst *Buffer[color.Rgba], points []geom.PointF, c color.Rgba, opts Options[color.Rgba]) region.Perimeter {
	if dst == nil {
		return region.Empty
	}
	p := region.Empty
	for _, l := range scan.ClipPolygon(points, dst.Bounds()) {
		p = p.Union(FillLine(dst, l, c, opts))
	}
	return p
}
