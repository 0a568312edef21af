package region

import "github.com/gogpu/pixcore/geom"

// Clip is the authoritative result of CorrectRegion: where to read, where
// to write, and how many columns and rows to process. A Clip with a zero
// width or height means there is nothing to do.
type Clip struct {
	SrcX, SrcY int
	DstX, DstY int
	W, H       int
}

// Empty reports whether the clip selects no pixels.
func (c Clip) Empty() bool { return c.W <= 0 || c.H <= 0 }

// SrcIndex returns the linear index of the first source pixel for a source
// with the given row stride.
func (c Clip) SrcIndex(stride int) int { return c.SrcY*stride + c.SrcX }

// DstIndex returns the linear index of the first destination pixel.
func (c Clip) DstIndex(stride int) int { return c.DstY*stride + c.DstX }

// Perimeter returns the destination area covered by the clip.
func (c Clip) Perimeter() Perimeter {
	if c.Empty() {
		return Empty
	}
	return NewPerimeter(c.DstX, c.DstY, c.W, c.H)
}

// CorrectRegion reconciles a proposed copy with the buffers involved.
//
// area is the block to copy in source coordinates; srcW and srcH bound the
// source; the block lands at (dstX, dstY) in a dstW x dstH destination. The
// steps are:
//
//  1. fold negative source or destination offsets into a reduced size,
//  2. clamp the size to the source extent,
//  3. clamp the right and bottom edges to the source and destination bounds.
//
// The result never has a negative width or height, and DstX+W <= dstW and
// DstY+H <= dstH always hold. When nothing survives the zero Clip is
// returned; callers treat it as a no-op, not an error.
func CorrectRegion(area geom.Rectangle, srcW, srcH, dstX, dstY, dstW, dstH int) Clip {
	x, y, w, h := area.X, area.Y, area.W, area.H

	if x < 0 {
		w += x
		dstX -= x
		x = 0
	}
	if y < 0 {
		h += y
		dstY -= y
		y = 0
	}
	if dstX < 0 {
		w += dstX
		x -= dstX
		dstX = 0
	}
	if dstY < 0 {
		h += dstY
		y -= dstY
		dstY = 0
	}

	w = min(w, srcW)
	h = min(h, srcH)

	if x+w > srcW {
		w = srcW - x
	}
	if y+h > srcH {
		h = srcH - y
	}
	if dstX+w > dstW {
		w = dstW - dstX
	}
	if dstY+h > dstH {
		h = dstH - dstY
	}

	if w <= 0 || h <= 0 {
		return Clip{}
	}
	return Clip{SrcX: x, SrcY: y, DstX: dstX, DstY: dstY, W: w, H: h}
}

// CorrectFill clips a constant-value fill of area into a dstW x dstH
// destination. It is CorrectRegion with a virtual source exactly as large
// as the fill.
func CorrectFill(area geom.Rectangle, dstW, dstH int) Clip {
	if area.Empty() {
		return Clip{}
	}
	return CorrectRegion(geom.Rect(0, 0, area.W, area.H), area.W, area.H, area.X, area.Y, dstW, dstH)
}
