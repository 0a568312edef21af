package geom

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Rectangle is an integer axis-aligned box. The covered pixels are the
// half-open ranges [X, X+W) and [Y, Y+H). A zero (or negative) width or
// height marks an empty rectangle.
type Rectangle struct {
	X, Y, W, H int
}

// Rect creates a Rectangle.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// RectFromPoints returns the rectangle spanned by two corners in any order.
func RectFromPoints(a, b Point) Rectangle {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rectangle {
	return Rectangle{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Image converts r to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Empty reports whether r covers no pixels.
func (r Rectangle) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Right returns the exclusive right edge.
func (r Rectangle) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rectangle) Bottom() int { return r.Y + r.H }

// Location returns the top-left corner.
func (r Rectangle) Location() Point { return Pt(r.X, r.Y) }

// Size returns the dimensions.
func (r Rectangle) Size() Size { return Size{W: r.W, H: r.H} }

// Center returns the integer centre, rounding towards the top-left.
func (r Rectangle) Center() Point { return Pt(r.X+r.W/2, r.Y+r.H/2) }

// Contains reports whether p lies inside r.
func (r Rectangle) Contains(p Point) bool {
	return p.Valid() && p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r. An empty o is
// contained in any non-empty r.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	if r.Empty() {
		return false
	}
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share at least one pixel.
func (r Rectangle) Intersects(o Rectangle) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero Rectangle when they
// do not intersect.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	if !r.Intersects(o) {
		return Rectangle{}
	}
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle covering r and o. Empty operands are
// ignored.
func (r Rectangle) Union(o Rectangle) Rectangle {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Offset moves r by (dx, dy).
func (r Rectangle) Offset(dx, dy int) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows r by dx on the left and right and dy on the top and bottom.
// Negative values shrink it; the result never has a negative size.
func (r Rectangle) Inflate(dx, dy int) Rectangle {
	r.X -= dx
	r.Y -= dy
	r.W = max(r.W+2*dx, 0)
	r.H = max(r.H+2*dy, 0)
	return r
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// RectangleF is a float axis-aligned box. Negative or non-finite dimensions
// make it invalid; zero dimensions make it empty.
type RectangleF struct {
	X, Y, W, H float32
}

// RectF creates a RectangleF.
func RectF(x, y, w, h float32) RectangleF {
	return RectangleF{X: x, Y: y, W: w, H: h}
}

// Valid reports whether every field is finite and the size is non-negative.
func (r RectangleF) Valid() bool {
	return finite(r.X) && finite(r.Y) && finite(r.W) && finite(r.H) && r.W >= 0 && r.H >= 0
}

// Empty reports whether r is invalid or has zero area.
func (r RectangleF) Empty() bool { return !r.Valid() || r.W == 0 || r.H == 0 }

// Right returns the right edge.
func (r RectangleF) Right() float32 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r RectangleF) Bottom() float32 { return r.Y + r.H }

// Center returns the centre point.
func (r RectangleF) Center() PointF { return PtF(r.X+r.W/2, r.Y+r.H/2) }

// Contains reports whether p lies inside r (edges inclusive).
func (r RectangleF) Contains(p PointF) bool {
	return p.Valid() && r.Valid() && p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether the interiors of r and o overlap.
func (r RectangleF) Intersects(o RectangleF) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero RectangleF.
func (r RectangleF) Intersect(o RectangleF) RectangleF {
	if !r.Intersects(o) {
		return RectangleF{}
	}
	x0 := math32.Max(r.X, o.X)
	y0 := math32.Max(r.Y, o.Y)
	x1 := math32.Min(r.Right(), o.Right())
	y1 := math32.Min(r.Bottom(), o.Bottom())
	return RectangleF{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle covering r and o, ignoring empty
// operands.
func (r RectangleF) Union(o RectangleF) RectangleF {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	x0 := math32.Min(r.X, o.X)
	y0 := math32.Min(r.Y, o.Y)
	x1 := math32.Max(r.Right(), o.Right())
	y1 := math32.Max(r.Bottom(), o.Bottom())
	return RectangleF{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inflate grows r by dx and dy on each side, never below zero size.
func (r RectangleF) Inflate(dx, dy float32) RectangleF {
	r.X -= dx
	r.Y -= dy
	r.W = math32.Max(r.W+2*dx, 0)
	r.H = math32.Max(r.H+2*dy, 0)
	return r
}

func (r RectangleF) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
