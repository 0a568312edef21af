package blit

import (
	"image"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/geom"
)

// Pixel is any numeric element a buffer can hold: packed colours, alpha
// planes, depth or id maps.
type Pixel interface {
	constraints.Integer | constraints.Float
}

// Buffer is a strided two-dimensional array of pixels. Element (x, y)
// lives at Pix[y*Stride+x].
type Buffer[T Pixel] struct {
	Pix    []T
	Width  int
	Height int
	Stride int
}

// NewBuffer allocates a zeroed width x height buffer.
func NewBuffer[T Pixel](width, height int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer[T]{
		Pix:    make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}, nil
}

// FromSlice wraps existing memory without copying. The caller keeps pix
// alive and must not resize it while the buffer is in use.
func FromSlice[T Pixel](pix []T, width, height, stride int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	if len(pix) < (height-1)*stride+width {
		return nil, ErrDataTooSmall
	}
	return &Buffer[T]{Pix: pix, Width: width, Height: height, Stride: stride}, nil
}

// In reports whether (x, y) addresses a pixel of b.
func (b *Buffer[T]) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// At returns the pixel at (x, y), or zero outside the buffer.
func (b *Buffer[T]) At(x, y int) T {
	if !b.In(x, y) {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// Set writes the pixel at (x, y). Writes outside the buffer are dropped.
func (b *Buffer[T]) Set(x, y int, v T) {
	if b.In(x, y) {
		b.Pix[y*b.Stride+x] = v
	}
}

// Row returns the Width pixels of row y, aliasing the buffer.
func (b *Buffer[T]) Row(y int) []T {
	i := y * b.Stride
	return b.Pix[i : i+b.Width]
}

// Clear zeroes every pixel, including stride padding.
func (b *Buffer[T]) Clear() {
	clear(b.Pix)
}

// Bounds returns the rectangle (0, 0, Width, Height).
func (b *Buffer[T]) Bounds() geom.Rectangle {
	return geom.Rect(0, 0, b.Width, b.Height)
}

// Size returns the buffer dimensions.
func (b *Buffer[T]) Size() geom.Size {
	return geom.Sz(b.Width, b.Height)
}

// Clone returns a deep copy with the same stride.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := *b
	c.Pix = slices.Clone(b.Pix)
	return &c
}

// ToImage converts a colour buffer to a non-premultiplied image.
func ToImage(b *Buffer[color.Rgba]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x, c := range b.Row(y) {
			i := img.PixOffset(x, y)
			r, g, bl, a := c.Channels()
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = bl
			img.Pix[i+3] = a
		}
	}
	return img
}

// FromImage copies any image into a new colour buffer.
func FromImage(img image.Image) (*Buffer[color.Rgba], error) {
	r := img.Bounds()
	b, err := NewBuffer[color.Rgba](r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x := range row {
			row[x] = color.FromColor(img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b, nil
}
