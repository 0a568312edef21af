package blit

import "slices"

// Axis selects the direction of Flip and Mirror.
type Axis uint8

const (
	// Horizontal swaps left and right: columns move about the vertical
	// centre line.
	Horizontal Axis = iota
	// Vertical swaps top and bottom.
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Resize returns a width x height buffer holding the overlap of b at the
// origin; the rest is zero. b is not modified.
func Resize[T Pixel](b *Buffer[T], width, height int) (*Buffer[T], error) {
	out, err := NewBuffer[T](width, height)
	if err != nil {
		return nil, err
	}
	if b != nil {
		Copy(out, 0, 0, b, b.Bounds(), Options[T]{})
	}
	return out, nil
}

// Flip reverses b in place along axis.
func Flip[T Pixel](b *Buffer[T], axis Axis) {
	if axis == Horizontal {
		for y := 0; y < b.Height; y++ {
			slices.Reverse(b.Row(y))
		}
		return
	}
	tmp := make([]T, b.Width)
	for y := 0; y < b.Height/2; y++ {
		top, bottom := b.Row(y), b.Row(b.Height-1-y)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Mirror makes b symmetric about its centre along axis by copying one half
// reflected over the other. keepFirst keeps the left (or top) half;
// otherwise the right (or bottom) half wins. The middle row or column of
// an odd size is left alone.
func Mirror[T Pixel](b *Buffer[T], axis Axis, keepFirst bool) {
	if axis == Horizontal {
		w := b.Width
		for y := 0; y < b.Height; y++ {
			row := b.Row(y)
			for x := 0; x < w/2; x++ {
				if keepFirst {
					row[w-1-x] = row[x]
				} else {
					row[x] = row[w-1-x]
				}
			}
		}
		return
	}
	h := b.Height
	for y := 0; y < h/2; y++ {
		if keepFirst {
			copy(b.Row(h-1-y), b.Row(y))
		} else {
			copy(b.Row(y), b.Row(h-1-y))
		}
	}
}
