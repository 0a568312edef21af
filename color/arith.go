package color

// Channel arithmetic. These operate on raw 8-bit channel values: they are
// cheap and not gamma correct, and every result saturates to [0, 255] so
// no channel ever bleeds into its neighbour.

// Add returns the per-channel sum, saturating at 255.
func (c Rgba) Add(o Rgba) Rgba {
	return perChannel(c, o, func(a, b uint32) uint32 { return min(a+b, 255) })
}

// Sub returns the per-channel difference, saturating at 0.
func (c Rgba) Sub(o Rgba) Rgba {
	return perChannel(c, o, func(a, b uint32) uint32 {
		if b >= a {
			return 0
		}
		return a - b
	})
}

// Mul returns the per-channel product scaled back to 8 bits (a*b/255).
func (c Rgba) Mul(o Rgba) Rgba {
	return perChannel(c, o, func(a, b uint32) uint32 { return uint32(MulDiv255(uint8(a), uint8(b))) })
}

// Div returns the per-channel quotient a*255/b, saturating at 255. A zero
// divisor channel is replaced by 1, which saturates the result instead of
// panicking.
func (c Rgba) Div(o Rgba) Rgba {
	return perChannel(c, o, func(a, b uint32) uint32 {
		if b == 0 {
			b = 1
		}
		return min(a*255/b, 255)
	})
}

// Scale multiplies the colour channels by f, keeping alpha. Results are
// clamped to [0, 255].
func (c Rgba) Scale(f float32) Rgba {
	scale := func(v uint8) uint8 {
		s := float32(v) * f
		switch {
		case s <= 0:
			return 0
		case s >= 255:
			return 255
		}
		return uint8(s + 0.5)
	}
	return New(scale(c.R()), scale(c.G()), scale(c.B()), c.A())
}

func perChannel(c, o Rgba, f func(a, b uint32) uint32) Rgba {
	var out uint32
	for _, shift := range [4]uint{ShiftA, ShiftR, ShiftG, ShiftB} {
		a := uint32(c>>shift) & 0xFF
		b := uint32(o>>shift) & 0xFF
		out |= f(a, b) << shift
	}
	return Rgba(out)
}
