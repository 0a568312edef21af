package color

// div255 divides x by 255 using the shift approximation (x + 255) >> 8.
// For alpha products (at most 255*255) the result stays within [0, 255].
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// MulDiv255 multiplies two 8-bit values and divides by 255 without an
// integer division. MulDiv255(a, 255) == a for every a.
func MulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint16(a) * uint16(b)))
}

// Blend composites src over dst with the given alpha, returning the new
// destination value.
//
// The packed colours are blended in two lanes at once: red/blue through
// MaskRB and alpha/green through MaskAG, each as (inv*C1 + alpha*C2) >> 8
// with inv = 255 - alpha. Fast paths keep the result exact at the
// boundaries: alpha 0 keeps dst, alpha 255 or an empty dst takes src, and
// blending a colour with itself returns it unchanged.
func Blend(dst, src Rgba, alpha uint8) Rgba {
	switch {
	case alpha == 0 || dst == src:
		return dst
	case alpha == 255 || dst == Empty:
		return src
	}

	a := uint32(alpha)
	inv := 255 - a
	c1, c2 := uint32(dst), uint32(src)

	rb := ((inv*(c1&MaskRB) + a*(c2&MaskRB)) >> 8) & MaskRB
	ag := (inv*((c1&MaskAG)>>8) + a*((c2&MaskAG)>>8)) & MaskAG
	return Rgba(rb | ag)
}

// Over composites src over dst using the source's own alpha channel scaled
// by coverage.
func Over(dst, src Rgba, coverage uint8) Rgba {
	return Blend(dst, src, MulDiv255(src.A(), coverage))
}
