// Package color provides the packed 32-bit colour value used by every
// pixel buffer in pixcore, its channel arithmetic and blending, and a named
// colour palette.
//
// An Rgba packs 8-bit channels as A<<24 | R<<16 | G<<8 | B with straight
// (non-premultiplied) alpha. Channel accessors are shifts and masks over the
// packed value, so the packed value is the only source of truth and two
// colours are equal exactly when their packed values are.
package color

import (
	"fmt"
	stdcolor "image/color"
)

// Rgba is a packed 32-bit colour.
type Rgba uint32

// Channel layout. Every consumer shares these shifts and masks.
const (
	ShiftA = 24
	ShiftR = 16
	ShiftG = 8
	ShiftB = 0

	// MaskRB selects the red and blue lanes for two-lane blending.
	MaskRB = 0x00FF00FF
	// MaskAG selects the alpha and green lanes for two-lane blending.
	MaskAG = 0xFF00FF00
	// MaskRGB selects the colour channels without alpha.
	MaskRGB = 0x00FFFFFF
	// InvertMask is XORed into a colour to invert it; alpha is preserved.
	InvertMask = MaskRGB
)

// Common colours.
const (
	// Empty is the background value: fully transparent black. Unknown
	// palette names resolve to it.
	Empty       Rgba = 0
	Transparent Rgba = 0
	Black       Rgba = 0xFF000000
	White       Rgba = 0xFFFFFFFF
	Red         Rgba = 0xFFFF0000
	Green       Rgba = 0xFF00FF00
	Blue        Rgba = 0xFF0000FF
)

// New packs four channels.
func New(r, g, b, a uint8) Rgba {
	return Rgba(uint32(a)<<ShiftA | uint32(r)<<ShiftR | uint32(g)<<ShiftG | uint32(b)<<ShiftB)
}

// RGB packs an opaque colour.
func RGB(r, g, b uint8) Rgba { return New(r, g, b, 255) }

// R returns the red channel.
func (c Rgba) R() uint8 { return uint8(c >> ShiftR) }

// G returns the green channel.
func (c Rgba) G() uint8 { return uint8(c >> ShiftG) }

// B returns the blue channel.
func (c Rgba) B() uint8 { return uint8(c >> ShiftB) }

// A returns the alpha channel.
func (c Rgba) A() uint8 { return uint8(c >> ShiftA) }

// Channels returns all four channels.
func (c Rgba) Channels() (r, g, b, a uint8) {
	return c.R(), c.G(), c.B(), c.A()
}

// WithAlpha returns c with its alpha channel replaced.
func (c Rgba) WithAlpha(a uint8) Rgba {
	return c&MaskRGB | Rgba(a)<<ShiftA
}

// Invert flips the colour channels, keeping alpha.
func (c Rgba) Invert() Rgba { return c ^ InvertMask }

// Opaque reports whether alpha is 255.
func (c Rgba) Opaque() bool { return c.A() == 255 }

// NRGBA converts c to the standard library's straight-alpha colour.
func (c Rgba) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements image/color.Color.
func (c Rgba) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any image/color.Color.
func FromColor(c stdcolor.Color) Rgba {
	if p, ok := c.(Rgba); ok {
		return p
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return New(n.R, n.G, n.B, n.A)
}

// Model converts arbitrary colours to Rgba.
var Model = stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color { return FromColor(c) })

// String returns "#RRGGBBAA".
func (c Rgba) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R(), c.G(), c.B(), c.A())
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. The second result is false for malformed input, in which
// case Empty is returned.
func Hex(hex string) (Rgba, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return Empty, false
	}
	if !ok {
		return Empty, false
	}
	return New(uint8(r), uint8(g), uint8(b), uint8(a)), true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
