package geom

import "fmt"

// Size is an integer width/height pair.
type Size struct {
	W, H int
}

// Sz creates a Size.
func Sz(w, h int) Size { return Size{W: w, H: h} }

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Area returns W*H, or 0 for an invalid size.
func (s Size) Area() int {
	if !s.Valid() {
		return 0
	}
	return s.W * s.H
}

// Add returns the component-wise sum.
func (s Size) Add(o Size) Size { return Size{W: s.W + o.W, H: s.H + o.H} }

// Sub returns the component-wise difference.
func (s Size) Sub(o Size) Size { return Size{W: s.W - o.W, H: s.H - o.H} }

// Mul returns the component-wise product.
func (s Size) Mul(o Size) Size { return Size{W: s.W * o.W, H: s.H * o.H} }

// Div returns the component-wise quotient; zero divisors are replaced by 1.
func (s Size) Div(o Size) Size {
	return Size{W: s.W / safeDivisor(o.W), H: s.H / safeDivisor(o.H)}
}

// Mod returns the component-wise remainder; zero divisors are replaced by 1.
func (s Size) Mod(o Size) Size {
	return Size{W: s.W % safeDivisor(o.W), H: s.H % safeDivisor(o.H)}
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// SizeF is a float width/height pair.
type SizeF struct {
	W, H float32
}

// SzF creates a SizeF.
func SzF(w, h float32) SizeF { return SizeF{W: w, H: h} }

// Valid reports whether both dimensions are positive and finite.
func (s SizeF) Valid() bool {
	return finite(s.W) && finite(s.H) && s.W > 0 && s.H > 0
}

// Add returns the component-wise sum.
func (s SizeF) Add(o SizeF) SizeF { return SizeF{W: s.W + o.W, H: s.H + o.H} }

// Sub returns the component-wise difference.
func (s SizeF) Sub(o SizeF) SizeF { return SizeF{W: s.W - o.W, H: s.H - o.H} }

// Mul returns the component-wise product.
func (s SizeF) Mul(o SizeF) SizeF { return SizeF{W: s.W * o.W, H: s.H * o.H} }

// Div returns the component-wise quotient; zero divisors are replaced by 1.
func (s SizeF) Div(o SizeF) SizeF {
	return SizeF{W: s.W / safeDivisorF(o.W), H: s.H / safeDivisorF(o.H)}
}

func (s SizeF) String() string { return fmt.Sprintf("%gx%g", s.W, s.H) }
