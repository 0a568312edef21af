package curve

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore/geom"
)

// ConicKind classifies a conic by its discriminant B²-4AC.
type ConicKind uint8

const (
	// ConicEllipse has a negative discriminant; the only renderable kind.
	ConicEllipse ConicKind = iota
	// ConicParabola has a zero discriminant.
	ConicParabola
	// ConicHyperbola has a positive discriminant.
	ConicHyperbola
	// ConicDegenerate marks control points that do not determine a curve.
	ConicDegenerate
)

func (k ConicKind) String() string {
	switch k {
	case ConicEllipse:
		return "Ellipse"
	case ConicParabola:
		return "Parabola"
	case ConicHyperbola:
		return "Hyperbola"
	case ConicDegenerate:
		return "Degenerate"
	default:
		return fmt.Sprintf("ConicKind(%d)", k)
	}
}

// Conic is the analytic description of an ellipse, arc or pie.
//
// Width and Height are the full axis lengths before rotation; Rotation
// turns the axes clockwise on screen, in degrees. StartAngle and EndAngle
// are parametric angles in degrees with EndAngle >= StartAngle; a sweep of
// 360 or more is a full ellipse. Coefficients holds A..F of
// Ax²+Bxy+Cy²+Dx+Ey+F=0 in screen coordinates.
type Conic struct {
	Center     geom.PointF
	Width      float32
	Height     float32
	StartAngle float32
	EndAngle   float32
	Rotation   float32
	Kind       ConicKind

	Coefficients [6]float64
}

// NewConic builds an ellipse arc from its unrotated bounds. Equal start and
// end angles select the full ellipse. An end before the start is moved a
// whole turn forward.
func NewConic(bounds geom.RectangleF, start, end, rotation float32) Conic {
	if start == end {
		end = start + 360
	}
	for end < start {
		end += 360
	}
	c := Conic{
		Center:     bounds.Center(),
		Width:      bounds.W,
		Height:     bounds.H,
		StartAngle: start,
		EndAngle:   end,
		Rotation:   rotation,
		Kind:       ConicEllipse,
	}
	if !bounds.Valid() || bounds.Empty() {
		c.Kind = ConicDegenerate
		return c
	}
	c.Coefficients = ellipseCoefficients(
		float64(c.Center.X), float64(c.Center.Y),
		float64(c.Width)/2, float64(c.Height)/2,
		float64(rotation)*math.Pi/180,
	)
	return c
}

// Renderable reports whether the conic is an ellipse with positive axes.
func (c Conic) Renderable() bool {
	return c.Kind == ConicEllipse && c.Width > 0 && c.Height > 0
}

// Full reports whether the arc covers the whole ellipse.
func (c Conic) Full() bool { return c.EndAngle-c.StartAngle >= 360 }

// Sweep returns the arc length in degrees, capped at 360.
func (c Conic) Sweep() float32 { return math32.Min(c.EndAngle-c.StartAngle, 360) }

// Point returns the point at parametric angle degrees.
func (c Conic) Point(degrees float32) geom.PointF {
	t := degrees * math32.Pi / 180
	st, ct := math32.Sincos(t)
	lx, ly := c.Width/2*ct, c.Height/2*st
	sr, cr := math32.Sincos(c.Rotation * math32.Pi / 180)
	return geom.PtF(c.Center.X+lx*cr-ly*sr, c.Center.Y+lx*sr+ly*cr)
}

// AngleOf returns the parametric angle of p in [0, 360).
func (c Conic) AngleOf(p geom.PointF) float32 {
	x, y := c.local(p)
	a := math32.Atan2(y/(c.Height/2), x/(c.Width/2)) * 180 / math32.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// Points samples the arc every step degrees, always including both ends.
// A non-positive step defaults to one degree.
func (c Conic) Points(step float32) []geom.PointF {
	if !c.Renderable() {
		return nil
	}
	if step <= 0 {
		step = 1
	}
	sweep := c.Sweep()
	n := int(math32.Ceil(sweep / step))
	out := make([]geom.PointF, 0, n+1)
	for i := 0; i <= n; i++ {
		a := math32.Min(float32(i)*step, sweep)
		out = append(out, c.Point(c.StartAngle+a))
	}
	if c.Full() && len(out) > 1 {
		out = out[:len(out)-1]
	}
	return out
}

// Pie returns the arc closed through the centre.
func (c Conic) Pie(step float32) []geom.PointF {
	pts := c.Points(step)
	if pts == nil {
		return nil
	}
	if c.Full() {
		return pts
	}
	return append([]geom.PointF{c.Center}, pts...)
}

// Contains reports whether p lies inside the full ellipse.
func (c Conic) Contains(p geom.PointF) bool {
	if !c.Renderable() || !p.Valid() {
		return false
	}
	x, y := c.local(p)
	a, b := c.Width/2, c.Height/2
	return (x*x)/(a*a)+(y*y)/(b*b) <= 1
}

// Bounds returns the axis-aligned box around the full rotated ellipse.
func (c Conic) Bounds() geom.RectangleF {
	if !c.Renderable() {
		return geom.RectangleF{}
	}
	a, b := c.Width/2, c.Height/2
	sr, cr := math32.Sincos(c.Rotation * math32.Pi / 180)
	hw := math32.Sqrt(a*a*cr*cr + b*b*sr*sr)
	hh := math32.Sqrt(a*a*sr*sr + b*b*cr*cr)
	return geom.RectF(c.Center.X-hw, c.Center.Y-hh, 2*hw, 2*hh)
}

// Eval evaluates Ax²+Bxy+Cy²+Dx+Ey+F at p. It is zero on the curve.
func (c Conic) Eval(p geom.PointF) float64 {
	k := c.Coefficients
	x, y := float64(p.X), float64(p.Y)
	return k[0]*x*x + k[1]*x*y + k[2]*y*y + k[3]*x + k[4]*y + k[5]
}

func (c Conic) local(p geom.PointF) (float32, float32) {
	dx, dy := p.X-c.Center.X, p.Y-c.Center.Y
	sr, cr := math32.Sincos(c.Rotation * math32.Pi / 180)
	return dx*cr + dy*sr, -dx*sr + dy*cr
}

// FitConic solves the general conic through five points.
//
// The coefficients are the null vector of the 5x6 design matrix, taken
// from its signed 5x5 minors after centring and scaling the points for
// conditioning. The discriminant B²-4AC classifies the curve. Only an
// ellipse yields dimensions: for a parabola or hyperbola the returned
// Conic carries Kind and Coefficients and the error is ErrNotEllipse.
func FitConic(p [5]geom.PointF) (Conic, error) {
	bad := Conic{Kind: ConicDegenerate}

	var mx, my float64
	for _, q := range p {
		if !q.Valid() {
			return bad, ErrDegenerate
		}
		mx += float64(q.X)
		my += float64(q.Y)
	}
	mx /= 5
	my /= 5
	var s float64
	for _, q := range p {
		s += math.Hypot(float64(q.X)-mx, float64(q.Y)-my)
	}
	s /= 5
	if s == 0 {
		return bad, ErrDegenerate
	}

	var rows [5][6]float64
	for i, q := range p {
		x := (float64(q.X) - mx) / s
		y := (float64(q.Y) - my) / s
		rows[i] = [6]float64{x * x, x * y, y * y, x, y, 1}
	}

	var k [6]float64
	var norm float64
	for j := 0; j < 6; j++ {
		var m [5][5]float64
		for i := 0; i < 5; i++ {
			col := 0
			for jj := 0; jj < 6; jj++ {
				if jj == j {
					continue
				}
				m[i][col] = rows[i][jj]
				col++
			}
		}
		d := det5(m)
		if j%2 == 1 {
			d = -d
		}
		k[j] = d
		norm += d * d
	}
	norm = math.Sqrt(norm)
	if norm < 1e-12 {
		return bad, ErrDegenerate
	}
	for j := range k {
		k[j] /= norm
	}

	c := Conic{StartAngle: 0, EndAngle: 360, Coefficients: denormalize(k, mx, my, s)}
	A, B, C, D, E, F := k[0], k[1], k[2], k[3], k[4], k[5]

	disc := B*B - 4*A*C
	switch {
	case math.Abs(disc) <= 1e-9*(A*A+B*B+C*C):
		c.Kind = ConicParabola
		return c, ErrNotEllipse
	case disc > 0:
		c.Kind = ConicHyperbola
		return c, ErrNotEllipse
	}

	den := -disc
	x0 := (B*E - 2*C*D) / den
	y0 := (B*D - 2*A*E) / den
	f0 := F + (D*x0+E*y0)/2

	theta := 0.5 * math.Atan2(B, A-C)
	sn, cs := math.Sincos(theta)
	lx := A*cs*cs + B*sn*cs + C*sn*sn
	ly := A*sn*sn - B*sn*cs + C*cs*cs
	a2, b2 := -f0/lx, -f0/ly
	if !(a2 > 0) || !(b2 > 0) {
		c.Kind = ConicDegenerate
		return c, ErrDegenerate
	}
	ra, rb := math.Sqrt(a2), math.Sqrt(b2)

	// Keep the rotation within (-45°, 45°] by swapping the axes.
	switch {
	case theta > math.Pi/4:
		theta -= math.Pi / 2
		ra, rb = rb, ra
	case theta <= -math.Pi/4:
		theta += math.Pi / 2
		ra, rb = rb, ra
	}

	c.Kind = ConicEllipse
	c.Center = geom.PtF(float32(x0*s+mx), float32(y0*s+my))
	c.Width = float32(2 * ra * s)
	c.Height = float32(2 * rb * s)
	c.Rotation = float32(theta * 180 / math.Pi)
	return c, nil
}

// FitArc fits the ellipse through five points and limits it to the arc
// running from p[0] to p[4] through p[2].
func FitArc(p [5]geom.PointF) (Conic, error) {
	c, err := FitConic(p)
	if err != nil {
		return c, err
	}
	s, m, e := c.AngleOf(p[0]), c.AngleOf(p[2]), c.AngleOf(p[4])
	if sweepTo(s, m) <= sweepTo(s, e) {
		c.StartAngle, c.EndAngle = s, s+sweepTo(s, e)
	} else {
		c.StartAngle, c.EndAngle = e, e+sweepTo(e, s)
	}
	return c, nil
}

// FitCircle returns the circle through three points.
func FitCircle(a, b, c geom.PointF) (Conic, error) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-9 || !a.Valid() || !b.Valid() || !c.Valid() {
		return Conic{Kind: ConicDegenerate}, ErrDegenerate
	}
	a2, b2, c2 := ax*ax+ay*ay, bx*bx+by*by, cx*cx+cy*cy
	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	r := float32(math.Hypot(ax-ux, ay-uy))

	center := geom.PtF(float32(ux), float32(uy))
	return NewConic(geom.RectF(center.X-r, center.Y-r, 2*r, 2*r), 0, 360, 0), nil
}

// FitPoints dispatches on the number of control points: three fit a
// circle, five fit a general conic.
func FitPoints(points ...geom.PointF) (Conic, error) {
	switch len(points) {
	case 3:
		return FitCircle(points[0], points[1], points[2])
	case 5:
		return FitConic([5]geom.PointF(points))
	default:
		return Conic{Kind: ConicDegenerate}, fmt.Errorf("%w: got %d", ErrPointCount, len(points))
	}
}

func sweepTo(from, to float32) float32 {
	d := math32.Mod(to-from, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func ellipseCoefficients(cx, cy, a, b, rot float64) [6]float64 {
	s, c := math.Sincos(rot)
	ia, ib := 1/(a*a), 1/(b*b)
	A := c*c*ia + s*s*ib
	B := 2 * c * s * (ia - ib)
	C := s*s*ia + c*c*ib
	return [6]float64{
		A, B, C,
		-2*A*cx - B*cy,
		-B*cx - 2*C*cy,
		A*cx*cx + B*cx*cy + C*cy*cy - 1,
	}
}

// denormalize maps coefficients fitted in centred, scaled coordinates
// x' = (x-mx)/s back to screen coordinates.
func denormalize(k [6]float64, mx, my, s float64) [6]float64 {
	A, B, C, D, E, F := k[0], k[1], k[2], k[3], k[4], k[5]
	return [6]float64{
		A, B, C,
		-2*A*mx - B*my + D*s,
		-B*mx - 2*C*my + E*s,
		A*mx*mx + B*mx*my + C*my*my - D*s*mx - E*s*my + F*s*s,
	}
}

func det5(m [5][5]float64) float64 {
	det := 1.0
	for col := 0; col < 5; col++ {
		pivot := col
		for r := col + 1; r < 5; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if m[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			det = -det
		}
		det *= m[col][col]
		for r := col + 1; r < 5; r++ {
			f := m[r][col] / m[col][col]
			for c := col; c < 5; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}
	return det
}
