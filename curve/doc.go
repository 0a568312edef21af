// Package curve is the curve and conic solver of pixcore.
//
// It turns control points into analytic shapes and derived geometry:
//
//   - slopes, distances and angles between points, plus a reciprocal
//     SlopeTable for integer line steppers,
//   - rotation and scaling of point lists,
//   - conic fitting: five points to an ellipse (FitConic), three points to
//     a circle (FitCircle), or explicit bounds and angles (NewConic),
//   - stroke geometry: parallel lines, offset polylines and closed stroke
//     outlines,
//   - segment and line intersection with a coordinate bound that keeps
//     numerically unstable results out of the renderer.
//
// Public values are float32 (geom.PointF); solvers work in float64
// internally.
package curve

import "errors"

var (
	// ErrNotEllipse is returned by FitConic when the points lie on a
	// parabola or hyperbola. The returned Conic still carries the
	// coefficients and Kind but no renderable dimensions.
	ErrNotEllipse = errors.New("curve: conic is not an ellipse")

	// ErrDegenerate is returned when the points do not determine a curve
	// (repeated or collinear points, imaginary ellipse).
	ErrDegenerate = errors.New("curve: degenerate control points")

	// ErrPointCount is returned by FitPoints for unsupported point counts.
	ErrPointCount = errors.New("curve: need 3 or 5 control points")
)
