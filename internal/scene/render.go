package scene

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/pixcore"
	"github.com/gogpu/pixcore/blit"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/curve"
	"github.com/gogpu/pixcore/geom"
	"github.com/gogpu/pixcore/internal/logging"
	"github.com/gogpu/pixcore/region"
	"github.com/gogpu/pixcore/scan"
)

// defaultStep is the arc sampling step in degrees when a scene sets none.
const defaultStep = 2

// Renderer draws scenes into pooled buffers. It is safe for concurrent use.
type Renderer struct {
	tables *pixcore.Tables
	pool   *blit.Pool[color.Rgba]
}

// NewRenderer creates a renderer over tables. Nil tables are built with
// pixcore.Init.
func NewRenderer(tables *pixcore.Tables) *Renderer {
	if tables == nil {
		tables = pixcore.Init()
	}
	return &Renderer{tables: tables, pool: blit.NewPool[color.Rgba]()}
}

// Result is a rendered scene.
type Result struct {
	Image *blit.Buffer[color.Rgba]
	// IDs holds, per pixel, the 1-based index of the last shape that wrote
	// it. Nil unless the scene asked for tracking.
	IDs *blit.Buffer[uint32]
	// Perimeters has one tagged entry per shape, in drawing order.
	Perimeters []region.Perimeter
	Covered    region.Perimeter
}

// Render draws sc. The caller may hand the result back with Release.
func (r *Renderer) Render(sc *Scene) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	img := r.pool.Get(sc.Width, sc.Height)
	if img == nil {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, sc.Width, sc.Height)
	}
	res := &Result{Image: img, Perimeters: make([]region.Perimeter, 0, len(sc.Shapes))}

	if sc.Background != "" {
		bg, err := r.color(sc.Background)
		if err != nil {
			r.Release(res)
			return nil, err
		}
		blit.Fill(img, img.Bounds(), bg, blit.Options[color.Rgba]{})
	}
	if sc.Track {
		ids, err := blit.NewBuffer[uint32](sc.Width, sc.Height)
		if err != nil {
			r.Release(res)
			return nil, err
		}
		res.IDs = ids
	}

	step := sc.Step
	if step <= 0 {
		step = defaultStep
	}
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		c, opts, err := r.options(s)
		if err == nil {
			if res.IDs != nil {
				opts.Aux, opts.AuxValue = res.IDs, uint32(i+1)
			}
			var p region.Perimeter
			p, err = r.draw(img, s, step, c, opts)
			p = p.Tag(sc.Name, s.ID, s.Priority)
			res.Perimeters = append(res.Perimeters, p)
			res.Covered = res.Covered.Union(p)
			logging.L().Debug("scene: shape drawn", "id", s.ID, "kind", s.Kind, "perimeter", p.String())
		}
		if err != nil {
			r.Release(res)
			return nil, fmt.Errorf("scene: shape %q: %w", s.ID, err)
		}
	}

	logging.L().Info("scene: rendered",
		"name", sc.Name,
		"size", img.Size().String(),
		"shapes", len(sc.Shapes),
		"covered", res.Covered.String())
	return res, nil
}

// Release returns the result's image to the pool. The result must not be
// used afterwards.
func (r *Renderer) Release(res *Result) {
	if res == nil || res.Image == nil {
		return
	}
	r.pool.Put(res.Image)
	res.Image = nil
}

func (r *Renderer) color(s string) (color.Rgba, error) {
	if s == "" {
		return color.RGB(0, 0, 0), nil
	}
	c, ok := r.tables.Palette.Parse(s)
	if !ok {
		return color.Empty, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

func (r *Renderer) options(s *Shape) (color.Rgba, blit.Options[color.Rgba], error) {
	opts := blit.Options[color.Rgba]{Alpha: s.Alpha}
	c, err := r.color(s.Color)
	if err != nil {
		return c, opts, err
	}
	for _, name := range s.Command {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "opaque":
			opts.Command |= blit.Opaque
		case "backdrop":
			opts.Command |= blit.Backdrop
		case "invert", "invertcolor":
			opts.Command |= blit.InvertColor
		case "clear":
			opts.Command |= blit.Clear
		default:
			return c, opts, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
		}
	}
	if s.When != "" {
		crit, ok := blit.ParseCriteria(s.When)
		if !ok {
			return c, opts, fmt.Errorf("%w: %q", ErrUnknownCommand, s.When)
		}
		v, err := r.color(s.WhenColor)
		if err != nil {
			return c, opts, err
		}
		opts.When = blit.Condition[color.Rgba]{Criteria: crit, Value: v}
	}
	return c, opts, nil
}

func (r *Renderer) draw(dst *blit.Buffer[color.Rgba], s *Shape, step float32, c color.Rgba, opts blit.Options[color.Rgba]) (region.Perimeter, error) {
	mode := geom.ParseStrokeMode(s.Mode)
	switch s.Kind {
	case KindRect:
		area := s.Bounds().Round()
		if s.Width <= 0 {
			return blit.FillColor(dst, area, c, opts), nil
		}
		outer, inner := region.StrokeAreas(area, int(math32.Round(s.Width)), mode)
		return fillBand(dst, outer, inner, c, opts), nil
	case KindPolygon:
		return blit.FillPolygon(dst, s.PointsF(), c, opts), nil
	case KindStroke:
		return blit.FillPolygon(dst, curve.Outline(s.PointsF(), s.Width, mode, s.Closed), c, opts), nil
	case KindHairline:
		return r.hairline(dst, s.PointsF(), s.Closed, c, opts), nil
	case KindEllipse, KindArc, KindPie:
		return r.conic(dst, s, curve.NewConic(s.Bounds(), s.Start, s.End, s.Rotation), step, c, opts), nil
	case KindFit:
		cn, err := curve.FitPoints(s.PointsF()...)
		if err != nil {
			return region.Empty, err
		}
		return blit.FillPolygon(dst, cn.Points(step), c, opts), nil
	default:
		return region.Empty, fmt.Errorf("%w: %q", ErrUnknownShape, s.Kind)
	}
}

func (r *Renderer) conic(dst *blit.Buffer[color.Rgba], s *Shape, cn curve.Conic, step float32, c color.Rgba, opts blit.Options[color.Rgba]) region.Perimeter {
	if !cn.Renderable() {
		return region.Empty
	}
	switch s.Kind {
	case KindPie:
		return blit.FillPolygon(dst, cn.Pie(step), c, opts)
	case KindArc:
		pts := cn.Points(step)
		if s.Width > 0 {
			return blit.FillPolygon(dst, curve.Outline(pts, s.Width, geom.ParseStrokeMode(s.Mode), cn.Full()), c, opts)
		}
		return r.hairline(dst, pts, cn.Full(), c, opts)
	default:
		return blit.FillPolygon(dst, cn.Points(step), c, opts)
	}
}

// hairline draws one-pixel segments between consecutive points. Shared
// endpoints are written once.
func (r *Renderer) hairline(dst *blit.Buffer[color.Rgba], pts []geom.PointF, closed bool, c color.Rgba, opts blit.Options[color.Rgba]) region.Perimeter {
	if len(pts) == 0 {
		return region.Empty
	}
	if closed && len(pts) > 2 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	if len(pts) == 1 {
		at := pts[0].Round()
		return blit.FillColor(dst, geom.Rect(at.X, at.Y, 1, 1), c, opts)
	}
	p := region.Empty
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1].Round(), pts[i].Round()
		for k, l := range scan.ClipHairlineRuns(a, b, r.tables.Slopes, dst.Bounds()) {
			if i > 1 && k == 0 {
				var ok bool
				if l, ok = trimJoint(l, a); !ok {
					continue
				}
			}
			p = p.Union(blit.FillLine(dst, l, c, opts))
		}
	}
	return p
}

// trimJoint drops the pixel at joint from whichever end of l holds it.
// It reports false when nothing is left.
func trimJoint(l scan.AxisLine, joint geom.Point) (scan.AxisLine, bool) {
	axis, pos := joint.Y, joint.X
	if !l.Horizontal {
		axis, pos = joint.X, joint.Y
	}
	if l.Axis == axis {
		switch pos {
		case l.Start:
			l.Start++
		case l.End:
			l.End--
		}
	}
	return l, l.Start <= l.End
}

// fillBand fills outer minus inner.
func fillBand(dst *blit.Buffer[color.Rgba], outer, inner geom.Rectangle, c color.Rgba, opts blit.Options[color.Rgba]) region.Perimeter {
	if inner.Empty() {
		return blit.FillColor(dst, outer, c, opts)
	}
	parts := [...]geom.Rectangle{
		geom.Rect(outer.X, outer.Y, outer.W, inner.Y-outer.Y),
		geom.Rect(outer.X, inner.Bottom(), outer.W, outer.Bottom()-inner.Bottom()),
		geom.Rect(outer.X, inner.Y, inner.X-outer.X, inner.H),
		geom.Rect(inner.Right(), inner.Y, outer.Right()-inner.Right(), inner.H),
	}
	p := region.Empty
	for _, part := range parts {
		p = p.Union(blit.FillColor(dst, part, c, opts))
	}
	return p
}
