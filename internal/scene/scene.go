// Package scene loads TOML picture descriptions and renders them with the
// pixcore packages.
//
// A scene file names a canvas and an ordered list of shapes:
//
//	name = "demo"
//	width = 64
//	height = 48
//	background = "white"
//
//	[[shape]]
//	id = "box"
//	kind = "rect"
//	rect = [4.0, 4.0, 20.0, 10.0]
//	color = "#ff0000"
//
// Shapes are drawn in file order. Each one reports the perimeter it
// touched, tagged with the scene name and the shape id.
package scene

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/pixcore/geom"
	"github.com/gogpu/pixcore/internal/logging"
)

var (
	// ErrUnknownShape is returned for a shape kind the renderer cannot draw.
	ErrUnknownShape = errors.New("scene: unknown shape kind")
	// ErrInvalidScene is returned when the canvas size is unusable.
	ErrInvalidScene = errors.New("scene: invalid scene")
	// ErrUnknownColor is returned when a colour is neither hex nor a name.
	ErrUnknownColor = errors.New("scene: unknown color")
	// ErrUnknownCommand is returned for an unknown command flag or
	// condition name.
	ErrUnknownCommand = errors.New("scene: unknown command")
)

// Shape kinds.
const (
	KindRect     = "rect"
	KindPolygon  = "polygon"
	KindEllipse  = "ellipse"
	KindArc      = "arc"
	KindPie      = "pie"
	KindStroke   = "stroke"
	KindHairline = "hairline"
	KindFit      = "fit"
)

// Scene is a decoded scene file.
type Scene struct {
	Name       string  `toml:"name"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	Step       float32 `toml:"step"`
	// Track records the index of the last shape to write each pixel into
	// an id plane.
	Track  bool    `toml:"track"`
	Shapes []Shape `toml:"shape"`
}

// Shape is one drawing instruction.
type Shape struct {
	ID       string `toml:"id"`
	Kind     string `toml:"kind"`
	Color    string `toml:"color"`
	Alpha    uint8  `toml:"alpha"`
	Priority int    `toml:"priority"`

	// Command lists compositing flags: opaque, backdrop, invert, clear.
	Command []string `toml:"command"`
	// When and WhenColor restrict writes to destination pixels matching
	// the condition, e.g. when = "equal", when_color = "white".
	When      string `toml:"when"`
	WhenColor string `toml:"when_color"`

	Rect     [4]float32   `toml:"rect"`
	Points   [][2]float32 `toml:"points"`
	Start    float32      `toml:"start"`
	End      float32      `toml:"end"`
	Rotation float32      `toml:"rotation"`

	Width  float32 `toml:"width"`
	Mode   string  `toml:"mode"`
	Closed bool    `toml:"closed"`
}

// Bounds returns the shape's rect field as a rectangle.
func (s *Shape) Bounds() geom.RectangleF {
	return geom.RectF(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
}

// PointsF returns the shape's points.
func (s *Shape) PointsF() []geom.PointF {
	out := make([]geom.PointF, len(s.Points))
	for i, p := range s.Points {
		out[i] = geom.PtF(p[0], p[1])
	}
	return out
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	var sc Scene
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	logging.L().Debug("scene: loaded", "path", path, "name", sc.Name, "shapes", len(sc.Shapes))
	return &sc, nil
}

// Parse decodes a scene from text.
func Parse(data string) (*Scene, error) {
	var sc Scene
	if _, err := toml.Decode(data, &sc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Encode writes sc as TOML.
func (sc *Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(sc)
}

// Validate checks the canvas and normalizes shape kinds to lower case.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, sc.Width, sc.Height)
	}
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
		if s.ID == "" {
			s.ID = fmt.Sprintf("%s%d", s.Kind, i)
		}
	}
	return nil
}
