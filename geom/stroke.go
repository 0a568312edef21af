package geom

// StrokeMode places a stroke of a given width relative to the path.
type StrokeMode uint8

const (
	// StrokeMiddle centres the stroke on the path, half the width each side.
	StrokeMiddle StrokeMode = iota
	// StrokeInner puts the full width inside the shape.
	StrokeInner
	// StrokeOuter puts the full width outside the shape.
	StrokeOuter
)

// String returns the mode name.
func (m StrokeMode) String() string {
	switch m {
	case StrokeInner:
		return "Inner"
	case StrokeOuter:
		return "Outer"
	default:
		return "Middle"
	}
}

// ParseStrokeMode maps "middle", "inner" or "outer" to a mode. Unknown
// names fall back to StrokeMiddle.
func ParseStrokeMode(s string) StrokeMode {
	switch s {
	case "inner", "Inner":
		return StrokeInner
	case "outer", "Outer":
		return StrokeOuter
	default:
		return StrokeMiddle
	}
}
