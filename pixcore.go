package pixcore

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/curve"
)

// Tables holds the write-once lookup data shared by renderers.
type Tables struct {
	Palette *color.Palette
	Slopes  *curve.SlopeTable
}

// Init builds a fresh set of tables. The result is read-only once
// returned and may be shared between goroutines.
func Init(opts ...Option) *Tables {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tables{
		Palette: color.NewPalette(),
		Slopes:  o.slopes,
	}
	if t.Slopes == nil {
		t.Slopes = curve.NewSlopeTable()
	}
	for name, c := range o.colors {
		t.Palette.Define(name, c)
	}
	Logger().Info("pixcore: tables ready",
		"colors", t.Palette.Len(),
		"slopeRange", curve.SlopeTableSize,
		"version", Version)
	return t
}
