package pixcore

import (
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/curve"
)

// Option configures Init.
// Use functional options to customize the tables.
//
// Example:
//
//	// Default tables
//	t := pixcore.Init()
//
//	// Extra colour names, shared slope table
//	t := pixcore.Init(
//	    pixcore.WithColor("brand", color.RGB(0x12, 0x34, 0x56)),
//	    pixcore.WithSlopes(other.Slopes),
//	)
type Option func(*initOptions)

// initOptions holds optional configuration for Init.
type initOptions struct {
	colors map[string]color.Rgba
	slopes *curve.SlopeTable
}

// defaultOptions returns the default init options.
func defaultOptions() initOptions {
	return initOptions{
		colors: nil, // palette holds the stock names only
		slopes: nil, // built fresh if nil
	}
}

// WithColor registers an extra palette name. Later options override
// earlier ones for the same name.
func WithColor(name string, c color.Rgba) Option {
	return func(o *initOptions) {
		if o.colors == nil {
			o.colors = make(map[string]color.Rgba)
		}
		o.colors[name] = c
	}
}

// WithSlopes reuses an existing slope table instead of building one.
// Slope tables are read-only, so sharing one between several Tables is
// safe.
func WithSlopes(t *curve.SlopeTable) Option {
	return func(o *initOptions) {
		o.slopes = t
	}
}
