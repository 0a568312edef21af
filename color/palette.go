package color

import (
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/gogpu/pixcore/internal/logging"
)

// Palette maps colour names to values. The named slots are the SVG 1.1
// keywords plus "transparent" and "empty"; applications may Define more.
//
// A Palette is populated once by NewPalette (or Reset) and is read-only
// afterwards, so concurrent lookups are safe as long as nobody calls Reset
// or Define at the same time.
//
// The zero Palette is empty and usable; Define adds to it.
type Palette struct {
	named map[string]Rgba
	names []string
}

// NewPalette creates a palette with every predefined slot filled.
func NewPalette() *Palette {
	p := &Palette{}
	p.Reset()
	return p
}

// Reset discards custom definitions and refills the predefined slots.
func (p *Palette) Reset() {
	p.named = make(map[string]Rgba, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		p.named[name] = New(c.R, c.G, c.B, c.A)
	}
	p.named["transparent"] = Transparent
	p.named["empty"] = Empty
	p.reindex()
	logging.L().Debug("color: palette reset", "colors", len(p.named))
}

// Define adds or replaces a named colour.
func (p *Palette) Define(name string, c Rgba) {
	if p.named == nil {
		p.named = make(map[string]Rgba)
	}
	if _, ok := p.named[name]; !ok {
		p.named[name] = c
		p.reindex()
		return
	}
	p.named[name] = c
}

// Lookup returns the colour registered under exactly name. Lookup is case
// sensitive; an unknown name yields Empty and false.
func (p *Palette) Lookup(name string) (Rgba, bool) {
	c, ok := p.named[name]
	if !ok {
		return Empty, false
	}
	return c, true
}

// Get is Lookup without the found flag: unknown names are Empty.
func (p *Palette) Get(name string) Rgba {
	c, _ := p.Lookup(name)
	return c
}

// LookupFold is Lookup after Unicode case folding, so "AliceBlue" finds
// "aliceblue".
func (p *Palette) LookupFold(name string) (Rgba, bool) {
	if c, ok := p.Lookup(name); ok {
		return c, true
	}
	// A Caser carries transform state, so each call gets its own.
	return p.Lookup(cases.Fold().String(name))
}

// Parse resolves a colour written as a hex literal ("#RRGGBB[AA]") or a
// palette name (case-insensitive).
func (p *Palette) Parse(s string) (Rgba, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	return p.LookupFold(s)
}

// Names returns every registered name in sorted order.
func (p *Palette) Names() []string {
	return slices.Clone(p.names)
}

// Len returns the number of registered names.
func (p *Palette) Len() int { return len(p.named) }

func (p *Palette) reindex() {
	p.names = p.names[:0]
	for name := range p.named {
		p.names = append(p.names, name)
	}
	slices.Sort(p.names)
}
