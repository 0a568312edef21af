package pixcore

import (
	"testing"

	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/curve"
)

// TestInitDefault tests that Init builds its own tables by default.
func TestInitDefault(t *testing.T) {
	tables := Init()
	if tables.Slopes == nil {
		t.Fatal("Slopes is nil, expected a fresh table")
	}
	if _, ok := tables.Palette.Lookup("brand"); ok {
		t.Error("default palette has unexpected name \"brand\"")
	}
}

// TestInitWithColor tests registering extra palette names.
func TestInitWithColor(t *testing.T) {
	brand := color.RGB(0x12, 0x34, 0x56)
	tables := Init(
		WithColor("brand", color.RGB(1, 1, 1)),
		WithColor("brand", brand),
		WithColor("red", color.RGB(200, 0, 0)),
	)

	if got := tables.Palette.Get("brand"); got != brand {
		t.Errorf("brand = %v, want %v", got, brand)
	}
	if got := tables.Palette.Get("red"); got != color.RGB(200, 0, 0) {
		t.Errorf("red = %v, want overridden value", got)
	}
	if got, ok := tables.Palette.LookupFold("BRAND"); !ok || got != brand {
		t.Errorf("LookupFold(BRAND) = %v, %v", got, ok)
	}
}

// TestInitWithSlopes tests sharing a slope table.
func TestInitWithSlopes(t *testing.T) {
	shared := curve.NewSlopeTable()
	a := Init(WithSlopes(shared))
	b := Init(WithSlopes(shared))

	if a.Slopes != shared || b.Slopes != shared {
		t.Error("slope table was not shared")
	}
	if a.Palette == b.Palette {
		t.Error("palettes must not be shared")
	}

	if Init(WithSlopes(nil)).Slopes == nil {
		t.Error("WithSlopes(nil) should fall back to a fresh table")
	}
}
