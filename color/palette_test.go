package color

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestPaletteLookup(t *testing.T) {
	p := NewPalette()

	c, ok := p.Lookup("red")
	require.True(t, ok)
	assert.Equal(t, Red, c)

	c, ok = p.Lookup("Red")
	assert.False(t, ok, "Lookup must be case sensitive")
	assert.Equal(t, Empty, c)

	c, ok = p.LookupFold("AliceBlue")
	require.True(t, ok)
	assert.Equal(t, RGB(0xf0, 0xf8, 0xff), c)

	assert.Equal(t, Empty, p.Get("no-such-colour"))
	assert.Equal(t, Transparent, p.Get("transparent"))
}

func TestPaletteNames(t *testing.T) {
	p := NewPalette()
	names := p.Names()
	assert.Len(t, names, len(colornames.Map)+2)
	assert.Equal(t, len(names), p.Len())
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "empty")

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", p.Names()[0], "Names must return a copy")
}

func TestPaletteDefineAndReset(t *testing.T) {
	p := NewPalette()
	brand := New(1, 2, 3, 255)
	p.Define("brand", brand)
	assert.Equal(t, brand, p.Get("brand"))
	assert.Contains(t, p.Names(), "brand")

	p.Define("red", Blue)
	assert.Equal(t, Blue, p.Get("red"))

	p.Reset()
	assert.Equal(t, Empty, p.Get("brand"))
	assert.Equal(t, Red, p.Get("red"))
}

func TestPaletteZeroValueDefine(t *testing.T) {
	var p Palette
	brand := New(1, 2, 3, 255)
	p.Define("brand", brand)

	assert.Equal(t, brand, p.Get("brand"))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []string{"brand"}, p.Names())
	assert.Equal(t, Empty, p.Get("red"))
}

func TestPaletteParse(t *testing.T) {
	p := NewPalette()
	tests := []struct {
		in   string
		want Rgba
		ok   bool
	}{
		{"#00FF00", Green, true},
		{" lime ", Green, true},
		{"NAVY", RGB(0, 0, 0x80), true},
		{"#zz", Empty, false},
		{"nope", Empty, false},
	}
	for _, tt := range tests {
		got, ok := p.Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
