package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette is an ordered sequence of colours. Order is meaningful (hue
// rotation order, lightness order for scales) and is always preserved.
type Palette struct {
	Colors []RGB
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []RGB) *Palette {
	return &Palette{
		Colors: colors,
	}
}

// PaletteFromHex parses each hex colour (three or six digits) into a Palette.
func PaletteFromHex(hexColors []string) (*Palette, error) {
	colors := make([]RGB, len(hexColors))
	for i, h := range hexColors {
		norm, ok := NormaliseHex(h)
		if !ok {
			return nil, fmt.Errorf("invalid hex colour at position %d: %q", i+1, h)
		}
		colors[i], _ = ParseHex(norm)
	}
	return NewPalette(colors), nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
	HSV HSV    `json:"hsv"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format. HSL and HSV are rounded.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Hex: c.Hex(),
			RGB: c,
			HSL: c.HSL().Round(),
			HSV: c.HSV().Round(),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:  len(p.Colors),
		Colors: colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colors:\n", len(p.Colors))
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return b.String()
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Colors) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colors)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}
