// Package colour provides colour space conversion, harmony, contrast and
// colour vision deficiency functions.
//
// Every function in this package is pure. Inputs are never mutated and the
// package holds no mutable state, so all functions are safe for concurrent use.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL represents a colour in hue, saturation, lightness form.
// H is in degrees [0,360), S and L are percentages [0,100].
// Components are kept unrounded so conversions round-trip exactly;
// use Round for display values.
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// HSV represents a colour in hue, saturation, value form.
// Ranges match HSL.
type HSV struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
}

// NewRGB builds an RGB value from integer channels, clamping each to [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Value returns the colour packed into a 24-bit integer (0xRRGGBB).
func (rgb RGB) Value() uint32 {
	return uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// Color converts the value to an opaque color.RGBA.
func (rgb RGB) Color() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// HSL converts the colour to HSL.
func (rgb RGB) HSL() HSL {
	return RGBToHSL(rgb)
}

// HSV converts the colour to HSV.
func (rgb RGB) HSV() HSV {
	return RGBToHSV(rgb)
}

// ToRGB converts a color.Color to RGB, discarding alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a six digit hex colour with or without a leading '#'.
// Case is ignored. Three digit shorthand is not accepted here; pass it
// through NormaliseHex first.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// NormaliseHex returns the canonical "#rrggbb" form of a hex colour.
// It accepts surrounding whitespace, an optional '#', and the three digit
// shorthand (#abc becomes #aabbcc).
func NormaliseHex(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	rgb, ok := ParseHex(s)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

// IsValidHex reports whether s is '#' followed by three or six hex digits.
func IsValidHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

// RGBToHex formats integer channels as "#rrggbb".
// Channels outside [0,255] are clamped.
func RGBToHex(r, g, b int) string {
	return NewRGB(r, g, b).Hex()
}

// RGBToHSL converts RGB to HSL.
func RGBToHSL(rgb RGB) HSL {
	r, g, b := normalise(rgb)
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l := (maxVal + minVal) / 2
	if maxVal == minVal {
		// Achromatic: hue and saturation are zero by convention.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxVal - minVal
	var s float64
	if l > 0.5 {
		s = d / (2 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	return HSL{H: hue(r, g, b, maxVal, d), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB. Out of range saturation and lightness are
// clamped and the hue is wrapped into [0,360).
func HSLToRGB(hsl HSL) RGB {
	hsl = hsl.clamp()
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	if s == 0 {
		return rgbFromUnit(l, l, l)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return rgbFromUnit(
		hueToChannel(p, q, h+1.0/3),
		hueToChannel(p, q, h),
		hueToChannel(p, q, h-1.0/3),
	)
}

// hueToChannel is a helper for HSL to RGB conversion. t is a hue fraction.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// RGBToHSV converts RGB to HSV.
func RGBToHSV(rgb RGB) HSV {
	r, g, b := normalise(rgb)
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	d := maxVal - minVal

	var s float64
	if maxVal != 0 {
		s = d / maxVal
	}

	var h float64
	if maxVal != minVal {
		h = hue(r, g, b, maxVal, d)
	}

	return HSV{H: h, S: s * 100, V: maxVal * 100}
}

// HSVToRGB converts HSV to RGB. Out of range components are clamped and the
// hue is wrapped into [0,360).
func HSVToRGB(hsv HSV) RGB {
	hsv = hsv.clamp()
	h := hsv.H / 360
	s := hsv.S / 100
	v := hsv.V / 100

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return rgbFromUnit(v, t, p)
	case 1:
		return rgbFromUnit(q, v, p)
	case 2:
		return rgbFromUnit(p, v, t)
	case 3:
		return rgbFromUnit(p, q, v)
	case 4:
		return rgbFromUnit(t, p, v)
	default:
		return rgbFromUnit(v, p, q)
	}
}

// HexToHSL parses a hex colour and converts it to HSL.
func HexToHSL(hex string) (HSL, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return HSL{}, false
	}
	return RGBToHSL(rgb), true
}

// HSLToHex converts HSL to a hex colour.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}

// HexToHSV parses a hex colour and converts it to HSV.
func HexToHSV(hex string) (HSV, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return HSV{}, false
	}
	return RGBToHSV(rgb), true
}

// HSVToHex converts HSV to a hex colour.
func HSVToHex(hsv HSV) string {
	return HSVToRGB(hsv).Hex()
}

// Round returns the integer display form: whole degrees and whole percent.
// A hue that rounds to 360 wraps to 0.
func (hsl HSL) Round() HSL {
	return HSL{H: roundHue(hsl.H), S: math.Round(hsl.S), L: math.Round(hsl.L)}
}

// String returns the colour as "hsl(h, s%, l%)" using rounded components.
func (hsl HSL) String() string {
	r := hsl.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.L))
}

// Round returns the integer display form: whole degrees and whole percent.
func (hsv HSV) Round() HSV {
	return HSV{H: roundHue(hsv.H), S: math.Round(hsv.S), V: math.Round(hsv.V)}
}

// String returns the colour as "hsv(h, s%, v%)" using rounded components.
func (hsv HSV) String() string {
	r := hsv.Round()
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.V))
}

func (hsl HSL) clamp() HSL {
	return HSL{H: WrapHue(hsl.H), S: clampPercent(hsl.S), L: clampPercent(hsl.L)}
}

func (hsv HSV) clamp() HSV {
	return HSV{H: WrapHue(hsv.H), S: clampPercent(hsv.S), V: clampPercent(hsv.V)}
}

// hue returns the hue in degrees for normalised channels, given the max
// channel value and the max-min delta (which must be non-zero).
func hue(r, g, b, maxVal, d float64) float64 {
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return WrapHue(h / 6 * 360)
}

func normalise(rgb RGB) (r, g, b float64) {
	return float64(rgb.R) / 255, float64(rgb.G) / 255, float64(rgb.B) / 255
}

// rgbFromUnit scales [0,1] channels to [0,255] with rounding.
func rgbFromUnit(r, g, b float64) RGB {
	return RGB{R: unitToChannel(r), G: unitToChannel(g), B: unitToChannel(b)}
}

func unitToChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
