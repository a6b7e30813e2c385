package colour

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MixColours blends hex2 into hex1 by percent (0 gives hex1, 100 gives hex2).
// percent is clamped to [0,100].
func MixColours(hex1, hex2 string, percent float64) (string, bool) {
	c1, ok1 := ParseHex(hex1)
	c2, ok2 := ParseHex(hex2)
	if !ok1 || !ok2 {
		return "", false
	}
	p := clampPercent(percent) / 100
	mix := func(a, b uint8) int {
		return int(math.Round(float64(a)*(1-p) + float64(b)*p))
	}
	return NewRGB(mix(c1.R, c2.R), mix(c1.G, c2.G), mix(c1.B, c2.B)).Hex(), true
}

// RandomColour returns a uniformly random colour drawn from r.
func RandomColour(r *rand.Rand) string {
	v := r.Uint32N(1 << 24)
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}.Hex()
}

// RandomPalette returns count random colours drawn from r.
func RandomPalette(count int, r *rand.Rand) []string {
	colours := make([]string, max(0, count))
	for i := range colours {
		colours[i] = RandomColour(r)
	}
	return colours
}

// Brightness returns the YIQ perceived brightness of c in [0,255].
func Brightness(c RGB) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// IsLight reports whether hex is a light colour by YIQ brightness.
// Unparsable input is treated as light.
func IsLight(hex string) bool {
	rgb, ok := ParseHex(hex)
	if !ok {
		return true
	}
	return Brightness(rgb) > 128
}

// TextColour returns black for light backgrounds and white for dark ones.
func TextColour(hex string) string {
	if IsLight(hex) {
		return "#000000"
	}
	return "#ffffff"
}

// LinearGradient is a two stop CSS linear gradient.
type LinearGradient struct {
	Angle int    `json:"angle" yaml:"angle"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// CSS returns the gradient as a CSS linear-gradient() value.
func (g LinearGradient) CSS() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", g.Angle, g.Start, g.End)
}
