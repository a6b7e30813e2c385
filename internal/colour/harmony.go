package colour

import (
	"fmt"
	"math"
	"strings"
)

// Harmony identifies a colour harmony rule.
type Harmony int

const (
	// HarmonyComplementary is the colour opposite on the wheel (+180°).
	HarmonyComplementary Harmony = iota
	// HarmonyAnalogous is the base flanked by hues ±angle.
	HarmonyAnalogous
	// HarmonyTriadic is three hues spaced 120° apart.
	HarmonyTriadic
	// HarmonyTetradic is four hues spaced 90° apart.
	HarmonyTetradic
	// HarmonySplitComplementary is the base plus the hues either side of its complement.
	HarmonySplitComplementary
	// HarmonyMonochromatic varies lightness only.
	HarmonyMonochromatic
)

const (
	// DefaultAnalogousAngle is the hue offset used when none is given.
	DefaultAnalogousAngle = 30.0
	// DefaultMonochromaticCount is the number of monochromatic variations.
	DefaultMonochromaticCount = 5

	splitComplementaryOffset = 30.0
	monochromaticStep        = 15.0
)

var harmonyNames = map[Harmony]string{
	HarmonyComplementary:      "complementary",
	HarmonyAnalogous:          "analogous",
	HarmonyTriadic:            "triadic",
	HarmonyTetradic:           "tetradic",
	HarmonySplitComplementary: "split-complementary",
	HarmonyMonochromatic:      "monochromatic",
}

// Harmonies returns all harmony rules in declaration order.
func Harmonies() []Harmony {
	return []Harmony{
		HarmonyComplementary,
		HarmonyAnalogous,
		HarmonyTriadic,
		HarmonyTetradic,
		HarmonySplitComplementary,
		HarmonyMonochromatic,
	}
}

// String returns the harmony identifier.
func (h Harmony) String() string {
	if name, ok := harmonyNames[h]; ok {
		return name
	}
	return fmt.Sprintf("harmony(%d)", int(h))
}

// ParseHarmony parses a harmony identifier. Matching ignores case, and
// underscores or spaces are accepted in place of hyphens.
func ParseHarmony(s string) (Harmony, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	for h, name := range harmonyNames {
		if name == s {
			return h, true
		}
	}
	return 0, false
}

// HarmonyOptions tunes harmonies that take a parameter.
type HarmonyOptions struct {
	// Angle is the analogous hue offset in degrees.
	Angle float64
	// Count is the number of monochromatic variations.
	Count int
}

// DefaultHarmonyOptions returns the standard harmony parameters.
func DefaultHarmonyOptions() HarmonyOptions {
	return HarmonyOptions{
		Angle: DefaultAnalogousAngle,
		Count: DefaultMonochromaticCount,
	}
}

var harmonyFuncs = map[Harmony]func(string, HarmonyOptions) []string{
	HarmonyComplementary: func(hex string, _ HarmonyOptions) []string {
		c, ok := Complementary(hex)
		if !ok {
			return []string{}
		}
		return []string{c}
	},
	HarmonyAnalogous: func(hex string, opts HarmonyOptions) []string {
		return Analogous(hex, opts.Angle)
	},
	HarmonyTriadic: func(hex string, _ HarmonyOptions) []string {
		return Triadic(hex)
	},
	HarmonyTetradic: func(hex string, _ HarmonyOptions) []string {
		return Tetradic(hex)
	},
	HarmonySplitComplementary: func(hex string, _ HarmonyOptions) []string {
		return SplitComplementary(hex)
	},
	HarmonyMonochromatic: func(hex string, opts HarmonyOptions) []string {
		return Monochromatic(hex, opts.Count)
	},
}

// Generate applies the harmony rule h to the base colour.
// An unknown rule or an unparsable base returns an empty slice.
func Generate(h Harmony, hex string, opts HarmonyOptions) []string {
	fn, ok := harmonyFuncs[h]
	if !ok {
		return []string{}
	}
	return fn(hex, opts)
}

// Complementary returns the colour 180° around the wheel from hex.
func Complementary(hex string) (string, bool) {
	base, ok := HexToHSL(hex)
	if !ok {
		return "", false
	}
	return rotate(base, 180), true
}

// Analogous returns [hue+angle, base, hue-angle]. A non-positive angle uses
// DefaultAnalogousAngle.
func Analogous(hex string, angle float64) []string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return []string{}
	}
	if angle <= 0 || math.IsNaN(angle) {
		angle = DefaultAnalogousAngle
	}
	base := rgb.HSL()
	return []string{rotate(base, angle), rgb.Hex(), rotate(base, -angle)}
}

// Triadic returns the base and the hues at +120° and +240°.
func Triadic(hex string) []string {
	return rotations(hex, 120, 240)
}

// Tetradic returns the base and the hues at +90°, +180° and +270°.
func Tetradic(hex string) []string {
	return rotations(hex, 90, 180, 270)
}

// SplitComplementary returns the base and the hues 30° either side of its
// complement.
func SplitComplementary(hex string) []string {
	return rotations(hex, 180+splitComplementaryOffset, 180-splitComplementaryOffset)
}

// Monochromatic returns variations of hex in 15 point lightness steps,
// ordered lightest first with the base in the middle. floor(count/2)
// variations are generated on each side; lightness is clamped to [0,100].
func Monochromatic(hex string, count int) []string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return []string{}
	}
	base := rgb.HSL()
	side := max(0, count/2)

	colours := make([]string, 2*side+1)
	colours[side] = rgb.Hex()
	for i := 1; i <= side; i++ {
		step := float64(i) * monochromaticStep
		colours[side-i] = withLightness(base, base.L+step)
		colours[side+i] = withLightness(base, base.L-step)
	}
	return colours
}

// rotations returns the base followed by the base hue rotated by each offset.
func rotations(hex string, offsets ...float64) []string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return []string{}
	}
	base := rgb.HSL()
	colours := make([]string, 0, len(offsets)+1)
	colours = append(colours, rgb.Hex())
	for _, offset := range offsets {
		colours = append(colours, rotate(base, offset))
	}
	return colours
}

func rotate(hsl HSL, degrees float64) string {
	return HSLToHex(HSL{H: WrapHue(hsl.H + degrees), S: hsl.S, L: hsl.L})
}

func withLightness(hsl HSL, l float64) string {
	return HSLToHex(HSL{H: hsl.H, S: hsl.S, L: clampPercent(l)})
}
