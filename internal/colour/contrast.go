package colour

import (
	"image/color"
	"math"
)

// Level is a WCAG conformance level.
type Level string

// TextSize distinguishes normal from large text for WCAG thresholds.
// Classifying text as large (24px, or 18.5px bold) is the caller's job.
type TextSize string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"

	SizeNormal TextSize = "normal"
	SizeLarge  TextSize = "large"
)

// WCAG 2.1 contrast thresholds.
const (
	RatioAALarge   = 3.0
	RatioAANormal  = 4.5
	RatioAAALarge  = 4.5
	RatioAAANormal = 7.0

	// MaxContrastRatio is the ratio of white against black.
	MaxContrastRatio = 21.0
)

// Rating is a single pass/fail judgement for a level and text size.
type Rating struct {
	Level  Level    `json:"level" yaml:"level"`
	Size   TextSize `json:"size" yaml:"size"`
	Passes bool     `json:"passes" yaml:"passes"`
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.1.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20-TECHS/G17.html
func RelativeLuminance(c RGB) float64 {
	r, g, b := normalise(c)
	return 0.2126*gammaExpand(r) + 0.7152*gammaExpand(g) + 0.0722*gammaExpand(b)
}

// Luminance is RelativeLuminance for any color.Color.
func Luminance(c color.Color) float64 {
	return RelativeLuminance(ToRGB(c))
}

// gammaExpand linearises an sRGB component.
func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours.
// The result is symmetric and lies in [1, 21].
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HexContrastRatio is ContrastRatio for hex input. ok is false if either
// colour cannot be parsed.
func HexContrastRatio(hex1, hex2 string) (ratio float64, ok bool) {
	c1, ok1 := ParseHex(hex1)
	c2, ok2 := ParseHex(hex2)
	if !ok1 || !ok2 {
		return 0, false
	}
	return ContrastRatio(c1, c2), true
}

// MeetsWCAG reports whether ratio satisfies level for the given text size.
func MeetsWCAG(ratio float64, level Level, size TextSize) bool {
	if level == LevelAAA {
		if size == SizeLarge {
			return ratio >= RatioAAALarge
		}
		return ratio >= RatioAAANormal
	}
	if size == SizeLarge {
		return ratio >= RatioAALarge
	}
	return ratio >= RatioAANormal
}

// WCAGRating returns the four judgements for ratio, ordered
// AAA normal, AAA large, AA normal, AA large.
func WCAGRating(ratio float64) []Rating {
	ratings := make([]Rating, 0, 4)
	for _, level := range []Level{LevelAAA, LevelAA} {
		for _, size := range []TextSize{SizeNormal, SizeLarge} {
			ratings = append(ratings, Rating{
				Level:  level,
				Size:   size,
				Passes: MeetsWCAG(ratio, level, size),
			})
		}
	}
	return ratings
}

// ContrastScore maps a ratio linearly onto 0-100 for display.
func ContrastScore(ratio float64) int {
	score := int(math.Round(ratio / MaxContrastRatio * 100))
	return max(0, min(100, score))
}

// ContrastDescription returns a qualitative label for ratio.
func ContrastDescription(ratio float64) string {
	switch {
	case ratio >= 12:
		return "Excellent"
	case ratio >= RatioAAANormal:
		return "Very Good"
	case ratio >= RatioAANormal:
		return "Good"
	case ratio >= RatioAALarge:
		return "Fair"
	default:
		return "Poor"
	}
}

// IsReadable reports whether fg on bg reaches minRatio. Unparsable colours
// are never readable.
func IsReadable(bg, fg string, minRatio float64) bool {
	ratio, ok := HexContrastRatio(bg, fg)
	return ok && ratio >= minRatio
}

// SuggestAccessibleColour searches darker variants of fg, scaling every
// channel by 0%, 5%, ... 100%, and returns the one with the highest contrast
// against bg that reaches target. If fg already has the best contrast, or no
// variant reaches target, fg is returned unchanged.
func SuggestAccessibleColour(bg, fg string, target float64) string {
	bgRGB, ok := ParseHex(bg)
	if !ok {
		return fg
	}
	fgRGB, ok := ParseHex(fg)
	if !ok {
		return fg
	}

	best := fg
	bestRatio := ContrastRatio(bgRGB, fgRGB)
	for pct := 0; pct <= 100; pct += 5 {
		candidate := NewRGB(
			scaleChannel(fgRGB.R, pct),
			scaleChannel(fgRGB.G, pct),
			scaleChannel(fgRGB.B, pct),
		)
		ratio := ContrastRatio(bgRGB, candidate)
		if ratio >= target && ratio > bestRatio {
			best, bestRatio = candidate.Hex(), ratio
		}
	}
	return best
}

func scaleChannel(c uint8, pct int) int {
	return int(math.Round(float64(c) * float64(pct) / 100))
}
