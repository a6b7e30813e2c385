package colour

import (
	"fmt"
	"math"
	"strings"
)

// Deficiency identifies a colour vision deficiency to simulate.
type Deficiency int

const (
	// Normal is unimpaired trichromatic vision; simulation is the identity.
	Normal Deficiency = iota
	Protanopia
	Protanomaly
	Deuteranopia
	Deuteranomaly
	Tritanopia
	Tritanomaly
	Achromatopsia
	Achromatomaly
)

// DefaultDistinguishThreshold is the RGB distance above which two simulated
// colours are considered distinguishable.
const DefaultDistinguishThreshold = 30.0

type matrix [3][3]float64

// Linear transforms over normalised RGB, after daltonize.org.
var deficiencyMatrices = map[Deficiency]matrix{
	Protanopia: { // Red-blind
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	Protanomaly: { // Red-weak
		{0.817, 0.183, 0.000},
		{0.333, 0.667, 0.000},
		{0.000, 0.125, 0.875},
	},
	Deuteranopia: { // Green-blind
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	Deuteranomaly: { // Green-weak
		{0.800, 0.200, 0.000},
		{0.258, 0.742, 0.000},
		{0.000, 0.142, 0.858},
	},
	Tritanopia: { // Blue-blind
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
	Tritanomaly: { // Blue-weak
		{0.967, 0.033, 0.000},
		{0.000, 0.733, 0.267},
		{0.000, 0.183, 0.817},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
	Achromatomaly: {
		{0.618, 0.320, 0.062},
		{0.163, 0.775, 0.062},
		{0.163, 0.320, 0.516},
	},
}

// DeficiencyInfo describes a deficiency for display.
type DeficiencyInfo struct {
	Deficiency  Deficiency `json:"-" yaml:"-"`
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Prevalence  string     `json:"prevalence" yaml:"prevalence"`
}

var deficiencyInfo = []DeficiencyInfo{
	{Normal, "normal", "Normal Vision", "No color blindness", "~96% of population"},
	{Protanopia, "protanopia", "Protanopia", "Red-blind (no red cones)", "~1% of males"},
	{Protanomaly, "protanomaly", "Protanomaly", "Red-weak (anomalous red cones)", "~1% of males"},
	{Deuteranopia, "deuteranopia", "Deuteranopia", "Green-blind (no green cones)", "~1% of males"},
	{Deuteranomaly, "deuteranomaly", "Deuteranomaly", "Green-weak (most common)", "~5% of males, 0.4% of females"},
	{Tritanopia, "tritanopia", "Tritanopia", "Blue-blind (no blue cones)", "~0.001% of population"},
	{Tritanomaly, "tritanomaly", "Tritanomaly", "Blue-weak", "~0.01% of population"},
	{Achromatopsia, "achromatopsia", "Achromatopsia", "Complete color blindness (monochromacy)", "~0.003% of population"},
	{Achromatomaly, "achromatomaly", "Achromatomaly", "Incomplete color blindness", "Very rare"},
}

// Deficiencies returns descriptions of every supported deficiency,
// starting with Normal.
func Deficiencies() []DeficiencyInfo {
	out := make([]DeficiencyInfo, len(deficiencyInfo))
	copy(out, deficiencyInfo)
	return out
}

// String returns the deficiency identifier (e.g. "deuteranopia").
func (d Deficiency) String() string {
	if d >= 0 && int(d) < len(deficiencyInfo) {
		return deficiencyInfo[d].ID
	}
	return fmt.Sprintf("deficiency(%d)", int(d))
}

// ParseDeficiency parses a deficiency identifier, ignoring case.
func ParseDeficiency(s string) (Deficiency, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, info := range deficiencyInfo {
		if info.ID == s {
			return info.Deficiency, true
		}
	}
	return Normal, false
}

// Simulate approximates how c appears with deficiency d.
// Normal and unrecognised deficiencies return c unchanged.
func Simulate(c RGB, d Deficiency) RGB {
	m, ok := deficiencyMatrices[d]
	if !ok {
		return c
	}
	r, g, b := normalise(c)
	return RGB{
		R: unitToChannel(r*m[0][0] + g*m[0][1] + b*m[0][2]),
		G: unitToChannel(r*m[1][0] + g*m[1][1] + b*m[1][2]),
		B: unitToChannel(r*m[2][0] + g*m[2][1] + b*m[2][2]),
	}
}

// SimulateHex is Simulate for hex input. Unparsable input is returned as given.
func SimulateHex(hex string, d Deficiency) string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return hex
	}
	if _, known := deficiencyMatrices[d]; !known {
		return hex
	}
	return Simulate(rgb, d).Hex()
}

// SimulatePalette applies SimulateHex to each colour, preserving order.
func SimulatePalette(colours []string, d Deficiency) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = SimulateHex(c, d)
	}
	return out
}

// Distinguishable reports whether two colours remain more than threshold
// apart (Euclidean RGB distance) after simulating d.
func Distinguishable(hex1, hex2 string, d Deficiency, threshold float64) bool {
	c1, ok1 := ParseHex(hex1)
	c2, ok2 := ParseHex(hex2)
	if !ok1 || !ok2 {
		return false
	}
	return euclideanRGB(Simulate(c1, d), Simulate(c2, d)) > threshold
}

func euclideanRGB(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
