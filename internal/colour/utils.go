package colour

import (
	"math"
)

// WrapHue maps any angle in degrees into [0,360).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Mod of a tiny negative value can land exactly on 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(WrapHue(h1) - WrapHue(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// IsAnalogous checks if two hues are within 30° of each other.
func IsAnalogous(h1, h2 float64) bool {
	return HueDistance(h1, h2) <= 30
}

func roundHue(h float64) float64 {
	return WrapHue(math.Round(WrapHue(h)))
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
