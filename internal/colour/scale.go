package colour

// ScaleStop is one entry of a shade scale.
type ScaleStop struct {
	Scale int    `json:"scale" yaml:"scale"`
	Color string `json:"color" yaml:"color"`
}

// DefaultTintSteps is the number of tints or shades generated when unspecified.
const DefaultTintSteps = 5

// scaleStops are the Tailwind-style stop labels; 500 sits closest to the input.
var scaleStops = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

const (
	scaleLightest   = 95.0
	scaleDarkFactor = 0.9
)

// ScaleStops returns the stop labels used by ShadeScale.
func ScaleStops() []int {
	stops := make([]int, len(scaleStops))
	copy(stops, scaleStops[:])
	return stops
}

// Tints returns steps colours stepping lightness linearly from the base
// towards white. Neither the base nor pure white is included.
func Tints(hex string, steps int) []string {
	base, ok := HexToHSL(hex)
	if !ok || steps <= 0 {
		return []string{}
	}
	tints := make([]string, steps)
	for i := 1; i <= steps; i++ {
		l := base.L + float64(i)*(100-base.L)/float64(steps+1)
		tints[i-1] = withLightness(base, l)
	}
	return tints
}

// Shades returns steps colours stepping lightness linearly from the base
// towards black. Neither the base nor pure black is included.
func Shades(hex string, steps int) []string {
	base, ok := HexToHSL(hex)
	if !ok || steps <= 0 {
		return []string{}
	}
	shades := make([]string, steps)
	for i := 1; i <= steps; i++ {
		l := base.L - float64(i)*base.L/float64(steps+1)
		shades[i-1] = withLightness(base, l)
	}
	return shades
}

// ShadeScale returns an 11 stop scale from 50 (near white) to 950 (near black).
// Stops up to 500 interpolate from lightness 95 down to the base lightness;
// stops above 500 darken the base by up to 90%.
func ShadeScale(hex string) []ScaleStop {
	base, ok := HexToHSL(hex)
	if !ok {
		return []ScaleStop{}
	}
	scale := make([]ScaleStop, len(scaleStops))
	for i, stop := range scaleStops {
		scale[i] = ScaleStop{Scale: stop, Color: withLightness(base, stopLightness(stop, base.L))}
	}
	return scale
}

func stopLightness(stop int, baseL float64) float64 {
	t := float64(stop) / 500
	if stop <= 500 {
		return scaleLightest - t*(scaleLightest-baseL)
	}
	return baseL - (t-1)*baseL*scaleDarkFactor
}
