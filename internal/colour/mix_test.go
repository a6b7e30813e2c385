package colour

import (
	"math/rand/v2"
	"testing"
)

func TestMixColours(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		percent float64
		want    string
	}{
		{name: "zero keeps first", a: "#ff0000", b: "#0000ff", percent: 0, want: "#ff0000"},
		{name: "hundred gives second", a: "#ff0000", b: "#0000FF", percent: 100, want: "#0000ff"},
		{name: "half", a: "#000000", b: "#ffffff", percent: 50, want: "#808080"},
		{name: "quarter", a: "#000000", b: "#c8c8c8", percent: 25, want: "#323232"},
		{name: "clamped above", a: "#000000", b: "#ffffff", percent: 250, want: "#ffffff"},
		{name: "clamped below", a: "#000000", b: "#ffffff", percent: -10, want: "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MixColours(tt.a, tt.b, tt.percent)
			if !ok || got != tt.want {
				t.Errorf("MixColours(%s, %s, %v) = (%s, %v), want %s", tt.a, tt.b, tt.percent, got, ok, tt.want)
			}
		})
	}
	if _, ok := MixColours("#000000", "zzz", 50); ok {
		t.Error("MixColours() should fail on invalid input")
	}
}

func TestRandomPalette(t *testing.T) {
	a := RandomPalette(6, rand.New(rand.NewPCG(7, 7)))
	b := RandomPalette(6, rand.New(rand.NewPCG(7, 7)))
	if len(a) != 6 {
		t.Fatalf("RandomPalette(6) returned %d colours", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("same seed diverged at %d: %s vs %s", i, a[i], b[i])
		}
		if !IsValidHex(a[i]) {
			t.Errorf("RandomPalette produced invalid hex %q", a[i])
		}
	}
	if got := RandomPalette(-1, rand.New(rand.NewPCG(1, 1))); len(got) != 0 {
		t.Errorf("RandomPalette(-1) = %v, want empty", got)
	}
}

func TestTextColour(t *testing.T) {
	tests := map[string]string{
		"#ffffff": "#000000",
		"#ffff00": "#000000",
		"#000000": "#ffffff",
		"#0000ff": "#ffffff",
		"#818181": "#000000",
		"#808080": "#ffffff",
		"#7f7f7f": "#ffffff",
		"invalid": "#000000",
	}
	for hex, want := range tests {
		if got := TextColour(hex); got != want {
			t.Errorf("TextColour(%s) = %s, want %s", hex, got, want)
		}
	}
}

func TestLinearGradientCSS(t *testing.T) {
	g := LinearGradient{Angle: 90, Start: "#3b82f6", End: "#e4405f"}
	if got, want := g.CSS(), "linear-gradient(90deg, #3b82f6, #e4405f)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}
