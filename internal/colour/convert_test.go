package colour

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   RGB
		wantOK bool
	}{
		{name: "with hash", input: "#ff0000", want: RGB{R: 255}, wantOK: true},
		{name: "without hash", input: "00ff00", want: RGB{G: 255}, wantOK: true},
		{name: "uppercase", input: "#3B82F6", want: RGB{R: 59, G: 130, B: 246}, wantOK: true},
		{name: "mixed case", input: "#aBcDeF", want: RGB{R: 171, G: 205, B: 239}, wantOK: true},
		{name: "shorthand rejected", input: "#abc", wantOK: false},
		{name: "too long", input: "#ff00001", wantOK: false},
		{name: "non hex digit", input: "#gg0000", wantOK: false},
		{name: "0x prefix", input: "0x1234", wantOK: false},
		{name: "sign", input: "+12345", wantOK: false},
		{name: "double hash", input: "##ff0000", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseHex(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormaliseHex(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"#ABC", "#aabbcc", true},
		{"abc", "#aabbcc", true},
		{" #FF0000 ", "#ff0000", true},
		{"3b82f6", "#3b82f6", true},
		{"#abcd", "", false},
		{"red", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormaliseHex(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormaliseHex(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsValidHex(t *testing.T) {
	tests := map[string]bool{
		"#abc":    true,
		"#AABBCC": true,
		"aabbcc":  false,
		"#abcd":   false,
		"#ggg":    false,
		"#":       false,
	}
	for input, want := range tests {
		if got := IsValidHex(input); got != want {
			t.Errorf("IsValidHex(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestRGBToHexClamps(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{255, 0, 0, "#ff0000"},
		{300, -5, 128, "#ff0080"},
		{-1, 256, 1000, "#00ffff"},
		{15, 16, 17, "#0f1011"},
	}
	for _, tt := range tests {
		if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBToHex(%d, %d, %d) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestHexRGBBijection(t *testing.T) {
	for v := 0; v < 1<<24; v += 4099 {
		rgb := RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
		got, ok := ParseHex(rgb.Hex())
		if !ok || got != rgb {
			t.Fatalf("ParseHex(%s) = %+v, %v; want %+v", rgb.Hex(), got, ok, rgb)
		}
		if got.Value() != uint32(v) {
			t.Fatalf("Value() = %#x, want %#x", got.Value(), v)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	const step = 3
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				rgb := NewRGB(r, g, b)
				if got := HSLToRGB(RGBToHSL(rgb)); got != rgb {
					t.Fatalf("HSL round trip of %s = %s", rgb.Hex(), got.Hex())
				}
				if got := HSVToRGB(RGBToHSV(rgb)); got != rgb {
					t.Fatalf("HSV round trip of %s = %s", rgb.Hex(), got.Hex())
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want HSL
	}{
		{name: "black", hex: "#000000", want: HSL{H: 0, S: 0, L: 0}},
		{name: "white", hex: "#FFFFFF", want: HSL{H: 0, S: 0, L: 100}},
		{name: "grey", hex: "#808080", want: HSL{H: 0, S: 0, L: 50}},
		{name: "red", hex: "#ff0000", want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", hex: "#00ff00", want: HSL{H: 120, S: 100, L: 50}},
		{name: "blue", hex: "#0000ff", want: HSL{H: 240, S: 100, L: 50}},
		{name: "magenta", hex: "#ff00ff", want: HSL{H: 300, S: 100, L: 50}},
		{name: "tailwind blue", hex: "#3b82f6", want: HSL{H: 217, S: 91, L: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToHSL(tt.hex)
			if !ok {
				t.Fatalf("HexToHSL(%q) failed", tt.hex)
			}
			if got.Round() != tt.want {
				t.Errorf("HexToHSL(%q).Round() = %+v, want %+v", tt.hex, got.Round(), tt.want)
			}
		})
	}
}

func TestAchromaticIsExactlyZero(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#7f7f7f"} {
		hsl, _ := HexToHSL(hex)
		hsv, _ := HexToHSV(hex)
		if hsl.H != 0 || hsl.S != 0 || hsv.H != 0 || hsv.S != 0 {
			t.Errorf("%s: hsl=%+v hsv=%+v, want zero hue and saturation", hex, hsl, hsv)
		}
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		hex  string
		want HSV
	}{
		{"#000000", HSV{H: 0, S: 0, V: 0}},
		{"#ffffff", HSV{H: 0, S: 0, V: 100}},
		{"#ff0000", HSV{H: 0, S: 100, V: 100}},
		{"#00ff00", HSV{H: 120, S: 100, V: 100}},
		{"#3b82f6", HSV{H: 217, S: 76, V: 96}},
	}
	for _, tt := range tests {
		got, ok := HexToHSV(tt.hex)
		if !ok {
			t.Fatalf("HexToHSV(%q) failed", tt.hex)
		}
		if got.Round() != tt.want {
			t.Errorf("HexToHSV(%q).Round() = %+v, want %+v", tt.hex, got.Round(), tt.want)
		}
	}
}

func TestHSLToRGBClampsInput(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want string
	}{
		{name: "negative hue wraps", hsl: HSL{H: -120, S: 100, L: 50}, want: "#0000ff"},
		{name: "hue above 360 wraps", hsl: HSL{H: 480, S: 100, L: 50}, want: "#00ff00"},
		{name: "saturation clamped", hsl: HSL{H: 0, S: 150, L: 50}, want: "#ff0000"},
		{name: "lightness clamped", hsl: HSL{H: 200, S: 50, L: 130}, want: "#ffffff"},
		{name: "negative lightness", hsl: HSL{H: 200, S: 50, L: -10}, want: "#000000"},
		{name: "grey", hsl: HSL{H: 0, S: 0, L: 50}, want: "#808080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToHex(tt.hsl); got != tt.want {
				t.Errorf("HSLToHex(%+v) = %s, want %s", tt.hsl, got, tt.want)
			}
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		hsv  HSV
		want string
	}{
		{HSV{H: 0, S: 100, V: 100}, "#ff0000"},
		{HSV{H: 120, S: 100, V: 100}, "#00ff00"},
		{HSV{H: 240, S: 100, V: 100}, "#0000ff"},
		{HSV{H: 0, S: 0, V: 50}, "#808080"},
		{HSV{H: 720, S: 100, V: 100}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := HSVToHex(tt.hsv); got != tt.want {
			t.Errorf("HSVToHex(%+v) = %s, want %s", tt.hsv, got, tt.want)
		}
	}
}

func TestRoundWrapsHue(t *testing.T) {
	got := HSL{H: 359.7, S: 10.4, L: 20.5}.Round()
	want := HSL{H: 0, S: 10, L: 21}
	if got != want {
		t.Errorf("Round() = %+v, want %+v", got, want)
	}
	if s := (HSL{H: 217.2, S: 91.2, L: 59.8}).String(); s != "hsl(217, 91%, 60%)" {
		t.Errorf("String() = %q", s)
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{name: "red", color: color.RGBA{R: 255, A: 255}, want: RGB{R: 255}},
		{name: "white", color: color.White, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", color: color.Black, want: RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.color); got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
	if got := ToRGB(RGB{R: 1, G: 2, B: 3}.Color()); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Color() round trip = %+v", got)
	}
}
