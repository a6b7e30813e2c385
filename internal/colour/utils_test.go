package colour

import (
	"math"
	"testing"
)

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 360, want: 0},
		{in: 725, want: 5},
		{in: -30, want: 330},
		{in: -720, want: 0},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: 0},
	}
	for _, tt := range tests {
		if got := WrapHue(tt.in); got != tt.want {
			t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{h1: 350, h2: 10, want: 20},
		{h1: 10, h2: 350, want: 20},
		{h1: 0, h2: 180, want: 180},
		{h1: 90, h2: 450, want: 0},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); got != tt.want {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}

	if !IsAnalogous(350, 15) {
		t.Error("IsAnalogous(350, 15) = false, want true")
	}
	if IsAnalogous(0, 31) {
		t.Error("IsAnalogous(0, 31) = true, want false")
	}
}
