package colour

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func matchNames(matches []Match) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}

func TestNamedColourTable(t *testing.T) {
	colours := NamedColours()
	if len(colours) != 141 {
		t.Errorf("NamedColours() has %d entries, want 141", len(colours))
	}
	for _, c := range colours {
		if norm, ok := NormaliseHex(c.Hex); !ok || norm != c.Hex {
			t.Errorf("%s has non-canonical hex %q", c.Name, c.Hex)
		}
		if c.Category == "" {
			t.Errorf("%s has no category", c.Name)
		}
	}

	// Mutating the copy must not affect the table.
	colours[0].Name = "changed"
	if NamedColours()[0].Name == "changed" {
		t.Error("NamedColours() returned the backing table")
	}
}

func TestSimilarColours(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		count  int
		metric DistanceMetric
		want   []string
	}{
		{name: "black", hex: "#000000", count: 3, metric: MetricHexValue, want: []string{"black", "navy", "darkblue"}},
		{name: "ties keep table order", hex: "#00FFFF", count: 2, metric: MetricHexValue, want: []string{"aqua", "cyan"}},
		// The integer metric weighs red far above blue, so a blue can land
		// closest to a green.
		{name: "integer metric", hex: "#3b82f6", count: 3, metric: MetricHexValue, want: []string{"mediumseagreen", "turquoise", "royalblue"}},
		{name: "euclidean metric", hex: "#3b82f6", count: 3, metric: MetricEuclideanRGB, want: []string{"royalblue", "dodgerblue", "cornflowerblue"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchNames(SimilarColours(tt.hex, tt.count, tt.metric))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SimilarColours() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimilarColoursDistances(t *testing.T) {
	matches := SimilarColours("#fe0101", 2, MetricHexValue)
	want := []Match{
		{NamedColour: NamedColour{Name: "oldlace", Hex: "#fdf5e6", Category: "white"}, Distance: 2843},
		{NamedColour: NamedColour{Name: "red", Hex: "#ff0000", Category: "red"}, Distance: 65279},
	}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("SimilarColours() mismatch (-want +got):\n%s", diff)
	}
}

func TestSimilarColoursEdgeCases(t *testing.T) {
	if got := SimilarColours("bad", 5, MetricHexValue); got == nil || len(got) != 0 {
		t.Errorf("SimilarColours(bad) = %#v, want empty", got)
	}
	if got := SimilarColours("#000000", 0, MetricHexValue); len(got) != 0 {
		t.Errorf("SimilarColours(count=0) = %v, want empty", got)
	}
	if got := SimilarColours("#000000", 1000, MetricHexValue); len(got) != 141 {
		t.Errorf("SimilarColours(count=1000) returned %d, want whole table", len(got))
	}
}

func TestNearestColourName(t *testing.T) {
	tests := map[string]string{
		"#FF0000": "red",
		"#ff00ff": "fuchsia",
		"#000001": "black",
		"#808081": "gray",
	}
	for hex, want := range tests {
		got, ok := NearestColourName(hex)
		if !ok || got.Name != want {
			t.Errorf("NearestColourName(%s) = (%q, %v), want %q", hex, got.Name, ok, want)
		}
	}
	if _, ok := NearestColourName("#12"); ok {
		t.Error("NearestColourName() should fail for invalid input")
	}
}

func TestColourLookups(t *testing.T) {
	if c, ok := ColourByName("RebeccaPurple"); !ok || c.Hex != "#663399" {
		t.Errorf("ColourByName(RebeccaPurple) = (%+v, %v)", c, ok)
	}
	if _, ok := ColourByName("notacolour"); ok {
		t.Error("ColourByName(notacolour) should fail")
	}

	cats := Categories()
	if !slices.IsSorted(cats) || len(cats) != 12 {
		t.Errorf("Categories() = %v, want 12 sorted entries", cats)
	}

	if got := len(ColoursByCategory("gray")); got != 9 {
		t.Errorf("ColoursByCategory(gray) returned %d, want 9", got)
	}

	for _, c := range SearchColours("SEA") {
		if !slices.Contains([]string{"darkseagreen", "lightseagreen", "mediumseagreen", "seagreen", "seashell"}, c.Name) {
			t.Errorf("SearchColours(SEA) returned unexpected %s", c.Name)
		}
	}
}

func TestParseDistanceMetric(t *testing.T) {
	for _, m := range []DistanceMetric{MetricHexValue, MetricEuclideanRGB} {
		got, ok := ParseDistanceMetric(m.String())
		if !ok || got != m {
			t.Errorf("ParseDistanceMetric(%q) = (%v, %v)", m.String(), got, ok)
		}
	}
	if _, ok := ParseDistanceMetric("lab"); ok {
		t.Error("ParseDistanceMetric(lab) should fail")
	}
}

func TestRandomNamedColourDeterministic(t *testing.T) {
	a := RandomNamedColour(rand.New(rand.NewPCG(1, 2)))
	b := RandomNamedColour(rand.New(rand.NewPCG(1, 2)))
	if a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}
