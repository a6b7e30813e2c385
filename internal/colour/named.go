package colour

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
)

// NamedColour is a named reference colour.
type NamedColour struct {
	Name     string `json:"name" yaml:"name"`
	Hex      string `json:"hex" yaml:"hex"`
	Category string `json:"category" yaml:"category"`
}

// DistanceMetric selects how SimilarColours measures distance.
type DistanceMetric int

const (
	// MetricHexValue is the absolute difference of the 24-bit integer values.
	// It is cheap but not perceptual: a difference in the red channel weighs
	// 65536 times more than the same difference in blue.
	MetricHexValue DistanceMetric = iota
	// MetricEuclideanRGB is the straight-line distance in the RGB cube.
	MetricEuclideanRGB
)

// String returns the metric identifier.
func (m DistanceMetric) String() string {
	switch m {
	case MetricHexValue:
		return "hex"
	case MetricEuclideanRGB:
		return "rgb"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseDistanceMetric parses "hex" or "rgb".
func ParseDistanceMetric(s string) (DistanceMetric, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "":
		return MetricHexValue, true
	case "rgb", "euclidean":
		return MetricEuclideanRGB, true
	}
	return MetricHexValue, false
}

// Distance returns the distance between a and b under m.
func (m DistanceMetric) Distance(a, b RGB) float64 {
	if m == MetricEuclideanRGB {
		return euclideanRGB(a, b)
	}
	return math.Abs(float64(a.Value()) - float64(b.Value()))
}

// Match is a named colour paired with its distance from a query colour.
type Match struct {
	NamedColour
	Distance float64 `json:"distance" yaml:"distance"`
}

// NamedColours returns a copy of the named colour table.
func NamedColours() []NamedColour {
	return slices.Clone(namedColours)
}

// ColourByName looks up a named colour, ignoring case.
func ColourByName(name string) (NamedColour, bool) {
	for _, c := range namedColours {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return NamedColour{}, false
}

// ColoursByCategory returns the named colours in category, in table order.
func ColoursByCategory(category string) []NamedColour {
	var out []NamedColour
	for _, c := range namedColours {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the sorted set of named colour categories.
func Categories() []string {
	var cats []string
	for _, c := range namedColours {
		cats = append(cats, c.Category)
	}
	slices.Sort(cats)
	return slices.Compact(cats)
}

// SearchColours returns named colours whose name contains query, ignoring case.
func SearchColours(query string) []NamedColour {
	q := strings.ToLower(query)
	var out []NamedColour
	for _, c := range namedColours {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// SimilarColours returns up to count named colours closest to hex under
// metric, nearest first. Equal distances keep table order.
func SimilarColours(hex string, count int, metric DistanceMetric) []Match {
	target, ok := ParseHex(hex)
	if !ok || count <= 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(namedColours))
	for _, c := range namedColours {
		rgb, ok := ParseHex(c.Hex)
		if !ok {
			continue
		}
		matches = append(matches, Match{NamedColour: c, Distance: metric.Distance(target, rgb)})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})

	return matches[:min(count, len(matches))]
}

// NearestColourName returns the named colour closest to hex by integer value.
func NearestColourName(hex string) (NamedColour, bool) {
	matches := SimilarColours(hex, 1, MetricHexValue)
	if len(matches) == 0 {
		return NamedColour{}, false
	}
	return matches[0].NamedColour, true
}

// RandomNamedColour picks a named colour using r.
func RandomNamedColour(r *rand.Rand) NamedColour {
	return namedColours[r.IntN(len(namedColours))]
}
