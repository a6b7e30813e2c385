package colour

import (
	"slices"
	"strings"
)

// BrandColours is the published palette of a brand.
type BrandColours struct {
	Brand    string   `json:"brand" yaml:"brand"`
	Colors   []string `json:"colors" yaml:"colors"`
	Category string   `json:"category" yaml:"category"`
}

func (b BrandColours) clone() BrandColours {
	b.Colors = slices.Clone(b.Colors)
	return b
}

// Brands returns a copy of the brand colour table.
func Brands() []BrandColours {
	return filterBrands(func(BrandColours) bool { return true })
}

// BrandsByCategory returns the brands in category, in table order.
func BrandsByCategory(category string) []BrandColours {
	return filterBrands(func(b BrandColours) bool { return b.Category == category })
}

// BrandCategories returns the sorted set of brand categories.
func BrandCategories() []string {
	var cats []string
	for _, b := range brandColours {
		cats = append(cats, b.Category)
	}
	slices.Sort(cats)
	return slices.Compact(cats)
}

// SearchBrands returns brands whose name contains query, ignoring case.
func SearchBrands(query string) []BrandColours {
	q := strings.ToLower(query)
	return filterBrands(func(b BrandColours) bool {
		return strings.Contains(strings.ToLower(b.Brand), q)
	})
}

func filterBrands(keep func(BrandColours) bool) []BrandColours {
	var out []BrandColours
	for _, b := range brandColours {
		if keep(b) {
			out = append(out, b.clone())
		}
	}
	return out
}
