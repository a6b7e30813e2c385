package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

func newNameCmd(a *app) *cobra.Command {
	metric := newChoiceValue("", colour.MetricHexValue.String(), colour.MetricEuclideanRGB.String())
	var count int

	cmd := &cobra.Command{
		Use:   "name <colour>",
		Short: "Find the nearest named CSS colours",
		Long: `Find the named CSS colours closest to a colour.

Two distance metrics are available:
  hex  difference between the 24-bit colour values (default)
  rgb  Euclidean distance in RGB space, closer to how colours look

Examples:
  colourmakr name "#3b82f6"
  colourmakr name --metric rgb --count 3 "#3b82f6"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColour(args[0])
			if err != nil {
				return err
			}

			n := a.cfg.SimilarCount
			if cmd.Flags().Changed("count") {
				n = count
			}
			if n < 1 {
				return fmt.Errorf("invalid count: %d (must be at least 1)", n)
			}
			m := a.cfg.DistanceMetric()
			if v := metric.String(); v != "" {
				m, _ = colour.ParseDistanceMetric(v)
			}
			a.logger.Debug("searching named colours", "colour", hex, "count", n, "metric", m)

			distance := "%.0f"
			if m == colour.MetricEuclideanRGB {
				distance = "%.2f"
			}
			t := a.newColourTable("NAME", "HEX", "CATEGORY", "DISTANCE")
			for _, match := range colour.SimilarColours(hex, n, m) {
				a.addColourRow(t, match.Hex, match.Name, match.Hex, match.Category, fmt.Sprintf(distance, match.Distance))
			}
			return t.Write(a.out)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of matches")
	cmd.Flags().VarP(metric, "metric", "m", "distance metric (hex, rgb)")

	return cmd
}

func newNamedCmd(a *app) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "named",
		Short: "List named CSS colours",
		Long: `List the named CSS colours, optionally filtered by category or by a
case-insensitive substring of the name.

Categories: ` + strings.Join(colour.Categories(), ", "),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			colours := colour.NamedColours()
			if category != "" {
				cat, ok := canonical(colour.Categories(), category)
				if !ok {
					return fmt.Errorf("invalid category: %s (valid: %s)", category, strings.Join(colour.Categories(), ", "))
				}
				colours = colour.ColoursByCategory(cat)
			}

			t := a.newColourTable("NAME", "HEX", "CATEGORY")
			for _, c := range colours {
				if !strings.Contains(c.Name, strings.ToLower(search)) {
					continue
				}
				a.addColourRow(t, c.Hex, c.Name, c.Hex, c.Category)
			}
			if t.Len() == 0 {
				a.logger.Warn("no colours matched", "category", category, "search", search)
				return nil
			}
			return t.Write(a.out)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list colours in this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only list colours whose name contains this text")

	return cmd
}

func newBrandsCmd(a *app) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List well-known brand colours",
		Long: `List the published colours of well-known brands, optionally filtered by
category or by a case-insensitive substring of the brand name.

Categories: ` + strings.Join(colour.BrandCategories(), ", "),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			brands := colour.SearchBrands(search)
			if category != "" {
				cat, ok := canonical(colour.BrandCategories(), category)
				if !ok {
					return fmt.Errorf("invalid category: %s (valid: %s)", category, strings.Join(colour.BrandCategories(), ", "))
				}
				brands = slices.DeleteFunc(brands, func(b colour.BrandColours) bool { return b.Category != cat })
			}

			t := NewTable("BRAND", "CATEGORY", "COLOURS")
			for _, b := range brands {
				cells := make([]string, len(b.Colors))
				for i, hex := range b.Colors {
					cells[i] = a.colourCell(hex)
				}
				t.AddRow(b.Brand, b.Category, strings.Join(cells, " "))
			}
			if t.Len() == 0 {
				a.logger.Warn("no brands matched", "category", category, "search", search)
				return nil
			}
			return t.Write(a.out)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list brands in this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only list brands whose name contains this text")

	return cmd
}

// canonical returns the entry of values equal to s ignoring case.
func canonical(values []string, s string) (string, bool) {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
