package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

// WCAG large text: 18pt (24px) regular or 14pt (18.5px) bold.
const (
	largeTextPx     = 24.0
	largeBoldTextPx = 18.5
)

func isLargeText(px float64, bold bool) bool {
	return px >= largeTextPx || (bold && px >= largeBoldTextPx)
}

func minimumRatio(level colour.Level, size colour.TextSize) float64 {
	switch {
	case level == colour.LevelAAA && size == colour.SizeNormal:
		return colour.RatioAAANormal
	case level == colour.LevelAAA:
		return colour.RatioAAALarge
	case size == colour.SizeNormal:
		return colour.RatioAANormal
	default:
		return colour.RatioAALarge
	}
}

func newContrastCmd(a *app) *cobra.Command {
	var (
		fontSize float64
		bold     bool
		suggest  bool
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check WCAG 2.1 contrast between two colours",
		Long: `Calculate the WCAG 2.1 contrast ratio between a text (foreground) colour
and a background colour, and report which conformance levels it meets.

Text of 24px, or 18.5px when bold, counts as large text.

Examples:
  colourmakr contrast "#777777" white
  colourmakr contrast --font-size 20 --bold "#777777" white
  colourmakr contrast --suggest yellow white`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if fontSize <= 0 {
				return fmt.Errorf("invalid font size: %v (must be positive)", fontSize)
			}
			return a.runContrast(args[0], args[1], fontSize, bold, suggest)
		},
	}

	cmd.Flags().Float64Var(&fontSize, "font-size", 16, "text size in pixels")
	cmd.Flags().BoolVar(&bold, "bold", false, "text is bold")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "suggest a foreground that meets AA when the pair fails")

	return cmd
}

func (a *app) runContrast(fgArg, bgArg string, fontSize float64, bold, suggest bool) error {
	fg, err := parseColour(fgArg)
	if err != nil {
		return err
	}
	bg, err := parseColour(bgArg)
	if err != nil {
		return err
	}

	ratio, _ := colour.HexContrastRatio(fg, bg)
	size := colour.SizeNormal
	if isLargeText(fontSize, bold) {
		size = colour.SizeLarge
	}
	a.logger.Debug("checking contrast", "foreground", fg, "background", bg, "ratio", ratio, "size", size)

	weight := ""
	if bold {
		weight = " bold"
	}
	fmt.Fprintf(a.out, "Contrast ratio: %.2f:1 (%s, score %d/100)\n", ratio, colour.ContrastDescription(ratio), colour.ContrastScore(ratio))
	fmt.Fprintf(a.out, "Text size: %s (%gpx%s)\n", size, fontSize, weight)
	if a.showPreview {
		fgRGB, _ := colour.ParseHex(fg)
		bgRGB, _ := colour.ParseHex(bg)
		fmt.Fprintf(a.out, "Sample: %s\n", colour.SampleText(fgRGB, bgRGB, " The quick brown fox "))
	}
	fmt.Fprintln(a.out)

	t := NewTable("LEVEL", "SIZE", "MINIMUM", "RESULT")
	for _, r := range colour.WCAGRating(ratio) {
		result := "fail"
		if r.Passes {
			result = "pass"
		}
		t.AddRow(string(r.Level), string(r.Size), fmt.Sprintf("%.1f:1", minimumRatio(r.Level, r.Size)), result)
	}
	if err := t.Write(a.out); err != nil {
		return err
	}

	if !suggest || colour.MeetsWCAG(ratio, colour.LevelAA, size) {
		return nil
	}

	target := minimumRatio(colour.LevelAA, size)
	better := colour.SuggestAccessibleColour(bg, fg, target)
	if better == fg {
		fmt.Fprintf(a.out, "\nNo scaled variant of %s reaches %.1f:1 on %s.\n", fg, target, bg)
		return nil
	}
	betterRatio, _ := colour.HexContrastRatio(better, bg)
	fmt.Fprintf(a.out, "\nSuggested foreground: %s (%.2f:1)\n", a.colourCell(better), betterRatio)
	return nil
}
