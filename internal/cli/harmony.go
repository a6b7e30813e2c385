package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

func harmonyNames() []string {
	hs := colour.Harmonies()
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = h.String()
	}
	return names
}

func newHarmonyCmd(a *app) *cobra.Command {
	names := harmonyNames()
	kind := newChoiceValue(colour.HarmonyComplementary.String(), names...)
	var (
		all   bool
		angle float64
		count int
	)

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Generate a colour harmony",
		Long: `Generate colours that harmonise with a base colour by rotating its hue
(or, for monochromatic, varying its lightness).

Harmony types: ` + strings.Join(names, ", ") + `

Examples:
  # Complementary colour (default)
  colourmakr harmony "#e4405f"

  # Analogous colours 45° either side
  colourmakr harmony --type analogous --angle 45 "#e4405f"

  # Seven monochromatic variations
  colourmakr harmony -t monochromatic -n 7 "#3b82f6"

  # Every harmony at once
  colourmakr harmony --all "#3b82f6"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColour(args[0])
			if err != nil {
				return err
			}

			opts := a.cfg.HarmonyOptions()
			if cmd.Flags().Changed("angle") {
				opts.Angle = angle
			}
			if cmd.Flags().Changed("count") {
				opts.Count = count
			}
			if opts.Angle <= 0 || opts.Angle > 180 {
				return fmt.Errorf("invalid angle: %v (must be in (0, 180])", opts.Angle)
			}
			if opts.Count < 1 {
				return fmt.Errorf("invalid count: %d (must be at least 1)", opts.Count)
			}

			if all {
				for i, h := range colour.Harmonies() {
					a.heading(i, h.String())
					if err := a.printColours(colour.Generate(h, hex, opts)); err != nil {
						return err
					}
				}
				return nil
			}

			h, _ := colour.ParseHarmony(kind.String())
			a.logger.Debug("generating harmony", "type", h, "base", hex, "angle", opts.Angle, "count", opts.Count)
			return a.printColours(colour.Generate(h, hex, opts))
		},
	}

	cmd.Flags().VarP(kind, "type", "t", "harmony type ("+strings.Join(names, ", ")+")")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show every harmony")
	cmd.Flags().Float64Var(&angle, "angle", colour.DefaultAnalogousAngle, "analogous hue offset in degrees")
	cmd.Flags().IntVarP(&count, "count", "n", colour.DefaultMonochromaticCount, "number of monochromatic variations")
	cmd.MarkFlagsMutuallyExclusive("type", "all")

	return cmd
}

func newTintsCmd(a *app) *cobra.Command {
	return newLightnessCmd(a, "tints", "Generate lighter tints of a colour", colour.Tints)
}

func newShadesCmd(a *app) *cobra.Command {
	return newLightnessCmd(a, "shades", "Generate darker shades of a colour", colour.Shades)
}

// newLightnessCmd builds the tints and shades commands, which differ only in
// the generator.
func newLightnessCmd(a *app, name, short string, generate func(string, int) []string) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   name + " <colour>",
		Short: short,
		Long: short + `, holding hue and saturation fixed.
Steps are evenly spaced and never reach pure white or black.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColour(args[0])
			if err != nil {
				return err
			}

			n := a.cfg.TintSteps
			if cmd.Flags().Changed("steps") {
				n = steps
			}
			if n < 1 {
				return fmt.Errorf("invalid steps: %d (must be at least 1)", n)
			}

			a.logger.Debug("generating "+name, "base", hex, "steps", n)
			return a.printColours(generate(hex, n))
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", colour.DefaultTintSteps, "number of steps")

	return cmd
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <colour>",
		Short: "Generate a 50-950 shade scale",
		Long: `Generate an eleven stop shade scale (50, 100, 200 ... 900, 950) in the
style of Tailwind CSS. Stop 500 is the base colour.

Use "colourmakr export --scale" to write the scale as CSS or Tailwind config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			hex, err := parseColour(args[0])
			if err != nil {
				return err
			}

			t := a.newColourTable("STOP", "HEX", "HSL")
			for _, stop := range colour.ShadeScale(hex) {
				hsl, _ := colour.HexToHSL(stop.Color)
				a.addColourRow(t, stop.Color, strconv.Itoa(stop.Scale), stop.Color, hsl.String())
			}
			return t.Write(a.out)
		},
	}
}
