package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

func newMixCmd(a *app) *cobra.Command {
	var percent float64

	cmd := &cobra.Command{
		Use:   "mix <colour> <colour>",
		Short: "Blend two colours",
		Long: `Blend the second colour into the first. --percent 0 returns the first
colour, 100 returns the second.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			if percent < 0 || percent > 100 {
				return fmt.Errorf("invalid percent: %v (must be between 0 and 100)", percent)
			}

			mixed, _ := colour.MixColours(colours[0], colours[1], percent)
			a.logger.Debug("mixed colours", "a", colours[0], "b", colours[1], "percent", percent, "result", mixed)
			return a.printColours([]string{mixed})
		},
	}

	cmd.Flags().Float64VarP(&percent, "percent", "p", 50, "amount of the second colour (0-100)")

	return cmd
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		count int
		seed  uint64
		named bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random colours",
		Long: `Generate random colours, or pick random named CSS colours with --named.
Pass --seed for repeatable output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("invalid count: %d (must be at least 1)", count)
			}

			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed))
			} else {
				r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}

			if !named {
				return a.printColours(colour.RandomPalette(count, r))
			}

			for range count {
				c := colour.RandomNamedColour(r)
				line := fmt.Sprintf("%-20s %s", c.Name, c.Hex)
				if rgb, ok := colour.ParseHex(c.Hex); ok && a.showPreview {
					line = colour.FormatColourWithLabel(rgb, c.Name, swatchWidth)
				}
				if _, err := fmt.Fprintln(a.out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of colours")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for repeatable output")
	cmd.Flags().BoolVar(&named, "named", false, "pick named CSS colours")

	return cmd
}

func newGradientCmd(a *app) *cobra.Command {
	var angle int

	cmd := &cobra.Command{
		Use:   "gradient <start> <end>",
		Short: "Print a CSS linear gradient",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			g := colour.LinearGradient{Angle: angle, Start: colours[0], End: colours[1]}
			_, err = fmt.Fprintln(a.out, g.CSS())
			return err
		},
	}

	cmd.Flags().IntVar(&angle, "angle", 90, "gradient angle in degrees")

	return cmd
}
