package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

func deficiencyIDs() []string {
	infos := colour.Deficiencies()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

func newSimulateCmd(a *app) *cobra.Command {
	ids := deficiencyIDs()
	kind := newChoiceValue("", ids...)
	var (
		all       bool
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "simulate <colour>...",
		Short: "Simulate colour vision deficiencies",
		Long: `Show how colours appear to people with a colour vision deficiency.

Types: ` + strings.Join(ids, ", ") + `

With --all, every type is shown in a table. When exactly two colours are
given the table also reports whether they remain distinguishable.

Examples:
  colourmakr simulate --type deuteranopia "#ff0000" "#00ff00"
  colourmakr simulate --all red green`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			if threshold < 0 {
				return fmt.Errorf("invalid threshold: %v (must not be negative)", threshold)
			}

			if !all {
				d, _ := colour.ParseDeficiency(kind.String())
				a.logger.Debug("simulating deficiency", "type", d, "colours", len(colours))
				return a.printColours(colour.SimulatePalette(colours, d))
			}
			return a.simulateAll(colours, threshold)
		},
	}

	cmd.Flags().VarP(kind, "type", "t", "deficiency type ("+strings.Join(ids, ", ")+")")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "simulate every deficiency type")
	cmd.Flags().Float64Var(&threshold, "threshold", colour.DefaultDistinguishThreshold, "minimum RGB distance for two colours to count as distinguishable")
	cmd.MarkFlagsOneRequired("type", "all")
	cmd.MarkFlagsMutuallyExclusive("type", "all")

	return cmd
}

func (a *app) simulateAll(colours []string, threshold float64) error {
	pair := len(colours) == 2

	headers := []string{"TYPE"}
	headers = append(headers, colours...)
	if pair {
		headers = append(headers, "DISTINCT")
	}
	headers = append(headers, "PREVALENCE")
	t := NewTable(headers...)

	for _, info := range colour.Deficiencies() {
		row := []string{info.ID}
		for _, hex := range colour.SimulatePalette(colours, info.Deficiency) {
			row = append(row, a.colourCell(hex))
		}
		if pair {
			distinct := "no"
			if colour.Distinguishable(colours[0], colours[1], info.Deficiency, threshold) {
				distinct = "yes"
			}
			row = append(row, distinct)
		}
		row = append(row, info.Prevalence)
		t.AddRow(row...)
	}

	return t.Write(a.out)
}
