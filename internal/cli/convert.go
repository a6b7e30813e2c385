package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

func newConvertCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour as hex, RGB, HSL and HSV",
		Long: `Show a colour in every supported notation, together with its nearest
named CSS colour and the text colour (black or white) that reads best on it.

Examples:
  colourmakr convert "#3b82f6"
  colourmakr convert f00
  colourmakr convert rebeccapurple --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runConvert(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func (a *app) runConvert(arg string, asJSON bool) error {
	hex, err := parseColour(arg)
	if err != nil {
		return err
	}
	rgb, _ := colour.ParseHex(hex)
	a.logger.Debug("converting colour", "input", arg, "hex", hex)

	if asJSON {
		data, err := colour.NewPalette([]colour.RGB{rgb}).ToJSON()
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	}

	t := NewTable("FORMAT", "VALUE")
	t.AddRow("hex", hex)
	t.AddRow("rgb", rgb.String())
	t.AddRow("hsl", rgb.HSL().String())
	t.AddRow("hsv", rgb.HSV().String())
	if matches := colour.SimilarColours(hex, 1, a.cfg.DistanceMetric()); len(matches) > 0 {
		name := matches[0].Name
		if matches[0].Distance > 0 {
			name = "~" + name
		}
		t.AddRow("name", name)
	}
	t.AddRow("text", colour.TextColour(hex))
	if a.showPreview {
		t.AddRow("preview", colour.ColourPreviewWithText(rgb, hex, 12))
	}

	return t.Write(a.out)
}
