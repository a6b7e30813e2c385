package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/colourmakr/internal/colour"
	"github.com/jmylchreest/colourmakr/internal/config"
)

const swatchWidth = 4

// parseColour accepts #rrggbb, #rgb (the # is optional) or a CSS colour name
// and returns the normalised hex form.
func parseColour(arg string) (string, error) {
	if hex, ok := colour.NormaliseHex(arg); ok {
		return hex, nil
	}
	if named, ok := colour.ColourByName(strings.TrimSpace(arg)); ok {
		return named.Hex, nil
	}
	return "", fmt.Errorf("invalid colour: %q (expected #rrggbb, #rgb or a CSS colour name)", arg)
}

func parseColours(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		hex, err := parseColour(arg)
		if err != nil {
			return nil, err
		}
		out[i] = hex
	}
	return out, nil
}

// previewEnabled resolves a preview mode against the output writer; auto
// shows swatches only when writing to a terminal.
func previewEnabled(mode config.PreviewMode, w io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch returns a colour block for hex, or "" when previews are off.
func (a *app) swatch(hex string) string {
	if !a.showPreview {
		return ""
	}
	rgb, ok := colour.ParseHex(hex)
	if !ok {
		return ""
	}
	return colour.ColourPreview(rgb, swatchWidth)
}

// printColours writes one colour per line, with a swatch when enabled.
func (a *app) printColours(colours []string) error {
	for _, hex := range colours {
		if _, err := fmt.Fprintln(a.out, a.colourCell(hex)); err != nil {
			return err
		}
	}
	return nil
}

// heading writes the title of section index unless output is quiet.
// Sections after the first are separated by a blank line.
func (a *app) heading(index int, title string) {
	if a.quiet {
		return
	}
	if index > 0 {
		fmt.Fprintln(a.out)
	}
	fmt.Fprintf(a.out, "%s:\n", title)
}

// colourCell is a table cell showing hex with its swatch.
func (a *app) colourCell(hex string) string {
	rgb, ok := colour.ParseHex(hex)
	if !a.showPreview || !ok {
		return hex
	}
	return colour.FormatColourWithPreview(rgb, swatchWidth)
}

// newColourTable returns a table whose first column holds swatches when
// previews are enabled.
func (a *app) newColourTable(headers ...string) *Table {
	if a.showPreview {
		headers = append([]string{""}, headers...)
	}
	return NewTable(headers...)
}

// addColourRow adds a row to a table from newColourTable.
func (a *app) addColourRow(t *Table, hex string, cells ...string) {
	if a.showPreview {
		cells = append([]string{a.swatch(hex)}, cells...)
	}
	t.AddRow(cells...)
}
