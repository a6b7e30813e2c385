package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/colour"
	"github.com/jmylchreest/colourmakr/internal/export"
)

type exportOptions struct {
	format        *choiceValue
	name          string
	gradientStart string
	gradientEnd   string
	angle         int
	scale         bool
	output        string
	dumpTemplates bool
	force         bool
}

func newExportCmd(a *app) *cobra.Command {
	formatNames := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formatNames = append(formatNames, string(f))
	}
	opts := &exportOptions{format: newChoiceValue("", formatNames...)}

	cmd := &cobra.Command{
		Use:   "export <colour>...",
		Short: "Export colours as CSS, SCSS, JSON, YAML or Tailwind config",
		Long: `Export a palette as CSS custom properties, SCSS variables, JSON, YAML or a
Tailwind CSS config snippet.

The css, scss and tailwind formats are rendered from templates. Run
"colourmakr export --dump-templates" to copy the built-in templates into your
config directory, where edited copies take precedence.

Examples:
  # CSS custom properties
  colourmakr export "#ff0000" "#00ff00"

  # SCSS variables with a gradient
  colourmakr export -f scss --gradient-start red --gradient-end blue red blue

  # Tailwind colour scale for a brand colour
  colourmakr export -f tailwind --name brand "#3b82f6"

  # Write a YAML file
  colourmakr export -f yaml -o palette.yaml "#ff0000" "#00ff00"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.dumpTemplates {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dumpTemplates {
				return a.dumpTemplates(opts.force)
			}
			return a.runExport(cmd, args, opts)
		},
	}

	cmd.Flags().VarP(opts.format, "format", "f", "output format ("+strings.Join(formatNames, ", ")+")")
	cmd.Flags().StringVar(&opts.name, "name", "", "palette name, used as the variable prefix for scales")
	cmd.Flags().StringVar(&opts.gradientStart, "gradient-start", "", "gradient start colour")
	cmd.Flags().StringVar(&opts.gradientEnd, "gradient-end", "", "gradient end colour")
	cmd.Flags().IntVar(&opts.angle, "angle", 90, "gradient angle in degrees")
	cmd.Flags().BoolVar(&opts.scale, "scale", false, "include a 50-950 shade scale of the first colour")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.dumpTemplates, "dump-templates", false, "copy the built-in templates to the template directory and exit")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite existing templates when dumping")
	cmd.MarkFlagsRequiredTogether("gradient-start", "gradient-end")

	return cmd
}

func (a *app) runExport(cmd *cobra.Command, args []string, opts *exportOptions) error {
	colours, err := parseColours(args)
	if err != nil {
		return err
	}

	format := export.Format(a.cfg.Format)
	if v := opts.format.String(); v != "" {
		format = export.Format(v)
	}

	doc := export.Document{Name: opts.name, Colors: colours}
	if opts.gradientStart != "" {
		start, err := parseColour(opts.gradientStart)
		if err != nil {
			return fmt.Errorf("invalid gradient start: %w", err)
		}
		end, err := parseColour(opts.gradientEnd)
		if err != nil {
			return fmt.Errorf("invalid gradient end: %w", err)
		}
		doc.Gradient = &colour.LinearGradient{Angle: opts.angle, Start: start, End: end}
	} else if cmd.Flags().Changed("angle") {
		a.logger.Warn("--angle has no effect without --gradient-start and --gradient-end")
	}
	if opts.scale {
		doc.Scale = colour.ShadeScale(colours[0])
	}

	renderer := export.NewRenderer(export.NewLoader(a.cfg.TemplateDir), a.logger.Named("export"))
	data, err := renderer.Render(format, doc)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if opts.output == "" {
		_, err := a.out.Write(data)
		return err
	}

	a.logger.Debug("writing export", "path", opts.output, "format", format)
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func (a *app) dumpTemplates(force bool) error {
	if a.cfg.TemplateDir == "" {
		return errors.New("no template directory: set template_dir in the config file or COLOURMAKR_TEMPLATE_DIR")
	}

	loader := export.NewLoader(a.cfg.TemplateDir)
	dumped, err := loader.DumpAllTemplates(force)
	for _, path := range dumped {
		fmt.Fprintln(a.out, path)
	}
	if err != nil {
		return fmt.Errorf("failed to dump templates: %w", err)
	}
	return nil
}
