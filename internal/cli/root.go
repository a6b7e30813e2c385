// Package cli provides the command-line interface for colourmakr.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourmakr/internal/config"
	"github.com/jmylchreest/colourmakr/internal/version"
)

// app is the state shared by every command in one invocation.
type app struct {
	// Global flags.
	verbose    bool
	quiet      bool
	configPath string
	preview    *choiceValue

	cfg         *config.Config
	logger      hclog.Logger
	out         io.Writer
	showPreview bool
}

// NewRootCmd builds a fresh command tree. Each call is independent, so tests
// can execute several trees in one process.
func NewRootCmd() *cobra.Command {
	a := &app{
		preview: newChoiceValue("", string(config.PreviewAuto), string(config.PreviewAlways), string(config.PreviewNever)),
		logger:  hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "colourmakr",
		Short: "Colour conversion, harmony and accessibility toolkit",
		Long: `colourmakr converts colours between hex, RGB, HSL and HSV, generates
harmonies, tints and shade scales, checks WCAG contrast, simulates colour
vision deficiencies and finds the nearest named CSS colours.

Colours may be given as #rrggbb, #rgb (with or without the #) or as a CSS
colour name such as "rebeccapurple".`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.configPath, "config", "", "config file (default: "+displayPath(config.DefaultPath())+")")
	flags.Var(a.preview, "preview", "show colour swatches (auto, always, never)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(a),
		newHarmonyCmd(a),
		newTintsCmd(a),
		newShadesCmd(a),
		newScaleCmd(a),
		newContrastCmd(a),
		newSimulateCmd(a),
		newNameCmd(a),
		newNamedCmd(a),
		newBrandsCmd(a),
		newMixCmd(a),
		newGradientCmd(a),
		newRandomCmd(a),
		newExportCmd(a),
	)

	return rootCmd
}

// setup loads configuration and prepares logging and output for a command.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(a.verbose, a.quiet, cmd.ErrOrStderr())
	a.out = cmd.OutOrStdout()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		a.logger.Debug("loaded config", "path", cfg.Source)
	} else {
		a.logger.Debug("no config file, using defaults")
	}

	if v := a.preview.String(); v != "" {
		cfg.Preview = config.PreviewMode(v)
	}
	a.cfg = cfg
	a.showPreview = previewEnabled(cfg.Preview, a.out)
	a.logger.Debug("output settings", "preview", cfg.Preview, "swatches", a.showPreview)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func displayPath(p string) string {
	if p == "" {
		return "none"
	}
	return p
}
