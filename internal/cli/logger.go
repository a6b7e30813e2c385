package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the command logger. Verbose enables debug output, quiet
// limits output to errors, and the default shows warnings and above.
func newLogger(verbose, quiet bool, w io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourmakr",
		Level:  level,
		Output: w,
	})
}
