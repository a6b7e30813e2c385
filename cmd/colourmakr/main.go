// Colourmakr - colour conversion, harmony and accessibility toolkit
//
// Colourmakr converts colours between notations, generates harmonies and
// shade scales, checks WCAG contrast and simulates colour vision deficiencies.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colourmakr/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
