// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keycalc.
//
// Usage:
//
//	go run . [flags]
//	./keycalc [flags]
//
// This launches the keypad, or evaluates keys piped on stdin. See --help.
package main

import (
	"os"

	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("keycalc: %v", err)
		os.Exit(1)
	}
}
