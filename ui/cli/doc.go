// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for keycalc using Cobra.
// It wires configuration, logging and i18n, then hands off to the TUI, the
// scripting evaluator, the history store or the HTTP keypad.
package cli
