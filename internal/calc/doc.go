// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calc implements the keypad expression accumulator: a state
// machine fed with digit, decimal, operator, equals, delete, clear and
// clear-history keys that produces a display string and a log of
// completed calculations.
//
// Step is the pure transition function over an explicit State value.
// Accumulator wraps it with the history log and the display/history sinks
// a host renders from.
package calc
