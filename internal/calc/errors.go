// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "errors"

// Display texts that replace the display content when evaluation fails.
const (
	DisplayError        = "Error"
	DisplayDivideByZero = "Cannot divide by 0"
)

var (
	// ErrMalformedNumber is returned when display text cannot be parsed as an operand.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrMissingOperator is returned when "=" finds no pending operator glyph or no second operand.
	ErrMissingOperator = errors.New("missing operator")
	// ErrDivideByZero is returned for a division whose second operand is zero.
	ErrDivideByZero = errors.New("division by zero")
)

// DisplayFor returns the display text shown for an evaluation error.
func DisplayFor(err error) string {
	if errors.Is(err, ErrDivideByZero) {
		return DisplayDivideByZero
	}
	return DisplayError
}

// ErrorClass is a short label for err, used in logs and metrics.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivideByZero):
		return "divide_by_zero"
	case errors.Is(err, ErrMissingOperator):
		return "missing_operator"
	case errors.Is(err, ErrMalformedNumber):
		return "malformed_number"
	default:
		return "unexpected"
	}
}

// IsErrorDisplay reports whether s is one of the error display texts.
func IsErrorDisplay(s string) bool {
	return s == DisplayError || s == DisplayDivideByZero
}
