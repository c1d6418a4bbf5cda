// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses operand text. Magnitudes beyond float64 range
// saturate to ±Inf instead of failing.
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return f, nil
}

// FormatNumber renders f as the shortest decimal that round-trips,
// using exponent form outside [1e-6, 1e21). The output never contains
// "+", so a result can be chained with the add operator.
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 0) {
		if f > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e-07 -> 1e-7, 1e+21 -> 1e21
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
		return strings.Replace(s, "e+", "e", 1)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return strings.TrimSuffix(s, ".")
}
