// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"strings"
)

// State is the accumulator's in-progress expression. The zero value is
// the initial state: empty display, zero operands, no pending operator.
type State struct {
	Display string
	Num1    float64
	Num2    float64
	Result  float64
	Op      Operator
}

// Options toggles fixes for two quirks of the classic keypad. With both
// false the accumulator keeps those quirks.
type Options struct {
	// SegmentDecimal limits the one-decimal-point check to the operand
	// after the pending operator instead of the whole display.
	SegmentDecimal bool
	// ResetAfterError makes digit, decimal and operator keys start from an
	// empty display when it currently shows an error text.
	ResetAfterError bool
}

// Transition is the outcome of applying one key.
type Transition struct {
	State State
	// Entry is set when "=" completed a calculation.
	Entry *Entry
	// ResetHistory is set by the clear-history key.
	ResetHistory bool
	// Err classifies a failed evaluation. The display already shows the
	// matching error text.
	Err error
}

// Step applies k to s and returns the next state. It never mutates s.
func Step(s State, k Key, opts Options) Transition {
	if opts.ResetAfterError && IsErrorDisplay(s.Display) {
		switch k.Kind {
		case KeyDigit, KeyDecimal, KeyOperator:
			s.Display = ""
		}
	}

	switch k.Kind {
	case KeyDigit:
		s.Display += string(k.Digit)
	case KeyDecimal:
		if !strings.Contains(decimalScope(s, opts), ".") {
			s.Display += "."
		}
	case KeyOperator:
		return pressOperator(s, k.Op)
	case KeyEquals:
		return pressEquals(s)
	case KeyDelete:
		if s.Display != "" {
			s.Display = s.Display[:len(s.Display)-1]
		}
	case KeyClear:
		s = State{}
	case KeyClearHistory:
		return Transition{State: s, ResetHistory: true}
	}
	return Transition{State: s}
}

// decimalScope is the text scanned for an existing decimal point.
func decimalScope(s State, opts Options) string {
	if !opts.SegmentDecimal || s.Op == OpNone {
		return s.Display
	}
	if i := strings.IndexByte(s.Display, byte(s.Op)); i >= 0 {
		return s.Display[i+1:]
	}
	return s.Display
}

func pressOperator(s State, op Operator) Transition {
	n, err := ParseNumber(s.Display)
	if err != nil {
		s.Display = DisplayError
		return Transition{State: s, Err: err}
	}
	s.Num1 = n
	s.Op = op
	s.Display += op.Glyph()
	return Transition{State: s}
}

func pressEquals(s State) Transition {
	fail := func(err error) Transition {
		s.Display = DisplayFor(err)
		return Transition{State: s, Err: err}
	}

	if s.Op == OpNone {
		return fail(fmt.Errorf("%w: no pending operator", ErrMissingOperator))
	}
	i := strings.IndexByte(s.Display, byte(s.Op))
	if i < 0 {
		return fail(fmt.Errorf("%w: %q not in %q", ErrMissingOperator, s.Op.Glyph(), s.Display))
	}
	if i == len(s.Display)-1 {
		return fail(fmt.Errorf("%w: no operand after %q", ErrMissingOperator, s.Op.Glyph()))
	}

	n, err := ParseNumber(s.Display[i+1:])
	if err != nil {
		return fail(err)
	}
	s.Num2 = n

	result, err := s.Op.Apply(s.Num1, s.Num2)
	if err != nil {
		return fail(err)
	}

	entry := Entry{Num1: s.Num1, Op: s.Op, Num2: s.Num2, Result: result}
	s.Result = result
	s.Display = FormatNumber(result)
	s.Num1 = result
	return Transition{State: s, Entry: &entry}
}
