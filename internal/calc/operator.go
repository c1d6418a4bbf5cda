// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "fmt"

// Operator is one of the four arithmetic operators, or OpNone.
// The underlying byte is the glyph shown on the display.
type Operator byte

const (
	OpNone Operator = 0
	OpAdd  Operator = '+'
	OpSub  Operator = '-'
	OpMul  Operator = '*'
	OpDiv  Operator = '/'
)

// Operators lists the arithmetic operators in keypad order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// ParseOperator maps a glyph to its operator.
func ParseOperator(r rune) (Operator, bool) {
	switch Operator(r) {
	case OpAdd, OpSub, OpMul, OpDiv:
		return Operator(r), true
	}
	return OpNone, false
}

// Glyph returns the display character of the operator ("" for OpNone).
func (o Operator) Glyph() string {
	if o == OpNone {
		return ""
	}
	return string(rune(o))
}

// Name is the lowercase word used in logs and metric labels.
func (o Operator) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	default:
		return "none"
	}
}

func (o Operator) String() string {
	if o == OpNone {
		return "none"
	}
	return o.Glyph()
}

// Apply computes a OP b. Division by zero is reported as ErrDivideByZero.
func (o Operator) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: no pending operator", ErrMissingOperator)
	}
}
