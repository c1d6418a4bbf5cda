// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"unicode"
)

// KeyKind enumerates the input tokens the accumulator accepts.
type KeyKind uint8

const (
	KeyDigit KeyKind = iota + 1
	KeyDecimal
	KeyOperator
	KeyEquals
	KeyDelete
	KeyClear
	KeyClearHistory
)

func (k KeyKind) String() string {
	switch k {
	case KeyDigit:
		return "digit"
	case KeyDecimal:
		return "decimal"
	case KeyOperator:
		return "operator"
	case KeyEquals:
		return "equals"
	case KeyDelete:
		return "delete"
	case KeyClear:
		return "clear"
	case KeyClearHistory:
		return "clear_history"
	default:
		return "unknown"
	}
}

// Key is a single input event. Digit is only meaningful for KeyDigit
// and Op only for KeyOperator.
type Key struct {
	Kind  KeyKind
	Digit byte
	Op    Operator
}

var (
	Decimal      = Key{Kind: KeyDecimal}
	Equals       = Key{Kind: KeyEquals}
	Delete       = Key{Kind: KeyDelete}
	Clear        = Key{Kind: KeyClear}
	ClearHistory = Key{Kind: KeyClearHistory}
)

// Digit returns the key for digit d. It panics if d is outside 0..9.
func Digit(d int) Key {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("calc: digit out of range: %d", d))
	}
	return Key{Kind: KeyDigit, Digit: byte('0' + d)}
}

// Op returns the key for operator o.
func Op(o Operator) Key {
	return Key{Kind: KeyOperator, Op: o}
}

// Label is the text printed on the keypad button for k.
func (k Key) Label() string {
	switch k.Kind {
	case KeyDigit:
		return string(k.Digit)
	case KeyDecimal:
		return "."
	case KeyOperator:
		return k.Op.Glyph()
	case KeyEquals:
		return "="
	case KeyDelete:
		return "X"
	case KeyClear:
		return "C"
	case KeyClearHistory:
		return "Clear History"
	default:
		return "?"
	}
}

func (k Key) String() string {
	return k.Label()
}

// ParseKey maps a typed character to a key. x deletes, c clears and h
// clears the history; letters are case-insensitive.
func ParseKey(r rune) (Key, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Digit(int(r - '0')), true
	case r == '.':
		return Decimal, true
	case r == '=':
		return Equals, true
	}
	if op, ok := ParseOperator(r); ok {
		return Op(op), true
	}
	switch unicode.ToLower(r) {
	case 'x':
		return Delete, true
	case 'c':
		return Clear, true
	case 'h':
		return ClearHistory, true
	}
	return Key{}, false
}

// ParseKeys converts text such as "12.5*4=" into keys. Whitespace is skipped.
func ParseKeys(s string) ([]Key, error) {
	keys := make([]Key, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		k, ok := ParseKey(r)
		if !ok {
			return nil, fmt.Errorf("unknown key %q at offset %d", r, i)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
