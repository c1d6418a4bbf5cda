// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"strings"
	"testing"
)

// run feeds text through Step and returns the final state and every entry produced.
func run(t *testing.T, text string, opts Options) (State, []Entry, error) {
	t.Helper()
	keys, err := ParseKeys(text)
	if err != nil {
		t.Fatalf("ParseKeys(%q): %v", text, err)
	}
	var s State
	var entries []Entry
	var lastErr error
	for _, k := range keys {
		tr := Step(s, k, opts)
		s = tr.State
		if tr.Entry != nil {
			entries = append(entries, *tr.Entry)
		}
		if tr.ResetHistory {
			entries = nil
		}
		lastErr = tr.Err
	}
	return s, entries, lastErr
}

func TestStep_SingleOperation(t *testing.T) {
	cases := []struct {
		keys    string
		display string
		entry   string
	}{
		{"2+3=", "5", "2 + 3 = 5"},
		{"7-10=", "-3", "7 - 10 = -3"},
		{"1.5*4=", "6", "1.5 * 4 = 6"},
		{"1/4=", "0.25", "1 / 4 = 0.25"},
		{"0.1+0.2=", "2.1", "0.1 + 2 = 2.1"},
		{"9/3=", "3", "9 / 3 = 3"},
		{"0*5=", "0", "0 * 5 = 0"},
		{".5+.5=", "5.5", "0.5 + 5 = 5.5"},
	}
	for _, tc := range cases {
		s, entries, err := run(t, tc.keys, Options{})
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.keys, err)
		}
		if s.Display != tc.display {
			t.Fatalf("%s: display = %q, want %q", tc.keys, s.Display, tc.display)
		}
		if len(entries) != 1 || entries[0].String() != tc.entry {
			t.Fatalf("%s: entries = %v, want [%s]", tc.keys, entries, tc.entry)
		}
	}
}

func TestStep_DivideByZero(t *testing.T) {
	s, entries, err := run(t, "5/0=", Options{})
	if s.Display != DisplayDivideByZero {
		t.Fatalf("display = %q, want %q", s.Display, DisplayDivideByZero)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no history entry, got %v", entries)
	}
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
}

func TestStep_EqualsWithoutOperator(t *testing.T) {
	s, entries, err := run(t, "=", Options{})
	if s.Display != DisplayError {
		t.Fatalf("display = %q, want %q", s.Display, DisplayError)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no history entry, got %v", entries)
	}
	if !errors.Is(err, ErrMissingOperator) {
		t.Fatalf("expected ErrMissingOperator, got %v", err)
	}
}

func TestStep_EqualsWithoutSecondOperand(t *testing.T) {
	s, _, err := run(t, "5+=", Options{})
	if s.Display != DisplayError || !errors.Is(err, ErrMissingOperator) {
		t.Fatalf("got display %q err %v", s.Display, err)
	}
}

func TestStep_OperatorOnEmptyDisplay(t *testing.T) {
	s, _, err := run(t, "+", Options{})
	if s.Display != DisplayError {
		t.Fatalf("display = %q, want %q", s.Display, DisplayError)
	}
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("expected ErrMalformedNumber, got %v", err)
	}
	if s.Op != OpNone {
		t.Fatalf("operator should stay unset after a failed parse, got %v", s.Op)
	}
}

func TestStep_SecondOperatorIsMalformed(t *testing.T) {
	s, _, err := run(t, "2++", Options{})
	if s.Display != DisplayError || !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("got display %q err %v", s.Display, err)
	}
}

func TestStep_DecimalOncePerOperand(t *testing.T) {
	s, _, _ := run(t, "1..5", Options{})
	if s.Display != "1.5" {
		t.Fatalf("display = %q, want 1.5", s.Display)
	}
	s, _, _ = run(t, "..", Options{})
	if s.Display != "." {
		t.Fatalf("display = %q, want .", s.Display)
	}
}

func TestStep_DecimalScansWholeDisplay(t *testing.T) {
	s, _, _ := run(t, "1.5+2.5", Options{})
	if s.Display != "1.5+25" {
		t.Fatalf("display = %q, want 1.5+25", s.Display)
	}
}

func TestStep_SegmentDecimal(t *testing.T) {
	s, entries, err := run(t, "1.5+2.5=", Options{SegmentDecimal: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Display != "4" {
		t.Fatalf("display = %q, want 4", s.Display)
	}
	if len(entries) != 1 || entries[0].String() != "1.5 + 2.5 = 4" {
		t.Fatalf("unexpected entries: %v", entries)
	}
	for keys, want := range map[string]string{
		"0.1+0.2=": "0.1 + 0.2 = 0.30000000000000004",
		".5+.5=":   "0.5 + 0.5 = 1",
	} {
		_, entries, err := run(t, keys, Options{SegmentDecimal: true})
		if err != nil || len(entries) != 1 || entries[0].String() != want {
			t.Fatalf("%s: entries = %v, err = %v, want [%s]", keys, entries, err, want)
		}
	}
	s, _, _ = run(t, "1.5+2..", Options{SegmentDecimal: true})
	if s.Display != "1.5+2." {
		t.Fatalf("display = %q, want 1.5+2.", s.Display)
	}
}

func TestStep_Delete(t *testing.T) {
	s := Step(State{}, Delete, Options{}).State
	if s.Display != "" {
		t.Fatalf("delete on empty display changed it to %q", s.Display)
	}
	s, _, _ = run(t, "12+x", Options{})
	if s.Display != "12" {
		t.Fatalf("display = %q, want 12", s.Display)
	}
}

func TestStep_Clear(t *testing.T) {
	s, _, _ := run(t, "2+3=+4c", Options{})
	if s != (State{}) {
		t.Fatalf("clear left state %+v", s)
	}
}

func TestStep_ClearHistoryKeepsState(t *testing.T) {
	before, _, _ := run(t, "2+3=", Options{})
	tr := Step(before, ClearHistory, Options{})
	if !tr.ResetHistory {
		t.Fatalf("expected ResetHistory")
	}
	if tr.State != before {
		t.Fatalf("clear-history changed state: %+v -> %+v", before, tr.State)
	}
}

func TestStep_Chaining(t *testing.T) {
	s, entries, _ := run(t, "2+3=+4=", Options{})
	if s.Display != "9" {
		t.Fatalf("display = %q, want 9", s.Display)
	}
	if len(entries) != 2 || entries[1].String() != "5 + 4 = 9" {
		t.Fatalf("unexpected entries: %v", entries)
	}
	if s.Num1 != 9 || s.Result != 9 {
		t.Fatalf("num1/result not carried: %+v", s)
	}
}

func TestStep_NegativeResultThenSubtract(t *testing.T) {
	// The first '-' in "-3-1" is the sign, so the tail does not parse.
	s, _, err := run(t, "2-5=-1=", Options{})
	if s.Display != DisplayError || !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("got display %q err %v", s.Display, err)
	}
}

func TestStep_InputAfterErrorAppends(t *testing.T) {
	s, _, _ := run(t, "5/0=1", Options{})
	if s.Display != DisplayDivideByZero+"1" {
		t.Fatalf("display = %q", s.Display)
	}
}

func TestStep_ResetAfterError(t *testing.T) {
	s, entries, _ := run(t, "5/0=1+2=", Options{ResetAfterError: true})
	if s.Display != "3" {
		t.Fatalf("display = %q, want 3", s.Display)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %v", entries)
	}
	// delete still edits the error text
	s, _, _ = run(t, "=x", Options{ResetAfterError: true})
	if s.Display != "Erro" {
		t.Fatalf("display = %q, want Erro", s.Display)
	}
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	s := State{Display: "12"}
	_ = Step(s, Digit(3), Options{})
	if s.Display != "12" {
		t.Fatalf("input state mutated: %q", s.Display)
	}
}

func TestStep_ChainAddAfterExponentResult(t *testing.T) {
	s, entries, err := run(t, "99999999999*99999999999=+1=", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v (display %q)", err, s.Display)
	}
	if IsErrorDisplay(s.Display) || strings.Contains(s.Display, "+") {
		t.Fatalf("display = %q, want a plain exponent result", s.Display)
	}
	if len(entries) != 2 || entries[1].Op != OpAdd || entries[1].Num2 != 1 {
		t.Fatalf("unexpected entries: %v", entries)
	}
}
