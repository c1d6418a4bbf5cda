// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"strings"
	"testing"
)

func TestEval_PrintsDisplayAndHistory(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "eval", "2+3=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "5\nHistory:\n2 + 3 = 5\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEval_JoinsArguments(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "eval", "12", "-", "2", "=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !strings.HasPrefix(out, "10\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEval_DivideByZeroAddsNoHistory(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "eval", "7/0=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "Cannot divide by 0\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEval_ClearHistoryDropsEarlierEntries(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "eval", "1+1=hc2*2=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "4\nHistory:\n2 * 2 = 4\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEval_WholeDisplayDecimalQuirk(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "eval", "1.5+2.5=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !strings.HasPrefix(out, "26.5\n") {
		t.Fatalf("expected second decimal point to be ignored, got %q", out)
	}

	out, err = run(t, nil, "eval", "--calc.segment_decimal", "1.5+2.5=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !strings.HasPrefix(out, "4\n") {
		t.Fatalf("expected 4 with segment decimal, got %q", out)
	}
}

func TestEval_Trace(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "eval", "--trace", "1+1=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{"1", "1+", "1+1", "2", "History:", "1 + 1 = 2"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), out)
	}
	for i, w := range want[:4] {
		if !strings.HasSuffix(lines[i], " "+w) {
			t.Fatalf("line %d: expected display %q, got %q", i, w, lines[i])
		}
	}
}

func TestEval_UnknownKey(t *testing.T) {
	isolate(t)
	if _, err := run(t, nil, "eval", "2&3"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
