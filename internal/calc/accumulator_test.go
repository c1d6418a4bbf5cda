// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	appended []Entry
	cleared  int
	err      error
}

func (f *fakeStore) Append(_ context.Context, e Entry) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, e)
	return nil
}

func (f *fakeStore) Clear(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.cleared++
	return nil
}

func press(t *testing.T, a *Accumulator, text string) []Outcome {
	t.Helper()
	keys, err := ParseKeys(text)
	if err != nil {
		t.Fatalf("ParseKeys(%q): %v", text, err)
	}
	return a.PressAll(context.Background(), keys)
}

func TestAccumulator_HistoryAndSinks(t *testing.T) {
	var displays []string
	var renders [][]string
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a := New(
		WithDisplaySink(func(s string) { displays = append(displays, s) }),
		WithHistorySink(func(lines []string) { renders = append(renders, lines) }),
		WithClock(func() time.Time { return stamp }),
	)

	out := press(t, a, "2+3=")
	if len(displays) != 4 || displays[3] != "5" {
		t.Fatalf("unexpected display updates: %v", displays)
	}
	if len(renders) != 1 || len(renders[0]) != 1 || renders[0][0] != "2 + 3 = 5" {
		t.Fatalf("unexpected history renders: %v", renders)
	}
	last := out[len(out)-1]
	if last.Entry == nil || !last.Entry.At.Equal(stamp) {
		t.Fatalf("expected stamped entry, got %+v", last.Entry)
	}
	if got := a.HistoryLines(); len(got) != 1 || got[0] != "2 + 3 = 5" {
		t.Fatalf("HistoryLines = %v", got)
	}
}

func TestAccumulator_FailedEqualsLeavesHistory(t *testing.T) {
	a := New()
	press(t, a, "2+3=")
	out := press(t, a, "5/0=")
	if a.Display() != DisplayDivideByZero {
		t.Fatalf("display = %q", a.Display())
	}
	if !errors.Is(out[len(out)-1].Err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero outcome, got %v", out[len(out)-1].Err)
	}
	if len(a.History()) != 1 {
		t.Fatalf("expected history untouched, got %v", a.HistoryLines())
	}
}

func TestAccumulator_ClearHistory(t *testing.T) {
	store := &fakeStore{}
	a := New(WithStore(store))
	press(t, a, "2+3=4")
	press(t, a, "h")
	if len(a.History()) != 0 {
		t.Fatalf("history not cleared: %v", a.HistoryLines())
	}
	if a.Display() != "54" {
		t.Fatalf("clear-history touched display: %q", a.Display())
	}
	if a.State().Num1 != 5 {
		t.Fatalf("clear-history touched operands: %+v", a.State())
	}
	if len(store.appended) != 1 || store.cleared != 1 {
		t.Fatalf("store not mirrored: %+v", store)
	}
}

func TestAccumulator_StoreFailureDoesNotAffectDisplay(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	a := New(WithStore(store))
	out := press(t, a, "6*7=")
	if a.Display() != "42" {
		t.Fatalf("display = %q", a.Display())
	}
	if out[len(out)-1].Err != nil {
		t.Fatalf("store error leaked into outcome: %v", out[len(out)-1].Err)
	}
	if len(a.History()) != 1 {
		t.Fatalf("in-memory history should still record the entry")
	}
}

func TestAccumulator_Restore(t *testing.T) {
	var renders [][]string
	a := New(WithHistorySink(func(lines []string) { renders = append(renders, lines) }))
	a.Restore([]Entry{{Num1: 1, Op: OpAdd, Num2: 1, Result: 2}})
	if got := a.HistoryLines(); len(got) != 1 || got[0] != "1 + 1 = 2" {
		t.Fatalf("HistoryLines = %v", got)
	}
	if len(renders) != 1 {
		t.Fatalf("expected history sink call on restore")
	}
	if a.Display() != "" {
		t.Fatalf("restore must not touch the display")
	}
}

func TestAccumulator_Options(t *testing.T) {
	a := New(WithOptions(Options{SegmentDecimal: true}))
	press(t, a, "0.5+0.25=")
	if a.Display() != "0.75" {
		t.Fatalf("display = %q", a.Display())
	}
	if !a.Options().SegmentDecimal {
		t.Fatalf("options not kept")
	}
}

func TestAccumulator_ApplyAttachesSinksLater(t *testing.T) {
	a := New()
	a.Restore([]Entry{{Num1: 1, Op: OpAdd, Num2: 1, Result: 2}})

	var display string
	var lines []string
	a.Apply(
		WithDisplaySink(func(s string) { display = s }),
		WithHistorySink(func(l []string) { lines = l }),
	)
	press(t, a, "2*3=")
	if display != "6" {
		t.Fatalf("display sink got %q, want 6", display)
	}
	if len(lines) != 2 || lines[1] != "2 * 3 = 6" {
		t.Fatalf("history sink got %v", lines)
	}
}
