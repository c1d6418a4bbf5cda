// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"fmt"
	"time"
)

// Entry is one completed calculation.
type Entry struct {
	Num1   float64
	Op     Operator
	Num2   float64
	Result float64
	At     time.Time
}

// String renders the entry as "a op b = result".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s", FormatNumber(e.Num1), e.Op.Glyph(), FormatNumber(e.Num2), FormatNumber(e.Result))
}

// History is an append-only log of entries in chronological order.
// The zero value is an empty history.
type History struct {
	entries []Entry
}

// Append adds e to the end of the log.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Lines returns the rendered entries, oldest first.
func (h *History) Lines() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.String()
	}
	return out
}
