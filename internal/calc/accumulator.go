// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"context"
	"time"

	"github.com/toeirei/keycalc/internal/logging"
)

// HistoryStore mirrors the history log somewhere durable.
type HistoryStore interface {
	Append(ctx context.Context, e Entry) error
	Clear(ctx context.Context) error
}

// Outcome reports what a single key press did.
type Outcome struct {
	Key     Key
	Display string
	Entry   *Entry
	Err     error
}

// Accumulator owns the expression state and the history log. It is not
// safe for concurrent use; hosts deliver one key at a time.
type Accumulator struct {
	state   State
	history History
	opts    Options

	store       HistoryStore
	displaySink func(string)
	historySink func([]string)
	now         func() time.Time
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithOptions sets the quirk toggles used by Step.
func WithOptions(o Options) Option {
	return func(a *Accumulator) { a.opts = o }
}

// WithStore mirrors appended and cleared history into s.
func WithStore(s HistoryStore) Option {
	return func(a *Accumulator) { a.store = s }
}

// WithDisplaySink registers fn to receive the display text after every key.
func WithDisplaySink(fn func(string)) Option {
	return func(a *Accumulator) { a.displaySink = fn }
}

// WithHistorySink registers fn to receive the full rendered history
// whenever it changes.
func WithHistorySink(fn func([]string)) Option {
	return func(a *Accumulator) { a.historySink = fn }
}

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(a *Accumulator) { a.now = now }
}

// New returns an accumulator in the initial state.
func New(opts ...Option) *Accumulator {
	a := &Accumulator{now: time.Now}
	a.Apply(opts...)
	return a
}

// Apply reconfigures a after construction. Hosts use it to attach their
// sinks to an accumulator built elsewhere.
func (a *Accumulator) Apply(opts ...Option) {
	for _, o := range opts {
		o(a)
	}
}

// Press applies one key.
func (a *Accumulator) Press(ctx context.Context, k Key) Outcome {
	t := Step(a.state, k, a.opts)
	a.state = t.State

	if t.Err != nil {
		logging.Debugf("calc: %s key failed (%s): %v", k.Kind, ErrorClass(t.Err), t.Err)
	}

	historyChanged := false
	if t.Entry != nil {
		t.Entry.At = a.now()
		a.history.Append(*t.Entry)
		historyChanged = true
		if a.store != nil {
			if err := a.store.Append(ctx, *t.Entry); err != nil {
				logging.Warnf("calc: could not persist history entry %q: %v", t.Entry.String(), err)
			}
		}
	}
	if t.ResetHistory {
		a.history.Clear()
		historyChanged = true
		if a.store != nil {
			if err := a.store.Clear(ctx); err != nil {
				logging.Warnf("calc: could not clear persisted history: %v", err)
			}
		}
	}

	if a.displaySink != nil {
		a.displaySink(a.state.Display)
	}
	if historyChanged && a.historySink != nil {
		a.historySink(a.history.Lines())
	}

	return Outcome{Key: k, Display: a.state.Display, Entry: t.Entry, Err: t.Err}
}

// PressAll applies keys in order and returns one outcome per key.
func (a *Accumulator) PressAll(ctx context.Context, keys []Key) []Outcome {
	out := make([]Outcome, 0, len(keys))
	for _, k := range keys {
		out = append(out, a.Press(ctx, k))
	}
	return out
}

// Restore replaces the in-memory history with entries loaded from a
// store. The store itself is not written.
func (a *Accumulator) Restore(entries []Entry) {
	a.history.Clear()
	for _, e := range entries {
		a.history.Append(e)
	}
	if a.historySink != nil {
		a.historySink(a.history.Lines())
	}
}

// Display returns the current display text.
func (a *Accumulator) Display() string { return a.state.Display }

// State returns a copy of the expression state.
func (a *Accumulator) State() State { return a.state }

// History returns a copy of the history entries.
func (a *Accumulator) History() []Entry { return a.history.Entries() }

// HistoryLines returns the rendered history, oldest first.
func (a *Accumulator) HistoryLines() []string { return a.history.Lines() }

// Options returns the quirk toggles in effect.
func (a *Accumulator) Options() Options { return a.opts }
