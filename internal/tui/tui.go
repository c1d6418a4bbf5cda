// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/internal/calc"
)

// Run starts the full-screen keypad and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, acc *calc.Accumulator) error {
	p := tea.NewProgram(New(ctx, acc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
