package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/i18n"
)

// keypadRows mirrors the classic 5x4 button grid, with the clear-history
// button as its own row under it.
var keypadRows = [][]calc.Key{
	{calc.Digit(7), calc.Digit(8), calc.Digit(9), calc.Op(calc.OpAdd)},
	{calc.Digit(4), calc.Digit(5), calc.Digit(6), calc.Op(calc.OpSub)},
	{calc.Digit(1), calc.Digit(2), calc.Digit(3), calc.Op(calc.OpMul)},
	{calc.Decimal, calc.Digit(0), calc.Equals, calc.Op(calc.OpDiv)},
	{calc.Delete, calc.Clear},
	{calc.ClearHistory},
}

// focus is a position on the keypad.
type focus struct {
	row, col int
}

func (f focus) key() calc.Key {
	return keypadRows[f.row][f.col]
}

// move shifts the focus by dr rows and dc columns, clamping to the grid.
func (f focus) move(dr, dc int) focus {
	f.row = clamp(f.row+dr, 0, len(keypadRows)-1)
	f.col = clamp(f.col+dc, 0, len(keypadRows[f.row])-1)
	return f
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func buttonLabel(k calc.Key) string {
	if k.Kind == calc.KeyClearHistory {
		return i18n.T("history.clear_button")
	}
	return k.Label()
}

func renderKeypad(f focus) string {
	var b strings.Builder
	for r, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for c, k := range row {
			style := buttonStyle
			if k.Kind == calc.KeyOperator || k.Kind == calc.KeyEquals {
				style = operatorButtonStyle
			}
			if r == f.row && c == f.col {
				style = activeButtonStyle
			}
			if k.Kind == calc.KeyClearHistory {
				style = style.Width(keypadWidth).MarginRight(0).MarginTop(1)
			}
			cells = append(cells, style.Render(buttonLabel(k)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if r < len(keypadRows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
