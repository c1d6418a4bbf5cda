// Package tui provides the terminal keypad for keycalc.
// This file defines the shared lipgloss styles.
package tui // import "github.com/toeirei/keycalc/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for operators
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
	colorButton    = lipgloss.Color("237") // Dark gray
)

const (
	keypadWidth = 4*buttonWidth + 3*buttonGap
	buttonWidth = 7
	buttonGap   = 1
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			MarginTop(1)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1).
			Width(keypadWidth - 2).
			Align(lipgloss.Right)

	displayErrorStyle = displayStyle.
				Foreground(colorError).
				BorderForeground(colorError)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorButton).
			Width(buttonWidth).
			Align(lipgloss.Center).
			MarginRight(buttonGap)

	operatorButtonStyle = buttonStyle.
				Foreground(colorSpecial)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Foreground(colorWhite).
				Bold(true)

	historyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSubtle).
			Width(keypadWidth - 2)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle).MarginTop(1)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
)
