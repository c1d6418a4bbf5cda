package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keycalc/internal/i18n"
)

// KeyMap holds the bindings that are not plain calculator characters.
// Digits, operators, ".", "=", x, c and h are typed directly.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Press        key.Binding
	Delete       key.Binding
	Clear        key.Binding
	ClearHistory key.Binding
	Copy         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Press, km.Delete, km.Clear, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Press},
		{km.Delete, km.Clear, km.ClearHistory},
		{km.Copy, km.Help, km.Quit},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings with labels in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓/←/→", i18n.T("help.move")),
		),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", i18n.T("help.press")),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫/x", i18n.T("help.delete")),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc/c", i18n.T("help.clear")),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l/h", i18n.T("help.clear_history")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("help.copy")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}
