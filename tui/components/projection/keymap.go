package projection

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the projection widget
type KeyMap struct {
	// Navigation
	Advance key.Binding
	Retreat key.Binding
	First   key.Binding
	Last    key.Binding
	GoTo    key.Binding
	// Perspective
	ZoomIn  key.Binding
	ZoomOut key.Binding
	// Help and quit
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the default keymap for the projection widget
var DefaultKeyMap = KeyMap{
	Advance: key.NewBinding(
		key.WithKeys("right", "l", "pgdown", " ", "enter"),
		key.WithHelp("→/l/space", "advance"),
	),
	Retreat: key.NewBinding(
		key.WithKeys("left", "h", "pgup", "backspace"),
		key.WithHelp("←/h", "retreat"),
	),
	First: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first panel"),
	),
	Last: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last panel"),
	),
	GoTo: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to panel"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

// ShortHelp returns the short help text for the keymap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Retreat, k.Help, k.Quit}
}

// FullHelp returns the full help text for the keymap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			key.NewBinding(key.WithKeys(""), key.WithHelp("", "Navigation")),
			k.Advance,
			k.Retreat,
			k.First,
			k.Last,
			k.GoTo,
		},
		{
			key.NewBinding(key.WithKeys(""), key.WithHelp("", "Perspective")),
			k.ZoomIn,
			k.ZoomOut,
		},
		{
			key.NewBinding(key.WithKeys(""), key.WithHelp("", "Actions")),
			k.Help,
			k.Quit,
		},
	}
}
