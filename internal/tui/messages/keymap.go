package messages

import (
	"cqlterm/internal/tui/panel"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the activity log keybindings.
type KeyMap struct {
	Focus    panel.FocusKeys
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Copy     key.Binding
}

// DefaultKeyMap returns the default activity log bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: panel.DefaultFocusKeys(),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "oldest"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "newest"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy log"),
		),
	}
}

// Bindings exposes every binding under its configuration action name.
func (k *KeyMap) Bindings() panel.Bindings {
	b := k.Focus.Bindings()
	b[panel.ActionUp] = &k.Up
	b[panel.ActionDown] = &k.Down
	b[panel.ActionPageUp] = &k.PageUp
	b[panel.ActionPageDown] = &k.PageDown
	b[panel.ActionHome] = &k.Home
	b[panel.ActionEnd] = &k.End
	b[panel.ActionCopy] = &k.Copy
	return b
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Focus.Forward}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Home, k.End, k.Copy},
		{k.Focus.Forward, k.Focus.Backward},
	}
}
