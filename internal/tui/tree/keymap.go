package tree

import (
	"cqlterm/internal/tui/panel"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the navigator's keybindings.
type KeyMap struct {
	Focus    panel.FocusKeys
	Toggle   key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Clear    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the navigator bindings, arrows plus vim aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: panel.DefaultFocusKeys(),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "expand/collapse"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "H"),
			key.WithHelp("←/h", "collapse/parent"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "L"),
			key.WithHelp("→/l", "expand/child"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "K"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "J"),
			key.WithHelp("↓/j", "down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
	}
}

// Bindings exposes every binding under its configuration action name.
func (k *KeyMap) Bindings() panel.Bindings {
	b := k.Focus.Bindings()
	b[panel.ActionToggle] = &k.Toggle
	b[panel.ActionLeft] = &k.Left
	b[panel.ActionRight] = &k.Right
	b[panel.ActionUp] = &k.Up
	b[panel.ActionDown] = &k.Down
	b[panel.ActionClear] = &k.Clear
	b[panel.ActionHome] = &k.Home
	b[panel.ActionEnd] = &k.End
	b[panel.ActionPageUp] = &k.PageUp
	b[panel.ActionPageDown] = &k.PageDown
	return b
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Focus.Forward}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Clear, k.Home, k.End},
		{k.PageUp, k.PageDown, k.Focus.Forward, k.Focus.Backward},
	}
}
