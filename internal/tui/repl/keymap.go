package repl

import (
	"cqlterm/internal/tui/panel"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
)

// KeyMap pairs the focus keys with the editing keys of the buffer.
type KeyMap struct {
	Focus  panel.FocusKeys
	Editor textarea.KeyMap
}

// DefaultKeyMap returns Tab/Shift+Tab focus keys and the textarea defaults.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus:  panel.DefaultFocusKeys(),
		Editor: textarea.DefaultKeyMap,
	}
}

// Bindings exposes the rebindable keys. Editing keys keep their defaults.
func (k *KeyMap) Bindings() panel.Bindings {
	return k.Focus.Bindings()
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Editor.InsertNewline,
		k.Editor.DeleteCharacterBackward,
		k.Editor.LineStart,
		k.Editor.LineEnd,
		k.Focus.Forward,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Editor.CharacterForward, k.Editor.CharacterBackward, k.Editor.WordForward, k.Editor.WordBackward},
		{k.Editor.LineNext, k.Editor.LinePrevious, k.Editor.LineStart, k.Editor.LineEnd},
		{k.Editor.InsertNewline, k.Editor.DeleteCharacterBackward, k.Editor.DeleteWordBackward, k.Editor.DeleteAfterCursor},
		{k.Focus.Forward, k.Focus.Backward},
	}
}
