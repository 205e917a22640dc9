package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FocusKeys are the bindings that move focus between panels.
type FocusKeys struct {
	Forward  key.Binding
	Backward key.Binding
}

// DefaultFocusKeys binds Tab and Shift+Tab.
func DefaultFocusKeys() FocusKeys {
	return FocusKeys{
		Forward: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		Backward: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
	}
}

// Intercept returns the focus command bound to msg, or nil when msg is not
// a focus key.
func (k FocusKeys) Intercept(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Forward):
		return SwitchFocusForward{}
	case key.Matches(msg, k.Backward):
		return SwitchFocusBackward{}
	default:
		return nil
	}
}
