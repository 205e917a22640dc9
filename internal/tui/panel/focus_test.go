package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFocusKeys_Intercept(t *testing.T) {
	keys := DefaultFocusKeys()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: SwitchFocusForward{}},
		{name: "shift+tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: SwitchFocusBackward{}},
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}, want: nil},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Intercept(tt.msg))
		})
	}
}
