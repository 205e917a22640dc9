package panel

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Panel is the contract every focusable unit of the UI satisfies.
type Panel interface {
	// Draw renders the panel's current state into area. It must not change
	// navigation or selection state. Errors come from the surface and are
	// returned unchanged.
	Draw(s Surface, area Rect, focused bool) error

	// HandleKey consumes one key event. A nil Command means there is
	// nothing for the coordinator to do. Unrecognized keys are ignored and
	// never produce an error.
	HandleKey(msg tea.KeyMsg) (Command, error)

	// Receive consumes a command relayed by the coordinator. Panels that
	// do not recognize the command return nil, nil.
	Receive(cmd Command) (Command, error)
}

// Titled is implemented by panels that have a display name.
type Titled interface {
	Title() string
}

// Helpful is implemented by panels that describe their key bindings. The
// coordinator shows the focused panel's short help in the footer.
type Helpful interface {
	Help() help.KeyMap
}
