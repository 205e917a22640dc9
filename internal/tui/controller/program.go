package controller

import (
	"cqlterm/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for coord in the alternate
// screen.
func NewProgram(coord *Coordinator, logCh <-chan logging.LogEntry, opts ...tea.ProgramOption) *tea.Program {
	app := NewAppModel(coord, logCh)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(app, opts...)
}
