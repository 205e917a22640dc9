package controller

import (
	"cqlterm/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// LogEntryMsg carries one entry read from the logging channel.
type LogEntryMsg struct {
	Entry logging.LogEntry
}

// logChannelClosedMsg is sent once the logging channel is closed.
type logChannelClosedMsg struct{}

// ListenForLogEntriesCmd waits for the next entry on ch. It must be issued
// again after every LogEntryMsg to keep listening.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return LogEntryMsg{Entry: entry}
	}
}
