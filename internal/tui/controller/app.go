package controller

import (
	"cqlterm/internal/tui/components"
	"cqlterm/internal/tui/design"
	"cqlterm/internal/tui/panel"
	"cqlterm/pkg/logging"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const renderSubsystem = "Render"

// AppModel adapts a Coordinator to the Bubble Tea program loop. Bubble Tea
// delivers one message at a time, so every key is fully handled before the
// next one is read.
type AppModel struct {
	coord *Coordinator
	logCh <-chan logging.LogEntry
	help  help.Model

	width  int
	height int

	// lastRenderErr suppresses logging the same rendering error every frame.
	lastRenderErr string
	// relayErr is shown in the footer when relaying a log line failed.
	relayErr string
}

// NewAppModel wraps coord. Log entries arriving on logCh are relayed to the
// panels as AppendLog commands; logCh may be nil.
func NewAppModel(coord *Coordinator, logCh <-chan logging.LogEntry) *AppModel {
	h := help.New()
	h.Styles.ShortKey = design.TextStyle
	h.Styles.ShortDesc = design.TextSecondaryStyle
	h.Styles.ShortSeparator = design.TextSecondaryStyle
	return &AppModel{coord: coord, logCh: logCh, help: h}
}

// Coordinator returns the wrapped coordinator.
func (a *AppModel) Coordinator() *Coordinator { return a.coord }

// Init implements tea.Model
func (a *AppModel) Init() tea.Cmd {
	return ListenForLogEntriesCmd(a.logCh)
}

// Update implements tea.Model
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		quit, err := a.coord.HandleKey(msg)
		if err != nil {
			logging.Error(controllerSubsystem, err, "Key %q failed", msg.String())
		}
		if quit {
			logging.Info(controllerSubsystem, "Quit requested")
			return a, tea.Quit
		}
		return a, nil

	case LogEntryMsg:
		// Failures here are not logged again, or they would come straight
		// back through the same channel.
		a.relayErr = ""
		if _, err := a.coord.Resolve(panel.AppendLog{Line: msg.Entry.String()}); err != nil {
			a.relayErr = err.Error()
		}
		return a, ListenForLogEntriesCmd(a.logCh)

	case logChannelClosedMsg:
		a.logCh = nil
		return a, nil
	}
	return a, nil
}

// View implements tea.Model
func (a *AppModel) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	contentHeight := components.NewLayout(a.width, a.height).CalculateContentArea(design.FooterHeight)
	rects, ok := a.coord.Layout(a.width, contentHeight)
	if !ok {
		w, h := a.coord.MinSize()
		return design.TextWarningStyle.Render(fmt.Sprintf(
			"Terminal too small: %dx%d, need at least %dx%d", a.width, a.height, w, h+design.FooterHeight))
	}

	frame := panel.NewFrame(a.width, contentHeight)
	if err := a.coord.Draw(frame, rects); err != nil {
		if err.Error() != a.lastRenderErr {
			a.lastRenderErr = err.Error()
			logging.Error(renderSubsystem, err, "Drawing panels failed")
		}
		return design.TextErrorStyle.Render("Render error: " + err.Error())
	}
	a.lastRenderErr = ""

	return lipgloss.JoinVertical(lipgloss.Left, frame.String(), a.footer())
}

// footer renders the focused panel's short help followed by the quit key,
// prefixed by the number of log entries the UI never received.
func (a *AppModel) footer() string {
	var bindings []key.Binding
	if h, ok := a.coord.FocusedPanel().(panel.Helpful); ok {
		bindings = append(bindings, h.Help().ShortHelp()...)
	}
	bindings = append(bindings, a.coord.quit)

	line := a.help.ShortHelpView(bindings)
	if n := logging.Dropped(); n > 0 {
		line = design.TextWarningStyle.Render(fmt.Sprintf("%d log lines dropped", n)) + "  " + line
	}
	if a.relayErr != "" {
		line = design.TextErrorStyle.Render(a.relayErr)
	}
	return design.FooterStyle.MaxWidth(a.width).Render(line)
}
