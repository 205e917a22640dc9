// Package messages implements the activity log panel. It shows log lines
// relayed by the coordinator and never originates work of its own.
package messages

import (
	"cqlterm/internal/tui/components"
	"cqlterm/internal/tui/panel"
	"cqlterm/internal/tui/utils"
	"cqlterm/pkg/logging"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "Messages"

// MaxLines is the number of log lines kept; older lines are discarded.
const MaxLines = 1000

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Panel is a scrollable, append-only activity log.
type Panel struct {
	title string
	keys  KeyMap
	lines []string
	view  viewport.Model
	width int
}

// Option configures a Panel at construction time.
type Option func(*Panel)

// WithTitle sets the panel title.
func WithTitle(title string) Option {
	return func(p *Panel) { p.title = title }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(p *Panel) { p.keys = keys }
}

// New creates an empty activity log.
func New(opts ...Option) *Panel {
	p := &Panel{
		title: "Messages",
		keys:  DefaultKeyMap(),
		view:  viewport.New(0, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Title implements panel.Titled.
func (p *Panel) Title() string { return p.title }

// Help implements panel.Helpful.
func (p *Panel) Help() help.KeyMap { return p.keys }

// Lines returns a copy of the retained log lines, oldest first.
func (p *Panel) Lines() []string {
	return append([]string(nil), p.lines...)
}

// Offset returns the index of the first visible line.
func (p *Panel) Offset() int {
	return p.view.YOffset
}

// HandleKey implements panel.Panel.
func (p *Panel) HandleKey(msg tea.KeyMsg) (panel.Command, error) {
	if cmd := p.keys.Focus.Intercept(msg); cmd != nil {
		return cmd, nil
	}

	switch {
	case key.Matches(msg, p.keys.Up):
		p.view.ScrollUp(1)
	case key.Matches(msg, p.keys.Down):
		p.view.ScrollDown(1)
	case key.Matches(msg, p.keys.PageUp):
		p.view.PageUp()
	case key.Matches(msg, p.keys.PageDown):
		p.view.PageDown()
	case key.Matches(msg, p.keys.Home):
		p.view.GotoTop()
	case key.Matches(msg, p.keys.End):
		p.view.GotoBottom()
	case key.Matches(msg, p.keys.Copy):
		p.copyToClipboard()
	}
	return nil, nil
}

// copyToClipboard writes the whole log to the system clipboard. A missing
// clipboard is reported through the log, not as a key handling error.
func (p *Panel) copyToClipboard() {
	if len(p.lines) == 0 {
		return
	}
	if err := writeClipboard(strings.Join(p.lines, "\n")); err != nil {
		logging.Error(subsystem, err, "Failed to copy log to clipboard")
		return
	}
	logging.Info(subsystem, "Copied %d lines to clipboard", len(p.lines))
}

// Receive implements panel.Panel. AppendLog adds a line; everything else
// is ignored.
func (p *Panel) Receive(cmd panel.Command) (panel.Command, error) {
	if msg, ok := cmd.(panel.AppendLog); ok {
		p.append(msg.Line)
	}
	return nil, nil
}

func (p *Panel) append(line string) {
	follow := p.view.AtBottom()
	for _, l := range strings.Split(strings.TrimRight(line, "\n"), "\n") {
		p.lines = append(p.lines, l)
	}
	if over := len(p.lines) - MaxLines; over > 0 {
		p.lines = append([]string(nil), p.lines[over:]...)
	}
	p.refresh()
	if follow {
		p.view.GotoBottom()
	}
}

// refresh hands the lines to the viewport cut to the current width, so the
// viewport never wraps them onto extra rows.
func (p *Panel) refresh() {
	rows := make([]string, len(p.lines))
	for i, l := range p.lines {
		if p.width > 0 {
			l = utils.TruncateString(l, p.width)
		}
		rows[i] = l
	}
	p.view.SetContent(strings.Join(rows, "\n"))
}

// Draw implements panel.Panel.
func (p *Panel) Draw(s panel.Surface, area panel.Rect, focused bool) error {
	block := components.NewBlock(p.title).
		WithDimensions(area.Width, area.Height).
		SetFocused(focused)

	follow := p.view.AtBottom()
	p.view.Width = block.InnerWidth()
	p.view.Height = max(block.BodyHeight(), 1)
	if p.width != block.InnerWidth() {
		p.width = block.InnerWidth()
		p.refresh()
	}
	if follow {
		p.view.GotoBottom()
	}
	return s.Render(area, block.Render(p.view.View()))
}
