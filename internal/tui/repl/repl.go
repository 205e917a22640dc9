// Package repl implements the statement editor panel: a multi-line text
// buffer driven by the bubbles textarea.
package repl

import (
	"cqlterm/internal/tui/components"
	"cqlterm/internal/tui/design"
	"cqlterm/internal/tui/panel"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Panel is the line-buffer editor. Focus keys are intercepted; every other
// key goes to the buffer unchanged.
type Panel struct {
	title string
	keys  KeyMap
	input textarea.Model
}

// Option configures a Panel at construction time.
type Option func(*Panel)

// WithTitle sets the panel title.
func WithTitle(title string) Option {
	return func(p *Panel) { p.title = title }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(p *Panel) {
		p.keys = keys
		p.input.KeyMap = keys.Editor
	}
}

// WithPlaceholder sets the text shown while the buffer is empty.
func WithPlaceholder(s string) Option {
	return func(p *Panel) { p.input.Placeholder = s }
}

// WithLineNumbers toggles the line number gutter.
func WithLineNumbers(show bool) Option {
	return func(p *Panel) { p.input.ShowLineNumbers = show }
}

// WithCharLimit caps the buffer length. Zero means unlimited.
func WithCharLimit(n int) Option {
	return func(p *Panel) { p.input.CharLimit = max(n, 0) }
}

// New creates an empty editor.
func New(opts ...Option) *Panel {
	p := &Panel{
		title: "REPL",
		keys:  DefaultKeyMap(),
		input: textarea.New(),
	}
	p.input.Prompt = ""
	p.input.ShowLineNumbers = false
	p.input.CharLimit = 0
	p.input.KeyMap = p.keys.Editor

	p.input.FocusedStyle = textarea.Style{
		Base:        design.NeutralStyle,
		CursorLine:  design.CursorLineFocusStyle,
		EndOfBuffer: design.TextSecondaryStyle,
		LineNumber:  design.TextSecondaryStyle,
		Placeholder: design.TextSecondaryStyle,
		Prompt:      design.NeutralStyle,
		Text:        design.NeutralStyle,
	}
	p.input.BlurredStyle = textarea.Style{
		Base:        design.NeutralStyle,
		CursorLine:  design.NeutralStyle,
		EndOfBuffer: design.TextSecondaryStyle,
		LineNumber:  design.TextSecondaryStyle,
		Placeholder: design.TextSecondaryStyle,
		Prompt:      design.NeutralStyle,
		Text:        design.NeutralStyle,
	}
	p.input.Cursor.Style = design.CursorFocusStyle
	p.input.Cursor.SetMode(cursor.CursorStatic)

	for _, opt := range opts {
		opt(p)
	}

	// The buffer always accepts input; the coordinator decides whether keys
	// reach it. Focus only changes how Draw styles it.
	p.input.Focus()
	return p
}

// Title implements panel.Titled.
func (p *Panel) Title() string { return p.title }

// Help implements panel.Helpful.
func (p *Panel) Help() help.KeyMap { return p.keys }

// Value returns the full buffer contents.
func (p *Panel) Value() string { return p.input.Value() }

// Lines returns the buffer split into lines. An empty buffer has one empty
// line.
func (p *Panel) Lines() []string { return strings.Split(p.input.Value(), "\n") }

// Cursor returns the cursor's row and column within the buffer.
func (p *Panel) Cursor() (row, col int) {
	info := p.input.LineInfo()
	return p.input.Line(), info.StartColumn + info.ColumnOffset
}

// Reset empties the buffer.
func (p *Panel) Reset() { p.input.Reset() }

// HandleKey implements panel.Panel.
func (p *Panel) HandleKey(msg tea.KeyMsg) (panel.Command, error) {
	if cmd := p.keys.Focus.Intercept(msg); cmd != nil {
		return cmd, nil
	}
	// With a static cursor the textarea schedules no follow-up work, so the
	// returned tea.Cmd is always nil.
	p.input, _ = p.input.Update(msg)
	return nil, nil
}

// Receive implements panel.Panel. The editor reacts to no commands.
func (p *Panel) Receive(panel.Command) (panel.Command, error) {
	return nil, nil
}

// Draw implements panel.Panel. The cursor line and cursor are highlighted
// only while focused.
func (p *Panel) Draw(s panel.Surface, area panel.Rect, focused bool) error {
	block := components.NewBlock(p.title).
		WithDimensions(area.Width, area.Height).
		SetFocused(focused)
	p.input.SetWidth(block.InnerWidth())
	p.input.SetHeight(block.BodyHeight())

	view := p.input
	if !focused {
		view.Blur()
	}
	return s.Render(area, block.Render(view.View()))
}
