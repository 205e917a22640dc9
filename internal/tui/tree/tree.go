package tree

import (
	"cqlterm/internal/tui/components"
	"cqlterm/internal/tui/design"
	"cqlterm/internal/tui/panel"
	"cqlterm/internal/tui/utils"
	"cqlterm/pkg/logging"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	subsystem = "Navigator"

	// PageStep is how many rows page up and page down scroll.
	PageStep = 3

	symbolClosed = "▶ "
	symbolOpen   = "▼ "
	symbolLeaf   = "  "
	indentWidth  = 2
)

// Panel is the hierarchical navigator. It owns an immutable tree of nodes
// and the NavigationState that browses it.
type Panel struct {
	title string
	roots []Node
	state NavigationState
	keys  KeyMap

	// height is the number of body rows seen by the last Draw; it bounds
	// paging and keeps the selection in view.
	height int
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

// New builds a navigator over roots. Sibling ids must be unique at every
// level; a duplicate yields ErrDuplicateID and no panel.
func New(roots []Node, opts ...Option) (*Panel, error) {
	if err := validate(roots, nil); err != nil {
		return nil, fmt.Errorf("building keyspace tree: %w", err)
	}
	p := &Panel{
		title: "Keyspaces",
		roots: cloneNodes(roots),
		state: newNavigationState(),
		keys:  DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Title implements panel.Titled.
func (p *Panel) Title() string { return p.title }

// Help implements panel.Helpful.
func (p *Panel) Help() help.KeyMap { return p.keys }

// State returns a snapshot of the current navigation state.
func (p *Panel) State() NavigationState {
	s := p.state
	s.open = make(map[string]Path, len(p.state.open))
	for k, v := range p.state.open {
		s.open[k] = v
	}
	s.selected = p.state.Selected()
	return s
}

// Visible computes the flattened visible sequence.
func (p *Panel) Visible() []Entry {
	return flatten(p.roots, p.state.open)
}

// HandleKey implements panel.Panel.
func (p *Panel) HandleKey(msg tea.KeyMsg) (panel.Command, error) {
	if cmd := p.keys.Focus.Intercept(msg); cmd != nil {
		return cmd, nil
	}

	switch {
	case key.Matches(msg, p.keys.Toggle):
		p.toggleSelected()
	case key.Matches(msg, p.keys.Left):
		p.keyLeft()
	case key.Matches(msg, p.keys.Right):
		p.keyRight()
	case key.Matches(msg, p.keys.Down):
		p.keyDown()
	case key.Matches(msg, p.keys.Up):
		p.keyUp()
	case key.Matches(msg, p.keys.Clear):
		p.state.selected = nil
	case key.Matches(msg, p.keys.Home):
		p.selectFirst()
	case key.Matches(msg, p.keys.End):
		p.selectLast()
	case key.Matches(msg, p.keys.PageDown):
		p.scrollDown(PageStep)
	case key.Matches(msg, p.keys.PageUp):
		p.scrollUp(PageStep)
	}
	return nil, nil
}

// Receive implements panel.Panel. The navigator reacts to no commands.
func (p *Panel) Receive(panel.Command) (panel.Command, error) {
	return nil, nil
}

// Draw implements panel.Panel.
func (p *Panel) Draw(s panel.Surface, area panel.Rect, focused bool) error {
	block := components.NewBlock(p.title).
		WithDimensions(area.Width, area.Height).
		SetFocused(focused)
	p.height = block.BodyHeight()

	entries := p.Visible()
	width := block.InnerWidth()
	start := min(p.state.offset, maxOffset(len(entries), p.height))
	end := min(start+p.height, len(entries))

	rows := make([]string, 0, end-start)
	for _, e := range entries[start:end] {
		row := utils.PadRight(utils.TruncateString(renderEntry(e, p.state), width), width)
		if e.Path.Equal(p.state.selected) {
			row = design.SelectedRowStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return s.Render(area, block.Render(strings.Join(rows, "\n")))
}

func renderEntry(e Entry, s NavigationState) string {
	symbol := symbolLeaf
	if !e.Node.IsLeaf() {
		symbol = symbolClosed
		if s.IsOpen(e.Path) {
			symbol = symbolOpen
		}
	}
	return strings.Repeat(" ", e.Depth*indentWidth) + symbol + e.Node.DisplayLabel()
}

// toggleSelected flips the selected path's membership in the open set.
func (p *Panel) toggleSelected() {
	node, ok := lookup(p.roots, p.state.selected)
	if !ok || node.IsLeaf() {
		return
	}
	k := p.state.selected.key()
	if _, open := p.state.open[k]; open {
		delete(p.state.open, k)
		p.clampOffset()
		logging.Debug(subsystem, "collapsed %s", p.state.selected)
		return
	}
	p.state.open[k] = p.state.Selected()
	logging.Debug(subsystem, "expanded %s", p.state.selected)
}

// keyLeft collapses the selected node when it is open, otherwise moves the
// selection to its parent.
func (p *Panel) keyLeft() {
	node, ok := lookup(p.roots, p.state.selected)
	if !ok {
		return
	}
	if !node.IsLeaf() && p.state.IsOpen(p.state.selected) {
		delete(p.state.open, p.state.selected.key())
		p.clampOffset()
		return
	}
	if parent := p.state.selected.Parent(); len(parent) > 0 {
		p.selectPath(parent)
	}
}

// keyRight opens the selected node when it is closed, otherwise moves the
// selection to its first child.
func (p *Panel) keyRight() {
	node, ok := lookup(p.roots, p.state.selected)
	if !ok || node.IsLeaf() {
		return
	}
	if !p.state.IsOpen(p.state.selected) {
		p.state.open[p.state.selected.key()] = p.state.Selected()
		return
	}
	p.selectPath(p.state.selected.Child(node.Children[0].ID))
}

// keyDown selects the next visible entry. With nothing selected it selects
// the first entry. It does not wrap.
func (p *Panel) keyDown() {
	entries := p.Visible()
	if len(entries) == 0 {
		return
	}
	i := indexOf(entries, p.state.selected)
	if i < 0 {
		p.selectPath(entries[0].Path)
		return
	}
	if i+1 < len(entries) {
		p.selectPath(entries[i+1].Path)
	}
}

// keyUp selects the previous visible entry. With nothing selected it
// selects the last entry. It does not wrap.
func (p *Panel) keyUp() {
	entries := p.Visible()
	if len(entries) == 0 {
		return
	}
	i := indexOf(entries, p.state.selected)
	if i < 0 {
		p.selectPath(entries[len(entries)-1].Path)
		return
	}
	if i > 0 {
		p.selectPath(entries[i-1].Path)
	}
}

func (p *Panel) selectFirst() {
	if entries := p.Visible(); len(entries) > 0 {
		p.selectPath(entries[0].Path)
	}
}

func (p *Panel) selectLast() {
	if entries := p.Visible(); len(entries) > 0 {
		p.selectPath(entries[len(entries)-1].Path)
	}
}

// selectPath changes the selection and scrolls just enough to keep it on
// screen.
func (p *Panel) selectPath(path Path) {
	p.state.selected = append(Path(nil), path...)

	i := indexOf(p.Visible(), path)
	if i < 0 {
		return
	}
	height := p.viewportHeight()
	if i < p.state.offset {
		p.state.offset = i
	} else if i >= p.state.offset+height {
		p.state.offset = i - height + 1
	}
}

// scrollDown moves the viewport without touching the selection. The
// viewport never scrolls past the end of the visible sequence.
func (p *Panel) scrollDown(n int) {
	p.state.offset = min(p.state.offset+n, p.offsetLimit())
}

func (p *Panel) scrollUp(n int) {
	p.state.offset = max(min(p.state.offset, p.offsetLimit())-n, 0)
}

// clampOffset pulls the viewport back after the visible sequence shrank.
func (p *Panel) clampOffset() {
	p.state.offset = min(p.state.offset, p.offsetLimit())
}

func (p *Panel) offsetLimit() int {
	return maxOffset(len(p.Visible()), p.viewportHeight())
}

// maxOffset is the largest window start that still fills a viewport of
// height rows from n entries.
func maxOffset(n, height int) int {
	return max(0, n-height)
}

// viewportHeight is the body height of the last Draw, at least one row.
func (p *Panel) viewportHeight() int {
	return max(p.height, 1)
}
