package controller

import (
	"cqlterm/internal/tui/components"
	"cqlterm/internal/tui/design"
	"cqlterm/internal/tui/panel"
	"cqlterm/pkg/logging"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Controller"

// maxRelayDepth bounds how many rounds of follow-up commands a single key
// may trigger.
const maxRelayDepth = 8

// ErrNoPanels is returned when a coordinator is built without panels.
var ErrNoPanels = errors.New("no panels registered")

// Coordinator owns the ordered panel registry and the focused index. Keys
// go to the focused panel only; the commands panels return are resolved
// here.
type Coordinator struct {
	panels         []panel.Panel
	focused        int
	quit           key.Binding
	navigatorWidth float64
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithNavigatorWidth sets the fraction of the width given to the first
// panel's column.
func WithNavigatorWidth(fraction float64) Option {
	return func(c *Coordinator) { c.navigatorWidth = fraction }
}

// WithQuitKeys replaces the global quit binding.
func WithQuitKeys(b key.Binding) Option {
	return func(c *Coordinator) { c.quit = b }
}

// NewCoordinator registers panels in focus order. The first panel starts
// focused.
func NewCoordinator(panels []panel.Panel, opts ...Option) (*Coordinator, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	c := &Coordinator{
		panels:         append([]panel.Panel(nil), panels...),
		navigatorWidth: 0.3,
		quit:           DefaultQuitKeys(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DefaultQuitKeys binds ctrl+c.
func DefaultQuitKeys() key.Binding {
	return key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
}

// Bindings exposes the coordinator's own bindings under their action names.
func (c *Coordinator) Bindings() panel.Bindings {
	return panel.Bindings{panel.ActionQuit: &c.quit}
}

// Focused returns the index of the focused panel.
func (c *Coordinator) Focused() int { return c.focused }

// FocusedPanel returns the panel that receives keys.
func (c *Coordinator) FocusedPanel() panel.Panel { return c.panels[c.focused] }

// Len returns the number of registered panels.
func (c *Coordinator) Len() int { return len(c.panels) }

// HandleKey processes one key event to completion: the quit key is checked
// first, then the key is routed to the focused panel and the command it
// returns is resolved.
func (c *Coordinator) HandleKey(msg tea.KeyMsg) (quit bool, err error) {
	if key.Matches(msg, c.quit) {
		return true, nil
	}
	cmd, err := c.FocusedPanel().HandleKey(msg)
	if err != nil {
		return false, fmt.Errorf("panel %s handling %q: %w", c.name(c.focused), msg.String(), err)
	}
	return c.Resolve(cmd)
}

// Resolve applies cmd. Focus commands move the focused index; Quit ends the
// program; any other command is relayed to every panel's Receive, and the
// commands they return are resolved in turn, up to maxRelayDepth rounds.
func (c *Coordinator) Resolve(cmd panel.Command) (quit bool, err error) {
	pending := []panel.Command{cmd}
	for depth := 0; len(pending) > 0; depth++ {
		if depth > maxRelayDepth {
			logging.Warn(controllerSubsystem, "Dropping %d commands after %d relay rounds", len(pending), maxRelayDepth)
			return false, nil
		}

		var next []panel.Command
		for _, cmd := range pending {
			switch cmd.(type) {
			case nil:
			case panel.SwitchFocusForward:
				c.focused = nextFocus(len(c.panels), c.focused, 1)
			case panel.SwitchFocusBackward:
				c.focused = nextFocus(len(c.panels), c.focused, -1)
			case panel.Quit:
				return true, nil
			default:
				for i, p := range c.panels {
					out, err := p.Receive(cmd)
					if err != nil {
						return false, fmt.Errorf("panel %s receiving %T: %w", c.name(i), cmd, err)
					}
					if out != nil {
						next = append(next, out)
					}
				}
			}
		}
		pending = next
	}
	return false, nil
}

// nextFocus moves current by delta positions over count panels, wrapping at
// both ends.
func nextFocus(count, current, delta int) int {
	if count == 0 {
		return current
	}
	if delta > 0 {
		delta = 1
	} else if delta < 0 {
		delta = -1
	}
	return (current + delta + count) % count
}

// name is the panel's title, or its position when it has none.
func (c *Coordinator) name(i int) string {
	if t, ok := c.panels[i].(panel.Titled); ok && t.Title() != "" {
		return t.Title()
	}
	return fmt.Sprintf("#%d", i)
}

// Layout assigns a rectangle to every panel. The first panel gets a left
// column; the rest share the right column top to bottom. ok is false when
// the area cannot hold every panel at its minimum size.
func (c *Coordinator) Layout(width, height int) (rects []panel.Rect, ok bool) {
	l := components.NewLayout(width, height)
	if len(c.panels) == 1 {
		return []panel.Rect{{Width: width, Height: height}}, l.Fits(1, 1)
	}

	rest := len(c.panels) - 1
	if !l.Fits(2, rest) {
		return nil, false
	}

	left, right := l.SplitVertical(c.navigatorWidth)
	rects = append(rects, panel.Rect{Width: left, Height: height})

	// Each panel takes an equal share of what is left of the column; the
	// last one takes the remainder.
	y := 0
	for i := rest; i > 1; i-- {
		h, _ := components.NewLayout(right, height-y).SplitHorizontal(1 / float64(i))
		rects = append(rects, panel.Rect{X: left, Y: y, Width: right, Height: h})
		y += h
	}
	rects = append(rects, panel.Rect{X: left, Y: y, Width: right, Height: height - y})
	return rects, true
}

// MinSize is the smallest content area that passes Layout.
func (c *Coordinator) MinSize() (width, height int) {
	if len(c.panels) == 1 {
		return design.MinPanelWidth, design.MinPanelHeight
	}
	return design.MinPanelWidth * 2, design.MinPanelHeight * (len(c.panels) - 1)
}

// Draw renders every panel into its rectangle of s, exactly once. The
// first rendering error is returned unchanged.
func (c *Coordinator) Draw(s panel.Surface, rects []panel.Rect) error {
	for i, p := range c.panels {
		if err := p.Draw(s, rects[i], i == c.focused); err != nil {
			return err
		}
	}
	return nil
}
