package controller

import (
	"cqlterm/internal/tui/panel"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePanel records what the coordinator asks of it.
type fakePanel struct {
	title     string
	keys      []string
	received  []panel.Command
	draws     []bool
	onKey     panel.Command
	keyErr    error
	onReceive func(panel.Command) (panel.Command, error)
	drawErr   error
}

func (f *fakePanel) Title() string { return f.title }

func (f *fakePanel) HandleKey(msg tea.KeyMsg) (panel.Command, error) {
	f.keys = append(f.keys, msg.String())
	return f.onKey, f.keyErr
}

func (f *fakePanel) Receive(cmd panel.Command) (panel.Command, error) {
	f.received = append(f.received, cmd)
	if f.onReceive != nil {
		return f.onReceive(cmd)
	}
	return nil, nil
}

func (f *fakePanel) Draw(s panel.Surface, area panel.Rect, focused bool) error {
	f.draws = append(f.draws, focused)
	if f.drawErr != nil {
		return f.drawErr
	}
	return s.Render(area, f.title)
}

func newFakes(n int) ([]*fakePanel, []panel.Panel) {
	fakes := make([]*fakePanel, n)
	panels := make([]panel.Panel, n)
	for i := range fakes {
		fakes[i] = &fakePanel{title: fmt.Sprintf("P%d", i)}
		panels[i] = fakes[i]
	}
	return fakes, panels
}

func newCoordinator(t *testing.T, panels []panel.Panel, opts ...Option) *Coordinator {
	t.Helper()
	c, err := NewCoordinator(panels, opts...)
	require.NoError(t, err)
	return c
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyA        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
)

func TestNewCoordinator_RequiresPanels(t *testing.T) {
	_, err := NewCoordinator(nil)
	assert.ErrorIs(t, err, ErrNoPanels)
}

func TestNextFocus(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		current int
		delta   int
		want    int
	}{
		{name: "forward", count: 3, current: 0, delta: 1, want: 1},
		{name: "forward wraps", count: 3, current: 2, delta: 1, want: 0},
		{name: "backward", count: 3, current: 2, delta: -1, want: 1},
		{name: "backward wraps", count: 3, current: 0, delta: -1, want: 2},
		{name: "single panel", count: 1, current: 0, delta: 1, want: 0},
		{name: "large delta clamped", count: 4, current: 1, delta: 7, want: 2},
		{name: "no panels", count: 0, current: 0, delta: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextFocus(tt.count, tt.current, tt.delta))
		})
	}
}

func TestFocusCycling(t *testing.T) {
	fakes, panels := newFakes(3)
	for _, f := range fakes {
		f.onKey = panel.SwitchFocusForward{}
	}
	c := newCoordinator(t, panels)

	for i := 1; i <= 7; i++ {
		quit, err := c.HandleKey(keyTab)
		require.NoError(t, err)
		require.False(t, quit)
		assert.Equal(t, i%3, c.Focused())
	}

	for _, f := range fakes {
		f.onKey = panel.SwitchFocusBackward{}
	}
	start := c.Focused()
	for i := 1; i <= 4; i++ {
		_, err := c.HandleKey(keyShiftTab)
		require.NoError(t, err)
		assert.Equal(t, ((start-i)%3+3)%3, c.Focused())
	}
}

func TestHandleKey_RoutesToFocusedPanelOnly(t *testing.T) {
	fakes, panels := newFakes(3)
	fakes[0].onKey = panel.SwitchFocusForward{}
	c := newCoordinator(t, panels)

	_, err := c.HandleKey(keyA)
	require.NoError(t, err)
	_, err = c.HandleKey(keyA)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, fakes[0].keys)
	assert.Equal(t, []string{"a"}, fakes[1].keys)
	assert.Empty(t, fakes[2].keys)
}

func TestHandleKey_QuitKeyIsGlobal(t *testing.T) {
	fakes, panels := newFakes(2)
	c := newCoordinator(t, panels)

	quit, err := c.HandleKey(keyCtrlC)
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Empty(t, fakes[0].keys)
}

func TestHandleKey_PanelError(t *testing.T) {
	boom := errors.New("boom")
	fakes, panels := newFakes(2)
	fakes[0].keyErr = boom
	fakes[0].onKey = panel.SwitchFocusForward{}
	c := newCoordinator(t, panels)

	quit, err := c.HandleKey(keyA)
	assert.False(t, quit)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "P0")
	assert.Equal(t, 0, c.Focused(), "failed key must not switch focus")
}

func TestResolve_RelaysToEveryPanel(t *testing.T) {
	fakes, panels := newFakes(3)
	fakes[1].onKey = panel.AppendLog{Line: "hello"}
	c := newCoordinator(t, panels)
	c.focused = 1

	_, err := c.HandleKey(keyA)
	require.NoError(t, err)
	for _, f := range fakes {
		assert.Equal(t, []panel.Command{panel.AppendLog{Line: "hello"}}, f.received)
	}
	assert.Equal(t, 1, c.Focused())
}

func TestResolve_FollowUpCommands(t *testing.T) {
	fakes, panels := newFakes(2)
	fakes[1].onReceive = func(cmd panel.Command) (panel.Command, error) {
		if _, ok := cmd.(panel.AppendLog); ok {
			return panel.SwitchFocusForward{}, nil
		}
		return nil, nil
	}
	c := newCoordinator(t, panels)

	quit, err := c.Resolve(panel.AppendLog{Line: "x"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, c.Focused())
}

func TestResolve_QuitCommand(t *testing.T) {
	fakes, panels := newFakes(2)
	fakes[0].onKey = panel.Quit{}
	c := newCoordinator(t, panels)

	quit, err := c.HandleKey(keyA)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestResolve_EchoIsBounded(t *testing.T) {
	fakes, panels := newFakes(1)
	fakes[0].onReceive = func(cmd panel.Command) (panel.Command, error) {
		return cmd, nil
	}
	c := newCoordinator(t, panels)

	quit, err := c.Resolve(panel.AppendLog{Line: "echo"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Len(t, fakes[0].received, maxRelayDepth+1)
}

func TestResolve_ReceiveError(t *testing.T) {
	boom := errors.New("receive failed")
	fakes, panels := newFakes(2)
	fakes[1].onReceive = func(panel.Command) (panel.Command, error) { return nil, boom }
	c := newCoordinator(t, panels)

	_, err := c.Resolve(panel.AppendLog{Line: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestResolve_NilIsNoop(t *testing.T) {
	fakes, panels := newFakes(2)
	c := newCoordinator(t, panels)

	quit, err := c.Resolve(nil)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 0, c.Focused())
	assert.Empty(t, fakes[0].received)
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name   string
		panels int
		width  int
		height int
		wantOK bool
	}{
		{name: "three panels", panels: 3, width: 120, height: 40, wantOK: true},
		{name: "two panels", panels: 2, width: 80, height: 24, wantOK: true},
		{name: "single panel", panels: 1, width: 30, height: 10, wantOK: true},
		{name: "too narrow", panels: 3, width: 30, height: 40},
		{name: "too short", panels: 3, width: 120, height: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, panels := newFakes(tt.panels)
			c := newCoordinator(t, panels)

			rects, ok := c.Layout(tt.width, tt.height)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			require.Len(t, rects, tt.panels)

			bounds := panel.Rect{Width: tt.width, Height: tt.height}
			area := 0
			for i, r := range rects {
				assert.True(t, r.Within(bounds), "rect %s", r)
				for _, o := range rects[i+1:] {
					assert.False(t, r.Intersects(o), "%s overlaps %s", r, o)
				}
				area += r.Width * r.Height
			}
			assert.Equal(t, tt.width*tt.height, area, "layout covers the whole area")
		})
	}
}

func TestLayout_NavigatorWidth(t *testing.T) {
	_, panels := newFakes(2)
	c := newCoordinator(t, panels, WithNavigatorWidth(0.5))

	rects, ok := c.Layout(100, 20)
	require.True(t, ok)
	assert.Equal(t, 50, rects[0].Width)
	assert.Equal(t, 50, rects[1].X)
}

func TestLayout_RightColumnSharesHeight(t *testing.T) {
	tests := []struct {
		name    string
		panels  int
		height  int
		heights []int
	}{
		{name: "two stacked, even", panels: 3, height: 40, heights: []int{20, 20}},
		{name: "two stacked, odd", panels: 3, height: 41, heights: []int{20, 21}},
		{name: "three stacked", panels: 4, height: 30, heights: []int{10, 10, 10}},
		{name: "three stacked, remainder last", panels: 4, height: 32, heights: []int{10, 11, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, panels := newFakes(tt.panels)
			c := newCoordinator(t, panels)

			rects, ok := c.Layout(120, tt.height)
			require.True(t, ok)

			var got []int
			y := 0
			for _, r := range rects[1:] {
				assert.Equal(t, y, r.Y, "right column is contiguous")
				assert.Equal(t, rects[0].Width, r.X)
				got = append(got, r.Height)
				y += r.Height
			}
			assert.Equal(t, tt.heights, got)
		})
	}
}

func TestDraw_OncePerPanelWithFocusFlag(t *testing.T) {
	fakes, panels := newFakes(3)
	c := newCoordinator(t, panels)
	c.focused = 2

	rects, ok := c.Layout(120, 40)
	require.True(t, ok)
	frame := panel.NewFrame(120, 40)
	require.NoError(t, c.Draw(frame, rects))

	assert.Equal(t, []bool{false}, fakes[0].draws)
	assert.Equal(t, []bool{false}, fakes[1].draws)
	assert.Equal(t, []bool{true}, fakes[2].draws)
	assert.Contains(t, frame.String(), "P1")
}

func TestDraw_ErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("surface gone")
	fakes, panels := newFakes(3)
	fakes[1].drawErr = boom
	c := newCoordinator(t, panels)

	rects, ok := c.Layout(120, 40)
	require.True(t, ok)
	err := c.Draw(panel.NewFrame(120, 40), rects)
	assert.Same(t, boom, err)
	assert.Empty(t, fakes[2].draws)
}
