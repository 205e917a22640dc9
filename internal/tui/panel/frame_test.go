package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 5}

	assert.True(t, a.Intersects(Rect{X: 9, Y: 4, Width: 2, Height: 2}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}), "touching edges do not overlap")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 5, Width: 10, Height: 1}))
}

func TestFrame_Render_Errors(t *testing.T) {
	tests := []struct {
		name    string
		area    Rect
		wantErr error
	}{
		{name: "empty width", area: Rect{Width: 0, Height: 3}, wantErr: ErrEmptyArea},
		{name: "negative height", area: Rect{Width: 3, Height: -1}, wantErr: ErrEmptyArea},
		{name: "too wide", area: Rect{Width: 21, Height: 3}, wantErr: ErrOutOfBounds},
		{name: "too low", area: Rect{Y: 8, Width: 5, Height: 3}, wantErr: ErrOutOfBounds},
		{name: "negative origin", area: Rect{X: -1, Width: 5, Height: 3}, wantErr: ErrOutOfBounds},
		{name: "overlaps first block", area: Rect{X: 5, Y: 1, Width: 5, Height: 2}, wantErr: ErrOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(20, 10)
			require.NoError(t, f.Render(Rect{Width: 10, Height: 5}, "first"))

			err := f.Render(tt.area, "content")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFrame_String_ComposesBlocks(t *testing.T) {
	f := NewFrame(12, 4)
	require.NoError(t, f.Render(Rect{X: 0, Y: 0, Width: 4, Height: 4}, "L1\nL2\nL3\nL4"))
	require.NoError(t, f.Render(Rect{X: 6, Y: 0, Width: 6, Height: 2}, "top"))
	require.NoError(t, f.Render(Rect{X: 6, Y: 2, Width: 6, Height: 2}, "bottom-too-long"))

	out := f.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line))
	}
	assert.Equal(t, "L1    top   ", lines[0])
	assert.Equal(t, "L2          ", lines[1])
	assert.Equal(t, "L3    bottom", lines[2])
	assert.Equal(t, "L4          ", lines[3])
}

func TestFrame_String_Empty(t *testing.T) {
	out := NewFrame(3, 2).String()
	assert.Equal(t, "   \n   ", out)
	assert.Equal(t, Rect{Width: 3, Height: 2}, NewFrame(3, 2).Bounds())
}
