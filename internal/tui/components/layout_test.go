package components

import (
	"cqlterm/internal/tui/design"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_SplitVertical(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		percent   float64
		wantLeft  int
		wantRight int
	}{
		{name: "thirty percent", width: 100, percent: 0.3, wantLeft: 30, wantRight: 70},
		{name: "invalid percent falls back to half", width: 100, percent: 1.5, wantLeft: 50, wantRight: 50},
		{name: "left clamped to minimum", width: 100, percent: 0.05, wantLeft: design.MinPanelWidth, wantRight: 100 - design.MinPanelWidth},
		{name: "right clamped to minimum", width: 100, percent: 0.95, wantLeft: 100 - design.MinPanelWidth, wantRight: design.MinPanelWidth},
		{name: "too narrow splits evenly", width: 10, percent: 0.3, wantLeft: 5, wantRight: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := NewLayout(tt.width, 24).SplitVertical(tt.percent)
			assert.Equal(t, tt.wantLeft, left)
			assert.Equal(t, tt.wantRight, right)
			assert.Equal(t, tt.width, left+right)
		})
	}
}

func TestLayout_SplitHorizontal(t *testing.T) {
	top, bottom := NewLayout(80, 30).SplitHorizontal(0.7)
	assert.Equal(t, 21, top)
	assert.Equal(t, 9, bottom)

	top, bottom = NewLayout(80, 8).SplitHorizontal(0.9)
	assert.Equal(t, 8, top+bottom)
	assert.Equal(t, 4, top)
}

func TestLayout_FitsAndContentArea(t *testing.T) {
	l := NewLayout(80, 24)
	assert.True(t, l.Fits(2, 2))
	assert.False(t, NewLayout(30, 24).Fits(2, 1))
	assert.Equal(t, 23, l.CalculateContentArea(1))
	assert.Equal(t, 0, NewLayout(80, 0).CalculateContentArea(1))
}
