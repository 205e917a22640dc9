package components

import (
	"cqlterm/internal/tui/design"
)

// Layout splits the screen area into panel regions
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// Fits reports whether the area can hold a columns x rows grid of panels
// of minimum size.
func (l *Layout) Fits(columns, rows int) bool {
	return l.Width >= design.MinPanelWidth*columns && l.Height >= design.MinPanelHeight*rows
}

// SplitHorizontal splits the area horizontally by percentage. Both parts
// keep at least MinPanelHeight rows when the area allows it, and the parts
// always add up to Height.
func (l *Layout) SplitHorizontal(topPercent float64) (topHeight, bottomHeight int) {
	if topPercent <= 0 || topPercent >= 1 {
		topPercent = 0.5
	}
	topHeight = clampSplit(int(float64(l.Height)*topPercent), l.Height, design.MinPanelHeight)
	return topHeight, l.Height - topHeight
}

// SplitVertical splits the area vertically by percentage. Both parts keep
// at least MinPanelWidth columns when the area allows it, and the parts
// always add up to Width.
func (l *Layout) SplitVertical(leftPercent float64) (leftWidth, rightWidth int) {
	if leftPercent <= 0 || leftPercent >= 1 {
		leftPercent = 0.5
	}
	leftWidth = clampSplit(int(float64(l.Width)*leftPercent), l.Width, design.MinPanelWidth)
	return leftWidth, l.Width - leftWidth
}

// CalculateContentArea returns the available content height after accounting for the footer
func (l *Layout) CalculateContentArea(footerHeight int) int {
	return max(l.Height-footerHeight, 0)
}

func clampSplit(first, total, minimum int) int {
	if total < minimum*2 {
		return total / 2
	}
	if first < minimum {
		return minimum
	}
	if total-first < minimum {
		return total - minimum
	}
	return first
}
