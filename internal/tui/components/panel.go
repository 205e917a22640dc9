package components

import (
	"cqlterm/internal/tui/design"
	"cqlterm/internal/tui/utils"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block renders a titled, bordered box of a fixed outer size. The first
// inner row carries the title; the remaining rows carry the body.
type Block struct {
	Title   string
	Width   int
	Height  int
	Focused bool
}

// NewBlock creates a new block with the given title
func NewBlock(title string) *Block {
	return &Block{Title: title}
}

// WithDimensions sets the outer block dimensions, border included
func (b *Block) WithDimensions(width, height int) *Block {
	b.Width = width
	b.Height = height
	return b
}

// SetFocused updates the focus state
func (b *Block) SetFocused(focused bool) *Block {
	b.Focused = focused
	return b
}

// InnerWidth is the number of columns available inside the border.
func (b *Block) InnerWidth() int {
	return max(b.Width-2, 0)
}

// BodyHeight is the number of rows available below the title.
func (b *Block) BodyHeight() int {
	return max(b.Height-3, 0)
}

// Render returns the styled block. Body lines wider than InnerWidth are
// cut; callers are expected to have sized their content already.
func (b *Block) Render(body string) string {
	innerWidth := b.InnerWidth()
	innerHeight := max(b.Height-2, 0)

	lines := make([]string, 0, innerHeight)
	if innerHeight > 0 {
		lines = append(lines, b.renderTitle(innerWidth))
	}
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			if len(lines) >= innerHeight {
				break
			}
			lines = append(lines, line)
		}
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return b.getStyle().
		Width(innerWidth).
		Height(innerHeight).
		MaxWidth(b.Width).
		MaxHeight(b.Height).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the border style for the current focus state
func (b *Block) getStyle() lipgloss.Style {
	if b.Focused {
		return design.BorderFocusStyle
	}
	return design.BorderStyle
}

// renderTitle renders the title truncated to width
func (b *Block) renderTitle(width int) string {
	if b.Title == "" {
		return ""
	}
	style := design.TitleStyle
	if b.Focused {
		style = design.TitleFocusStyle
	}
	return style.Render(utils.TruncateString(b.Title, width))
}
