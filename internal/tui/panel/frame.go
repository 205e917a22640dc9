package panel

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrOutOfBounds is returned when a rectangle does not fit the surface.
	ErrOutOfBounds = errors.New("area outside of surface bounds")
	// ErrEmptyArea is returned for rectangles without width or height.
	ErrEmptyArea = errors.New("area has no size")
	// ErrOverlap is returned when a rectangle overlaps one drawn earlier in the same frame.
	ErrOverlap = errors.New("area overlaps a previously drawn area")
)

// Rect is a region of a surface, in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right is the first column after the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row after the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y && r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Surface receives rendered content for a rectangle.
type Surface interface {
	Render(area Rect, content string) error
}

type block struct {
	area  Rect
	lines []string
}

// Frame is a Surface that composes rendered blocks into one screen string.
type Frame struct {
	bounds Rect
	blocks []block
}

// NewFrame creates an empty frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{bounds: Rect{Width: width, Height: height}}
}

// Bounds returns the full frame rectangle.
func (f *Frame) Bounds() Rect {
	return f.bounds
}

// Render stores content for area. The content is cut or padded to exactly
// fill the rectangle.
func (f *Frame) Render(area Rect, content string) error {
	if area.Width <= 0 || area.Height <= 0 {
		return fmt.Errorf("render %s: %w", area, ErrEmptyArea)
	}
	if !area.Within(f.bounds) {
		return fmt.Errorf("render %s into %s: %w", area, f.bounds, ErrOutOfBounds)
	}
	for _, b := range f.blocks {
		if b.area.Intersects(area) {
			return fmt.Errorf("render %s over %s: %w", area, b.area, ErrOverlap)
		}
	}

	f.blocks = append(f.blocks, block{area: area, lines: fitLines(content, area.Width, area.Height)})
	return nil
}

// String composes the frame row by row. Cells not covered by any block are
// blank.
func (f *Frame) String() string {
	sorted := make([]block, len(f.blocks))
	copy(sorted, f.blocks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].area.X < sorted[j].area.X })

	rows := make([]string, f.bounds.Height)
	for y := range rows {
		var sb strings.Builder
		col := 0
		for _, b := range sorted {
			if y < b.area.Y || y >= b.area.Bottom() {
				continue
			}
			sb.WriteString(strings.Repeat(" ", b.area.X-col))
			sb.WriteString(b.lines[y-b.area.Y])
			col = b.area.Right()
		}
		sb.WriteString(strings.Repeat(" ", f.bounds.Width-col))
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// fitLines returns exactly height lines, each exactly width cells wide.
func fitLines(content string, width, height int) []string {
	src := strings.Split(content, "\n")
	cut := lipgloss.NewStyle().MaxWidth(width)

	lines := make([]string, height)
	for i := range lines {
		var line string
		if i < len(src) {
			line = src[i]
		}
		w := lipgloss.Width(line)
		if w > width {
			line = cut.Render(line)
			w = lipgloss.Width(line)
		}
		lines[i] = line + strings.Repeat(" ", max(width-w, 0))
	}
	return lines
}
