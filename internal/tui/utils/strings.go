package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to strings cut short by Truncate.
const Ellipsis = "…"

// TruncateString cuts s to at most width terminal cells, appending an
// ellipsis when anything was removed. Wide runes are never split.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight fills s with spaces up to width cells.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
