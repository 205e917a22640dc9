package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	// Spacing units
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2

	// Component dimensions
	MinPanelHeight = 5
	MinPanelWidth  = 20

	// FooterHeight is the number of rows reserved for the help line.
	FooterHeight = 1
)

// Color Palette
var (
	// ColorFocus marks the panel that owns keyboard input.
	ColorFocus = lipgloss.Color("10") // light green

	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}

	ColorHighlightText = lipgloss.Color("0")  // black
	ColorCursor        = lipgloss.Color("15") // white
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	// Border Styles
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = BorderStyle.
				BorderForeground(ColorFocus)
)

// Component Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextSecondary)

	TitleFocusStyle = TitleStyle.
			Foreground(ColorFocus)

	// SelectedRowStyle highlights the navigator's selected row.
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorHighlightText).
				Background(ColorFocus).
				Bold(true)

	// CursorLineFocusStyle and CursorFocusStyle are applied to the REPL
	// only while it owns keyboard input.
	CursorLineFocusStyle = lipgloss.NewStyle().
				Foreground(ColorCursor)

	CursorFocusStyle = lipgloss.NewStyle().
				Background(ColorCursor)

	// NeutralStyle is the absence of any highlight.
	NeutralStyle = lipgloss.NewStyle()

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Height(FooterHeight)
)
