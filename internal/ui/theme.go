package ui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable on dark terminals.
var (
	primary = lipgloss.Color("#38BDF8") // Sky
	success = lipgloss.Color("#22C55E") // Green
	warning = lipgloss.Color("#FBBF24") // Amber
	errCol  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(success)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)
