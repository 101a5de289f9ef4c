package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorTitle = lipgloss.Color("#7C3AED")

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	// the caret line counts columns in bytes, so tabs must not be expanded
	sourceStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			TabWidth(lipgloss.NoTabConversion)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)
)
