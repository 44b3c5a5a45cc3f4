package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// render applies a style when terminal styling is enabled
func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}
