package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Flint status colors and styles
var (
	ColorGreen  = lipgloss.Color("42")  // success
	ColorYellow = lipgloss.Color("220") // warning
	ColorRed    = lipgloss.Color("196") // error
	ColorBlue   = lipgloss.Color("63")  // running commands
	ColorGray   = lipgloss.Color("240") // subtle text

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	RunStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			PaddingLeft(2)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2)
)
