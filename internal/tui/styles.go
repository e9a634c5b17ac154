package tui

import "github.com/charmbracelet/lipgloss"

// Text styles
var (
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")) // focused input highlight
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// Dialog styles
var (
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	dialogErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	errorBoxStyle = dialogBoxStyle.
			BorderForeground(lipgloss.Color("196"))
)

// Button styles
var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")).
			Padding(0, 2)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	secondaryButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("238")).
				Padding(0, 2)
)

// Layout constants
const (
	dialogWidth    = 64
	inputWidth     = 40
	dialogMinWidth = 30
)

// Warning icon
const iconWarning = "⚠"
