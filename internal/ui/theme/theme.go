// Package theme defines the color palette and shared lipgloss styles for
// the Lingua terminal UI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette.
var (
	Primary   = lipgloss.Color("#3B82F6") // blue
	Secondary = lipgloss.Color("#10B981") // emerald
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E") // green
	Error     = lipgloss.Color("#EF4444") // red
	Text      = lipgloss.Color("#F1F5F9") // near white
	TextDim   = lipgloss.Color("#94A3B8") // slate
	BgDark    = lipgloss.Color("#0B1120") // deep navy
	BgCard    = lipgloss.Color("#1E293B") // card surface
	Border    = lipgloss.Color("#334155") // subtle border
)

// Typography.
var (
	Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Subtitle = lipgloss.NewStyle().
			Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout.
var (
	Header = lipgloss.NewStyle().
		Foreground(Text).
		Background(BgCard).
		Padding(0, 1)

	Footer = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Interaction states.
var (
	Selected = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	Unselected = lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components.
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)

	ButtonActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Secondary).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(BgCard).
			Padding(0, 2)
)
