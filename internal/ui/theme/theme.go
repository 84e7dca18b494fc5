package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — arena neon on near-black, readable from a few feet away
var (
	Primary   = lipgloss.Color("#22D3EE") // Electric Cyan
	Secondary = lipgloss.Color("#A855F7") // Violet
	Accent    = lipgloss.Color("#FACC15") // Gold
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Warning   = lipgloss.Color("#FB923C") // Amber
	Text      = lipgloss.Color("#FAFAFA") // White
	TextDim   = lipgloss.Color("#A1A1AA") // Zinc
	BgDark    = lipgloss.Color("#09090B") // Near Black
	BgCard    = lipgloss.Color("#18181B") // Charcoal
	Border    = lipgloss.Color("#3F3F46") // Zinc Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Advice verdict colors: accepted green, rewritten gold, rejected red.
	Accepted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Rewritten = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Rejected = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
