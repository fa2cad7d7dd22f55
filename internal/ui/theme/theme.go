package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — gym-floor energy on a dark slate base
var (
	Primary   = lipgloss.Color("#F97316") // Orange
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#FACC15") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
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
)

// Chat roles
var (
	UserLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	CoachLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SystemNote = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Markup blocks
var (
	Heading2 = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Heading3 = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ListMarker = lipgloss.NewStyle().
			Foreground(Secondary)

	BoldSpan = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	ItalicSpan = lipgloss.NewStyle().
			Foreground(Text).
			Italic(true)
)
