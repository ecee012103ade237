package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, parchment and gold on a dark stone background
var (
	Primary   = lipgloss.Color("#F5C542") // Gold
	Secondary = lipgloss.Color("#4FB286") // Hunter green
	Accent    = lipgloss.Color("#E07A3F") // Copper
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F4EBD0") // Parchment
	TextDim   = lipgloss.Color("#9A8F7A") // Faded ink
	BgDark    = lipgloss.Color("#1B1712") // Stone
	BgCard    = lipgloss.Color("#2A241C") // Dark oak
	Border    = lipgloss.Color("#4A3F30") // Oak
)

// Series colors for the chart: the selected skill and the overlay.
var (
	SeriesPrimary   = Primary
	SeriesSecondary = Secondary
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

	Axis = lipgloss.NewStyle().
		Foreground(TextDim)
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

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Loaded = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(Accent)
)
