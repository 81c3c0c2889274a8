package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — maritime, deep blues with signal colors
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#082F49") // Deep Sea
	BgCard    = lipgloss.Color("#0C4A6E") // Harbor Blue
	Border    = lipgloss.Color("#155E75") // Cyan Slate

	Gold   = lipgloss.Color("#FBBF24")
	Silver = lipgloss.Color("#CBD5E1")
	Bronze = lipgloss.Color("#D97706")
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

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// ScoreColor maps a score percentage to its signal color: green from
// 70, amber from 50, red below.
func ScoreColor(percentage int) color.Color {
	switch {
	case percentage >= 70:
		return Success
	case percentage >= 50:
		return Accent
	default:
		return Error
	}
}

// MedalColor returns the podium color for a leaderboard rank (0-based),
// or the dim text color past the podium.
func MedalColor(rank int) color.Color {
	switch rank {
	case 0:
		return Gold
	case 1:
		return Silver
	case 2:
		return Bronze
	default:
		return TextDim
	}
}
