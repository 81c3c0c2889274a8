package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/ui/theme"
)

// ScoreBar displays a horizontal score bar whose fill color follows the
// score thresholds (green from 70%, amber from 50%, red below).
type ScoreBar struct {
	Label       string
	Percentage  int
	ShowPercent bool
	Width       int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, percentage int, showPercent bool, width int) ScoreBar {
	return ScoreBar{
		Label:       label,
		Percentage:  percentage,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the score bar.
func (s ScoreBar) View() string {
	var result string

	if s.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if s.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := s.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * s.Percentage / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.ScoreColor(s.Percentage)).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if s.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.ScoreColor(s.Percentage)).
			Render(fmt.Sprintf("  %%%d", s.Percentage))
	}

	return result
}
