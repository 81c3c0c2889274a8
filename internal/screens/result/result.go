package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/quiz"
	"github.com/oguzk/denizci/internal/screen"
	"github.com/oguzk/denizci/internal/syncer"
	"github.com/oguzk/denizci/internal/ui/components"
	"github.com/oguzk/denizci/internal/ui/layout"
	"github.com/oguzk/denizci/internal/ui/theme"
)

// ResultScreen shows the outcome of a finished session: score, missed
// questions with their explanations, and a retry over exactly the
// missed ones.
type ResultScreen struct {
	sy    *syncer.Syncer
	name  string
	res   quiz.Result
	queue []bank.Question
	menu  components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. queue is the finished session's question
// list, reused to build the retry session.
func New(sy *syncer.Syncer, name string, res quiz.Result, queue []bank.Question) *ResultScreen {
	items := []components.MenuItem{
		{
			Label:    retryLabel(res),
			Hint:     fmt.Sprintf("%d soru", len(res.Missed)),
			Disabled: len(res.Missed) == 0,
			Action: func() tea.Cmd {
				return startRetry(sy, name, retryLabel(res), queue)
			},
		},
		{
			Label: "Panoya Dön",
			Action: func() tea.Cmd {
				return func() tea.Msg { return screen.ShowDashboardMsg{} }
			},
		},
	}

	return &ResultScreen{
		sy:    sy,
		name:  name,
		res:   res,
		queue: queue,
		menu:  components.NewMenu(items),
	}
}

// retryLabel names the retry session after what was just finished: a
// section gets a scoped label, a retry of a retry keeps its own.
func retryLabel(res quiz.Result) string {
	if strings.HasPrefix(res.Label, "Yanlış") {
		return res.Label
	}
	return "Yanlış Tekrar: " + res.Label
}

// startRetry clears the missed answers, persists, and opens a session
// over exactly those questions.
func startRetry(sy *syncer.Syncer, name, label string, queue []bank.Question) tea.Cmd {
	rec := sy.Store().Load(name)
	cleared, sess, ok := quiz.Retry(label, rec, queue)
	if !ok {
		return nil
	}
	_ = sy.Save(name, cleared)
	return func() tea.Msg { return screen.ShowQuizMsg{Session: sess} }
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Sonuç"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Gezin"},
		{Key: "Enter", Description: "Seç"},
		{Key: "Esc", Description: "Pano"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return r, func() tea.Msg { return screen.ShowDashboardMsg{} }
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder

	headline := fmt.Sprintf("%s tamamlandı!", r.res.Label)
	if r.res.SectionCompleted {
		headline += "  ✓"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	bar := components.NewScoreBar("Skor", r.res.Stats.Percentage, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	counters := fmt.Sprintf("Doğru: %d    Yanlış: %d    Toplam: %d",
		r.res.Stats.Correct, r.res.Stats.Wrong, r.res.Stats.Total)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(counters))
	b.WriteString("\n\n")

	if len(r.res.Missed) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Yanlış Cevapların")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, m := range r.res.Missed {
			q := m.Question
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(width - 4).
				Render("  " + q.Question))
			b.WriteString("\n")
			verdict := fmt.Sprintf("  senin cevabın: %s  ·  doğrusu: %s",
				bank.OptionLetters[m.ChosenIndex], bank.OptionLetters[q.Correct])
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(verdict))
			b.WriteString("\n")
			if q.Explanation != "" {
				b.WriteString(lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Italic(true).
					Width(width - 4).
					Render("  " + q.Explanation))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(r.menu.View())

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
