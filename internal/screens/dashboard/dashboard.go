package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/progress"
	"github.com/oguzk/denizci/internal/quiz"
	"github.com/oguzk/denizci/internal/screen"
	"github.com/oguzk/denizci/internal/syncer"
	"github.com/oguzk/denizci/internal/ui/components"
	"github.com/oguzk/denizci/internal/ui/layout"
	"github.com/oguzk/denizci/internal/ui/theme"
)

// DashboardScreen is the signed-in home: overall score, the section
// list with per-section status, the wrong-answer retry entry, and the
// leaderboard across everyone known to this device.
type DashboardScreen struct {
	sy   *syncer.Syncer
	bank *bank.Bank
	name string

	menu        components.Menu
	stats       progress.Stats
	rows        []progress.LeaderboardRow
	wrongCount  int
	confirmWipe bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen for the learner, reading fresh progress
// from the store.
func New(sy *syncer.Syncer, b *bank.Bank, name string) *DashboardScreen {
	rec := sy.Store().Load(name)
	stats := progress.Summarize(rec, b.Questions)
	wrongCount := len(progress.Wrong(rec, b.Questions))
	rows := progress.Leaderboard(sy.Store().LoadAll(), b.Questions)

	var items []components.MenuItem
	for _, sec := range b.Sections() {
		section := sec
		qs, _ := b.Section(section)
		items = append(items, components.MenuItem{
			Label: section,
			Hint:  sectionBadge(rec, section, qs),
			Action: func() tea.Cmd {
				return startSection(sy, name, section, qs)
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "Yanlış Cevaplar",
		Hint:     retryHint(wrongCount),
		Disabled: wrongCount == 0,
		Action: func() tea.Cmd {
			return startRetry(sy, name, "Yanlış Cevaplar", b.Questions)
		},
	})

	items = append(items, components.MenuItem{
		Label: "Çıkış Yap",
		Action: func() tea.Cmd {
			_ = sy.Store().SetCurrentUser("")
			return tea.Batch(
				func() tea.Msg { return screen.SetLearnerMsg{} },
				func() tea.Msg { return screen.ShowLoginMsg{} },
			)
		},
	})

	return &DashboardScreen{
		sy:         sy,
		bank:       b,
		name:       name,
		menu:       components.NewMenu(items),
		stats:      stats,
		rows:       rows,
		wrongCount: wrongCount,
	}
}

// startSection opens a quiz session over a full section, resuming at
// the first unanswered question.
func startSection(sy *syncer.Syncer, name, section string, qs []bank.Question) tea.Cmd {
	rec := sy.Store().Load(name)
	sess := quiz.New(section, section, qs, rec)
	return func() tea.Msg { return screen.ShowQuizMsg{Session: sess} }
}

// startRetry clears the wrong answers in qs, persists the cleared
// record, and opens a session over exactly those questions.
func startRetry(sy *syncer.Syncer, name, label string, qs []bank.Question) tea.Cmd {
	rec := sy.Store().Load(name)
	cleared, sess, ok := quiz.Retry(label, rec, qs)
	if !ok {
		return nil
	}
	_ = sy.Save(name, cleared)
	return func() tea.Msg { return screen.ShowQuizMsg{Session: sess} }
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Pano"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.confirmWipe {
		return []layout.KeyHint{
			{Key: "E", Description: "Evet, sıfırla"},
			{Key: "H", Description: "Vazgeç"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Gezin"},
		{Key: "Enter", Description: "Seç"},
		{Key: "R", Description: "Sıfırla"},
		{Key: "Ctrl+C", Description: "Çıkış"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	if d.confirmWipe {
		switch kmsg.String() {
		case "e", "y":
			_ = d.sy.Save(d.name, progress.NewRecord())
			return d, func() tea.Msg { return screen.ShowDashboardMsg{} }
		case "h", "n", "esc":
			d.confirmWipe = false
		}
		return d, nil
	}

	if kmsg.String() == "r" {
		d.confirmWipe = true
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	if d.confirmWipe {
		return d.viewConfirm(width)
	}

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Hoş geldin, %s!", d.name))

	scoreCard := d.viewScore(min(width-4, 46))
	board := d.viewLeaderboard(min(width-4, 40))
	menu := d.menu.View()

	left := greeting + "\n\n" + scoreCard + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Bölümler") + "\n\n" + menu

	if layout.IsCompactWidth(width) {
		return left + "\n" + board
	}

	leftW := width * 3 / 5
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(left),
		board,
	)
	return cols
}

// viewScore renders the overall score bar and counters.
func (d *DashboardScreen) viewScore(width int) string {
	bar := components.NewScoreBar("Genel Skor", d.stats.Percentage, true, width)

	counters := fmt.Sprintf("Cevaplanan: %d/%d    Doğru: %d    Yanlış: %d",
		d.stats.Answered, d.stats.Total, d.stats.Correct, d.stats.Wrong)

	return bar.View() + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counters)
}

// viewLeaderboard renders the ranking with podium colors for the top
// three and the learner's own row highlighted.
func (d *DashboardScreen) viewLeaderboard(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skor Tablosu"))
	b.WriteString("\n\n")

	if len(d.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("henüz kimse yok"))
		return b.String()
	}

	for i, row := range d.rows {
		line := fmt.Sprintf("%d. %-14s %3d doğru  %%%d", i+1, row.Name, row.Correct, row.Percentage)
		style := lipgloss.NewStyle().Foreground(theme.MedalColor(i))
		if row.Name == d.name {
			style = style.Bold(true).Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DashboardScreen) viewConfirm(width int) string {
	msg := fmt.Sprintf("%s için TÜM ilerleme silinecek. Emin misin?", d.name)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(1, 3).
		Render(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(msg) +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("E: evet, sıfırla    H: vazgeç"))
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// sectionBadge summarizes a section's progress for the menu.
func sectionBadge(rec progress.Record, section string, qs []bank.Question) string {
	if rec.Completed[section] {
		st := progress.Summarize(rec, qs)
		return fmt.Sprintf("✓ tamam · %%%d", st.Percentage)
	}
	st := progress.Summarize(rec, qs)
	if st.Answered == 0 {
		return fmt.Sprintf("yeni · %d soru", st.Total)
	}
	return fmt.Sprintf("%d/%d", st.Answered, st.Total)
}

func retryHint(wrongCount int) string {
	if wrongCount == 0 {
		return "yanlış yok"
	}
	return fmt.Sprintf("%d soru", wrongCount)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
