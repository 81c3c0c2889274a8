package quizscreen

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/progress"
	"github.com/oguzk/denizci/internal/quiz"
	"github.com/oguzk/denizci/internal/screen"
	"github.com/oguzk/denizci/internal/syncer"
	"github.com/oguzk/denizci/internal/ui/components"
	"github.com/oguzk/denizci/internal/ui/layout"
	"github.com/oguzk/denizci/internal/ui/theme"
)

// QuizScreen drives a quiz session question by question. Every answer
// is persisted the moment it is given, so leaving mid-session loses
// nothing; already-answered questions render locked with their verdict
// and explanation.
type QuizScreen struct {
	sy   *syncer.Syncer
	name string
	sess quiz.Session
	rec  progress.Record
	opts components.OptionList
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the session, loading the learner's
// record from the store.
func New(sy *syncer.Syncer, name string, sess quiz.Session) *QuizScreen {
	rec := sy.Store().Load(name)
	return &QuizScreen{
		sy:   sy,
		name: name,
		sess: sess,
		rec:  rec,
		opts: optionsFor(sess, rec),
	}
}

// optionsFor builds the option list for the question under the cursor,
// locked when the record already holds an answer for it.
func optionsFor(sess quiz.Session, rec progress.Record) components.OptionList {
	q := sess.Current()
	if chosen, ok := rec.Answer(q.ID); ok {
		return components.NewOptionList(q, true, chosen)
	}
	return components.NewOptionList(q, false, -1)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.sess.Label
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.sess.State(s.rec) {
	case quiz.AwaitingAnswer:
		return []layout.KeyHint{
			{Key: "↑↓/A-E", Description: "Şık seç"},
			{Key: "Enter", Description: "Cevapla"},
			{Key: "←", Description: "Önceki"},
			{Key: "Esc", Description: "Pano"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter/→", Description: "Sonraki"},
			{Key: "←", Description: "Önceki"},
			{Key: "Esc", Description: "Pano"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return screen.ShowDashboardMsg{} }

	case "enter":
		if s.sess.State(s.rec) == quiz.AwaitingAnswer {
			return s, s.submit()
		}
		return s, s.advance()

	case "right", "n":
		return s, s.advance()

	case "left", "p":
		s.sess = s.sess.Retreat()
		s.opts = optionsFor(s.sess, s.rec)
		return s, nil
	}

	var cmd tea.Cmd
	s.opts, cmd = s.opts.Update(msg)
	return s, cmd
}

// submit records the highlighted choice and locks the question. The
// record is saved immediately; the cloud push rides along.
func (s *QuizScreen) submit() tea.Cmd {
	q := s.sess.Current()
	rec, ok := s.sess.Submit(s.rec, q.ID, s.opts.Selected)
	if !ok {
		return nil
	}
	s.rec = rec
	s.opts.Lock(s.opts.Selected)
	_ = s.sy.Save(s.name, s.rec)
	return nil
}

// advance moves to the next question, or finalizes the session after
// the last one and hands off to the result screen.
func (s *QuizScreen) advance() tea.Cmd {
	if s.sess.State(s.rec) != quiz.Answered {
		return nil
	}
	s.sess = s.sess.Advance(s.rec)

	if s.sess.State(s.rec) == quiz.Complete {
		rec, res := quiz.Finalize(s.sess, s.rec)
		if res.SectionCompleted {
			s.rec = rec
			_ = s.sy.Save(s.name, s.rec)
		}
		queue := s.sess.Queue
		return func() tea.Msg {
			return screen.ShowResultMsg{Result: res, Queue: queue}
		}
	}

	s.opts = optionsFor(s.sess, s.rec)
	return nil
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	position := fmt.Sprintf("Soru %d / %d", s.sess.Cursor+1, len(s.sess.Queue))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(position))
	b.WriteString("\n")

	answered := 0
	for _, q := range s.sess.Queue {
		if _, ok := s.rec.Answer(q.ID); ok {
			answered++
		}
	}
	b.WriteString(progressLine(answered, len(s.sess.Queue), min(width-4, 50)))
	b.WriteString("\n\n")

	b.WriteString(s.opts.View(min(width-4, 76)))

	return b.String()
}

// progressLine renders how much of the queue is answered, in the
// session's neutral teal rather than score colors.
func progressLine(answered, total, width int) string {
	if width < 4 {
		width = 4
	}
	filled := 0
	if total > 0 {
		filled = width * answered / total
	}
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", width-filled))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
