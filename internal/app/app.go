package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/router"
	"github.com/oguzk/denizci/internal/screen"
	"github.com/oguzk/denizci/internal/screens/dashboard"
	"github.com/oguzk/denizci/internal/screens/login"
	"github.com/oguzk/denizci/internal/screens/quizscreen"
	"github.com/oguzk/denizci/internal/screens/result"
	"github.com/oguzk/denizci/internal/syncer"
	"github.com/oguzk/denizci/internal/ui/layout"
)

// Options carries the shared dependencies for the TUI.
type Options struct {
	Syncer *syncer.Syncer
	Bank   *bank.Bank
}

// AppModel is the root Bubble Tea model. It owns the frame and resolves
// navigation intents from screens into screen swaps.
type AppModel struct {
	opts    Options
	router  *router.Router
	learner string
	width   int
	height  int
}

// newAppModel starts on the dashboard when a learner identity is
// remembered from the last run, otherwise on the login screen.
func newAppModel(opts Options) AppModel {
	learner := opts.Syncer.Store().CurrentUser()

	var initial screen.Screen
	if learner != "" {
		initial = dashboard.New(opts.Syncer, opts.Bank, learner)
	} else {
		initial = login.New(opts.Syncer)
	}

	return AppModel{
		opts:    opts,
		router:  router.New(initial),
		learner: learner,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.SetLearnerMsg:
		m.learner = msg.Name
		return m, nil

	case screen.ShowLoginMsg:
		return m, m.router.Replace(login.New(m.opts.Syncer))

	case screen.ShowDashboardMsg:
		return m, m.router.Replace(dashboard.New(m.opts.Syncer, m.opts.Bank, m.learner))

	case screen.ShowQuizMsg:
		return m, m.router.Replace(quizscreen.New(m.opts.Syncer, m.learner, msg.Session))

	case screen.ShowResultMsg:
		return m, m.router.Replace(result.New(m.opts.Syncer, m.learner, msg.Result, msg.Queue))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.learner, m.opts.Syncer.CloudEnabled(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Gezin"},
		{Key: "Enter", Description: "Seç"},
		{Key: "Ctrl+C", Description: "Çıkış"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
