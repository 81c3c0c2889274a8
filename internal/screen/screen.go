package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/quiz"
	"github.com/oguzk/denizci/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SetLearnerMsg tells the root model which learner is signed in so the
// header can show the identity. An empty name means signed out.
type SetLearnerMsg struct {
	Name string
}

// Navigation intents between the main flow screens. Screens emit these
// instead of constructing each other; the root model resolves them with
// its shared dependencies. The flow is a swap, not a stack: login,
// dashboard, quiz, and result replace one another.

// ShowLoginMsg switches to the login screen.
type ShowLoginMsg struct{}

// ShowDashboardMsg switches to the dashboard, rebuilt from the store so
// it always reflects the latest progress.
type ShowDashboardMsg struct{}

// ShowQuizMsg switches to the quiz screen driving the given session.
type ShowQuizMsg struct {
	Session quiz.Session
}

// ShowResultMsg switches to the result screen. Queue is the finished
// session's question list, kept so the result screen can offer a retry
// over the same questions.
type ShowResultMsg struct {
	Result quiz.Result
	Queue  []bank.Question
}
