package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/identity"
	"github.com/oguzk/denizci/internal/screen"
	"github.com/oguzk/denizci/internal/syncer"
	"github.com/oguzk/denizci/internal/ui/components"
	"github.com/oguzk/denizci/internal/ui/layout"
	"github.com/oguzk/denizci/internal/ui/theme"
)

// LoginScreen asks for a learner name. Names seen before on this device
// are offered as a quick-select list with their answered counts; a new
// name can be typed directly.
type LoginScreen struct {
	sy    *syncer.Syncer
	input components.TextInput
	known []knownName
	sel   int
	busy  bool
}

type knownName struct {
	name     string
	answered int
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// loggedInMsg reports a finished sign-in.
type loggedInMsg struct {
	name string
}

// New creates a new LoginScreen.
func New(sy *syncer.Syncer) *LoginScreen {
	var known []knownName
	for _, name := range sy.Store().Names() {
		rec := sy.Store().Load(name)
		known = append(known, knownName{name: name, answered: len(rec.Answers)})
	}

	return &LoginScreen{
		sy:    sy,
		input: components.NewTextInput("adınızı yazın", identity.MaxNameLen),
		known: known,
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LoginScreen) Title() string {
	return "Giriş"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Giriş yap"},
	}
	if len(l.known) > 0 {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Kayıtlı isim seç"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Çıkış"})
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedInMsg:
		l.busy = false
		return l, tea.Batch(
			func() tea.Msg { return screen.SetLearnerMsg{Name: msg.name} },
			func() tea.Msg { return screen.ShowDashboardMsg{} },
		)

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "enter":
			return l, l.submit()
		case "up", "k":
			// The list is only navigable while the input is empty;
			// otherwise k belongs to the typed name.
			if l.input.Value() == "" && l.sel > 0 {
				l.sel--
				return l, nil
			}
		case "down", "j":
			if l.input.Value() == "" && l.sel < len(l.known)-1 {
				l.sel++
				return l, nil
			}
		}
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// submit validates the typed name, or falls back to the highlighted
// quick-select entry when nothing is typed.
func (l *LoginScreen) submit() tea.Cmd {
	raw := l.input.Value()
	if raw == "" {
		if len(l.known) == 0 {
			l.input.SetError("isim boş olamaz")
			return nil
		}
		return l.login(l.known[l.sel].name)
	}

	name, err := identity.Normalize(raw)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmptyName):
			l.input.SetError("isim boş olamaz")
		case errors.Is(err, identity.ErrNameTooLong):
			l.input.SetError(fmt.Sprintf("isim en fazla %d karakter olabilir", identity.MaxNameLen))
		default:
			l.input.SetError(err.Error())
		}
		return nil
	}
	return l.login(name)
}

// login merges local and cloud progress for the name and remembers the
// identity for the next start.
func (l *LoginScreen) login(name string) tea.Cmd {
	l.busy = true
	sy := l.sy
	return func() tea.Msg {
		sy.Login(context.Background(), name)
		_ = sy.Store().SetCurrentUser(name)
		return loggedInMsg{name: name}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("⚓ Denizci Sınav Hazırlık"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(cloudLine(l.sy)))
	b.WriteString("\n\n")

	if l.busy {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("Giriş yapılıyor...")))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render("İsminle giriş yap:")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.input.View()))
	b.WriteString("\n")

	if len(l.known) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("veya kayıtlı bir isim seç:")))
		b.WriteString("\n\n")
		for i, k := range l.known {
			line := fmt.Sprintf("%s  (%d cevap)", k.name, k.answered)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			prefix := "  "
			if i == l.sel && l.input.Value() == "" {
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
				prefix = "▸ "
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(prefix+line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func cloudLine(sy *syncer.Syncer) string {
	if sy.CloudEnabled() {
		return "bulut eşitleme açık"
	}
	return "yerel mod — ilerleme yalnızca bu cihazda"
}
