package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling and an optional
// inline error line for rejected values.
type TextInput struct {
	Model   textinput.Model
	errText string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Any edit clears a previous error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	before := t.Model.Value()
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.errText = ""
	}
	return t, cmd
}

// View renders the text input with any active error line below it.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errText != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errText)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetError shows an error line under the input until the next edit.
func (t *TextInput) SetError(msg string) {
	t.errText = msg
}
