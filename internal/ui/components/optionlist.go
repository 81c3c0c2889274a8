package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/ui/theme"
)

// OptionList renders a question's lettered answer options. Before
// locking it is a cursor-driven selector; after locking it shows the
// correct option in green, a wrong pick in red, and the explanation.
type OptionList struct {
	Question    bank.Question
	Selected    int
	Locked      bool
	ChosenIndex int
}

// NewOptionList creates a selector for q. When the record already holds
// an answer, pass it via chosen (with locked true) so the list renders
// in review state; pass chosen -1 for a fresh question.
func NewOptionList(q bank.Question, locked bool, chosen int) OptionList {
	return OptionList{
		Question:    q,
		Selected:    0,
		Locked:      locked,
		ChosenIndex: chosen,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and direct letter selection. Locked
// lists ignore all input; answers never reopen.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Question.Options)-1 {
			o.Selected++
		}
	default:
		if idx := letterIndex(key); idx >= 0 && idx < len(o.Question.Options) {
			o.Selected = idx
		}
	}

	return o, nil
}

// Lock marks the list answered with the given choice.
func (o *OptionList) Lock(chosen int) {
	o.Locked = true
	o.ChosenIndex = chosen
}

// View renders the question text, the lettered options, and, once
// locked, the verdict line with the explanation.
func (o OptionList) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(o.Question.Question))
	b.WriteString("\n\n")

	for i, opt := range o.Question.Options {
		letter := bank.OptionLetters[i]
		prefix := "  "
		if i == o.Selected && !o.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, letter, opt)

		if o.Locked {
			switch {
			case i == o.Question.Correct:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line))
			case i == o.ChosenIndex:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line))
			default:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
			}
		} else {
			if i == o.Selected {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			}
		}
		b.WriteString("\n")
	}

	if o.Locked {
		b.WriteString("\n")
		if o.IsCorrect() {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Doğru!"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(
				fmt.Sprintf("Yanlış — doğru cevap %s", bank.OptionLetters[o.Question.Correct])))
		}
		if o.Question.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Width(width).
				Render(o.Question.Explanation))
		}
	}

	return b.String()
}

// IsCorrect reports whether the locked choice matches the answer key.
func (o OptionList) IsCorrect() bool {
	return o.Locked && o.ChosenIndex == o.Question.Correct
}

// letterIndex maps an option letter key ("a".."e", case-insensitive) to
// its option index, or -1.
func letterIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i, l := range bank.OptionLetters {
		if l == string(c) {
			return i
		}
	}
	return -1
}
