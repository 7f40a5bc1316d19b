package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// OptionList is a numbered list of answer options. It only tracks the
// cursor; whether and how a question was answered is supplied by the caller
// through Reveal.
type OptionList struct {
	Options []string
	Cursor  int

	revealed bool
	correct  string
	chosen   string
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Reveal marks the list as answered so View colours the correct option and
// a wrong pick.
func (m OptionList) Reveal(correct, chosen string) OptionList {
	m.revealed = true
	m.correct = correct
	m.chosen = chosen
	return m
}

// Update moves the cursor and reports the option picked with enter or its
// number key, if any.
func (m OptionList) Update(msg tea.Msg) (OptionList, string, bool) {
	if m.revealed || len(m.Options) == 0 {
		return m, "", false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, "", false
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		return m, m.Options[m.Cursor], true
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			i := int(k[0] - '1')
			if i < len(m.Options) {
				m.Cursor = i
				return m, m.Options[i], true
			}
		}
	}
	return m, "", false
}

// View renders the options one per line.
func (m OptionList) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && opt == m.correct:
			style = theme.Correct
		case m.revealed && opt == m.chosen:
			style = theme.Incorrect
		case m.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
