package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Detail   string // dimmed text after the label, e.g. a record count
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// Current returns the highlighted item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	detail := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, item := range m.Items {
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.Border).Render("    " + item.Label)
		case i == m.Selected:
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + item.Label)
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("    " + item.Label)
		}
		if item.Detail != "" {
			line += "  " + detail.Render(item.Detail)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
