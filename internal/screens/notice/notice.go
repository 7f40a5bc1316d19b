package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// NoticeScreen shows a single message, typically why a quiz or deck could
// not be opened.
type NoticeScreen struct {
	title   string
	message string
	isError bool
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates an informational notice.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

// Error creates a notice for err.
func Error(title string, err error) *NoticeScreen {
	return &NoticeScreen{title: title, message: err.Error(), isError: true}
}

func (p *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (p *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *NoticeScreen) View(width, height int) string {
	heading := theme.Title.Render("╌╌ " + p.title + " ╌╌")
	fg := theme.Text
	if p.isError {
		fg = theme.Error
	}
	body := lipgloss.NewStyle().
		Foreground(fg).
		Width(min(width-4, 60)).
		Align(lipgloss.Center).
		Render(p.message)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body + "\n\n" + theme.Hint.Render("Press Esc to go back"))
}

func (p *NoticeScreen) Title() string {
	return p.title
}
