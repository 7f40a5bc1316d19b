package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Limit is the number of runs loaded.
const Limit = 50

type historyLoadedMsg struct {
	Runs []store.RunRecord
	Err  error
}

// HistoryScreen displays past quiz runs and the answers missed in each.
type HistoryScreen struct {
	results  store.ResultRepo
	runs     []store.RunRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		runs, err := s.results.Recent(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Missed"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes finished yet. Pick one from the menu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-18s %d/%d  %.0f%%  %s",
			prefix, run.FinishedAt.Format("Jan 02, 2006 15:04"), quizName(run.Quiz),
			run.Correct, run.Total, run.Accuracy()*100, duration(run))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			if len(run.Missed) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Correct.Render("    Perfect run")))
				b.WriteString("\n")
				continue
			}
			for _, m := range run.Missed {
				missLine := fmt.Sprintf("    %s: %s (you said %s)", m.Prompt, m.Answer, m.UserAnswer)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Error).Render(missLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func quizName(q string) string {
	return dataset.Kind(q).DisplayName()
}

func duration(run store.RunRecord) string {
	secs := int(run.FinishedAt.Sub(run.StartedAt).Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
