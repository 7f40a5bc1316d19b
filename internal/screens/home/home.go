package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Entry is one line of the home menu.
type Entry struct {
	Label  string
	Detail string
	// Quiz is set on quiz entries; their best score is appended to Detail
	// once stats have loaded.
	Quiz   dataset.Kind
	Action func() tea.Cmd
}

type statsLoadedMsg struct {
	Stats []store.QuizStats
	Err   error
}

// totals aggregates stats over every quiz.
type totals struct {
	runs      int
	correct   int
	incorrect int
	last      time.Time
}

func (t totals) accuracy() float64 {
	if n := t.correct + t.incorrect; n > 0 {
		return float64(t.correct) / float64(n)
	}
	return 0
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	entries []Entry
	results store.ResultRepo
	now     func() time.Time

	menu    components.Menu
	totals  totals
	loadErr bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. results may be nil, in which case no stats
// are shown.
func New(entries []Entry, results store.ResultRepo) *HomeScreen {
	h := &HomeScreen{entries: entries, results: results, now: time.Now}
	h.menu = components.NewMenu(h.items(nil))
	return h
}

// Init reloads stats. The app calls it again whenever the home screen
// becomes active, so scores stay current after a quiz.
func (h *HomeScreen) Init() tea.Cmd {
	if h.results == nil {
		return nil
	}
	repo := h.results
	return func() tea.Msg {
		stats, err := repo.Stats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (h *HomeScreen) items(best map[dataset.Kind]store.QuizStats) []components.MenuItem {
	items := make([]components.MenuItem, len(h.entries))
	for i, e := range h.entries {
		detail := e.Detail
		if st, ok := best[e.Quiz]; ok && e.Quiz != "" {
			if detail != "" {
				detail += " · "
			}
			detail += fmt.Sprintf("best %d", st.BestCorrect)
		}
		items[i] = components.MenuItem{Label: e.Label, Detail: detail, Action: e.Action}
	}
	return items
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.loadErr = msg.Err != nil
		if msg.Err != nil {
			return h, nil
		}
		var t totals
		best := make(map[dataset.Kind]store.QuizStats, len(msg.Stats))
		for _, st := range msg.Stats {
			best[dataset.Kind(st.Quiz)] = st
			t.runs += st.Runs
			t.correct += st.TotalCorrect
			t.incorrect += st.TotalIncorrect
			if st.LastPlayed.After(t.last) {
				t.last = st.LastPlayed
			}
		}
		h.totals = t
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.items(best))
		h.menu.Selected = selected
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 40 || width < 80

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if h.loadErr {
		sections = append(sections, renderLoadError(cw))
	} else if h.results != nil {
		sections = append(sections, renderStatsBar(h.totals, h.now(), cw, compact))
	}
	sections = append(sections, renderMenu(h.menu.View(), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
