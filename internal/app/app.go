package app

import (
	"fmt"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/screens/play"
	"github.com/abhisek/quizdeck/internal/speech"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Results  store.ResultRepo // nil disables saving and history
	Datasets *dataset.Source
	Speaker  speech.Speaker
	Rand     *rand.Rand // nil draws from the global source

	// Start, when set, replaces the home screen as the first screen.
	Start screen.Screen
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = &config.Config{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Datasets == nil {
		o.Datasets = dataset.Embedded()
	}
	if o.Speaker == nil {
		o.Speaker = speech.Nop{}
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack and opts.Start, if any, above it.
func newAppModel(opts Options) AppModel {
	opts.defaults()
	m := AppModel{
		router: router.New(home.New(homeEntries(opts), opts.Results)),
		logger: opts.Logger,
	}
	if opts.Start != nil {
		m.router.Push(opts.Start)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}

	case router.PopScreenMsg:
		m.router.Update(msg)
		// Refresh whatever is revealed, e.g. home stats after a quiz.
		m.logger.Debug("screen popped", zap.String("active", m.router.Active().Title()))
		return m, m.router.Active().Init()

	case play.RunSavedMsg:
		// The save may land after the quiz was closed; stats read before it
		// are stale.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.router.Active().Init())

	case router.PushScreenMsg:
		m.logger.Debug("screen pushed", zap.String("screen", msg.Screen.Title()))
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
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
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
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
