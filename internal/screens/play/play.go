// Package play is the multiple-choice quiz screen. It owns a quiz engine and
// renders exactly one of the question, result and review views from the
// engine's snapshot.
package play

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// RunSavedMsg reports the outcome of saving a finished run. It may arrive
// after the player has left the quiz, so the app forwards it to whichever
// screen is active and refreshes that screen.
type RunSavedMsg struct {
	Quiz string
	ID   string
	Err  error
}

// Option configures a Screen.
type Option func(*config)

type config struct {
	results store.ResultRepo
	logger  *zap.Logger
	now     func() time.Time
}

// WithResults saves every completed run to repo.
func WithResults(repo store.ResultRepo) Option {
	return func(c *config) { c.results = repo }
}

// WithLogger sets the logger used for save failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// Screen plays one quiz.
type Screen[T any] struct {
	def    catalog.Quiz[T]
	engine *quiz.Engine[T]
	cfg    config

	options components.OptionList
	review  int // cursor into the missed list
	started time.Time
	saveErr string
}

// New creates a quiz screen around an engine built for def.
func New[T any](def catalog.Quiz[T], engine *quiz.Engine[T], opts ...Option) *Screen[T] {
	cfg := config{logger: zap.NewNop(), now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}
	s := &Screen[T]{def: def, engine: engine, cfg: cfg}
	s.started = cfg.now()
	s.loadOptions()
	return s
}

// Engine returns the underlying engine.
func (s *Screen[T]) Engine() *quiz.Engine[T] { return s.engine }

func (s *Screen[T]) Init() tea.Cmd { return nil }

func (s *Screen[T]) Title() string { return s.def.Title }

// Status shows the running score in the header.
func (s *Screen[T]) Status() string {
	st := s.engine.Snapshot()
	return layout.ScoreStatus(st.Correct, st.Incorrect)
}

func (s *Screen[T]) KeyHints() []layout.KeyHint {
	st := s.engine.Snapshot()
	switch st.Mode {
	case quiz.ModeCompleted:
		review := keys.Review
		review.SetEnabled(len(st.Missed) > 0)
		return append(layout.HintsFor(review, keys.Restart), layout.KeyHint{Key: "Esc", Description: "Menu"})
	case quiz.ModeReviewing:
		return append(layout.HintsFor(keys.Move, keys.Replay, keys.Back, keys.Restart),
			layout.KeyHint{Key: "Esc", Description: "Menu"})
	}
	if st.Answered {
		return layout.HintsFor(keys.Next, keys.Replay, keys.Restart)
	}
	return layout.HintsFor(keys.Answer, keys.Move, keys.Restart)
}

func (s *Screen[T]) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case RunSavedMsg:
		if msg.Err != nil && msg.Quiz == string(s.def.Kind) {
			s.saveErr = msg.Err.Error()
		}
		return s, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Restart) {
			s.restart()
			return s, nil
		}
		switch s.engine.Mode() {
		case quiz.ModeInProgress:
			return s.updateQuestion(msg)
		case quiz.ModeCompleted:
			return s.updateComplete(msg)
		case quiz.ModeReviewing:
			return s.updateReview(msg)
		}
	}
	return s, nil
}

func (s *Screen[T]) updateQuestion(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	st := s.engine.Snapshot()
	if !st.Answered {
		var (
			picked string
			ok     bool
		)
		s.options, picked, ok = s.options.Update(msg)
		if ok && s.engine.Answer(picked) {
			s.options = s.options.Reveal(s.def.Answer(st.Current), picked)
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Next):
		if err := s.engine.Advance(); err != nil {
			s.cfg.logger.Debug("advance rejected", zap.Error(err))
			return s, nil
		}
		if s.engine.Mode() == quiz.ModeCompleted {
			return s, s.saveRun()
		}
		s.loadOptions()
	case key.Matches(msg, keys.Replay):
		s.engine.Replay(st.Current)
	}
	return s, nil
}

func (s *Screen[T]) updateComplete(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, keys.Review) {
		if err := s.engine.OpenReview(); err == nil {
			s.review = 0
		}
	}
	return s, nil
}

func (s *Screen[T]) updateReview(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	missed := s.engine.Snapshot().Missed
	switch {
	case key.Matches(msg, keys.Back):
		_ = s.engine.CloseReview()
	case key.Matches(msg, keys.Up):
		if s.review > 0 {
			s.review--
		}
	case key.Matches(msg, keys.Down):
		if s.review < len(missed)-1 {
			s.review++
		}
	case key.Matches(msg, keys.Replay):
		if s.review < len(missed) {
			s.engine.Replay(missed[s.review].Item)
		}
	}
	return s, nil
}

func (s *Screen[T]) restart() {
	s.engine.Restart()
	s.review = 0
	s.saveErr = ""
	s.started = s.cfg.now()
	s.loadOptions()
}

func (s *Screen[T]) loadOptions() {
	s.options = components.NewOptionList(s.engine.Snapshot().Options)
}

// saveRun returns a command that stores the finished run, or nil when no
// repository is configured.
func (s *Screen[T]) saveRun() tea.Cmd {
	if s.cfg.results == nil {
		return nil
	}
	st := s.engine.Snapshot()
	run := &store.RunRecord{
		Quiz:       string(s.def.Kind),
		Correct:    st.Correct,
		Incorrect:  st.Incorrect,
		Total:      st.Total,
		StartedAt:  s.started,
		FinishedAt: s.cfg.now(),
	}
	for _, m := range st.Missed {
		run.Missed = append(run.Missed, store.MissedRecord{
			Prompt:     s.def.Prompt(m.Item),
			Answer:     s.def.Answer(m.Item),
			UserAnswer: m.UserAnswer,
		})
	}
	repo, logger := s.cfg.results, s.cfg.logger
	return func() tea.Msg {
		err := repo.Save(context.Background(), run)
		if err != nil {
			logger.Warn("save run failed", zap.String("quiz", run.Quiz), zap.Error(err))
		} else {
			logger.Debug("run saved", zap.String("quiz", run.Quiz), zap.String("id", run.ID))
		}
		return RunSavedMsg{Quiz: run.Quiz, ID: run.ID, Err: err}
	}
}
