package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/flashcard"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/cards"
	"github.com/abhisek/quizdeck/internal/screens/history"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/screens/notice"
	"github.com/abhisek/quizdeck/internal/screens/play"
)

// ErrUnknownQuiz is returned for quiz or deck names that match no dataset.
var ErrUnknownQuiz = errors.New("unknown quiz")

// QuizScreen builds the multiple-choice screen for kind.
func QuizScreen(kind dataset.Kind, opts Options) (screen.Screen, error) {
	opts.defaults()
	src := opts.Datasets
	switch kind {
	case dataset.KindCities:
		items, err := src.Cities()
		return newQuiz(catalog.Cities(), items, err, opts)
	case dataset.KindRivers:
		items, err := src.Rivers()
		return newQuiz(catalog.Rivers(), items, err, opts)
	case dataset.KindFlags:
		items, err := src.Countries()
		return newQuiz(catalog.Flags(), items, err, opts)
	case dataset.KindElements:
		items, err := src.Elements()
		return newQuiz(catalog.Elements(), items, err, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuiz, kind)
}

func newQuiz[T any](def catalog.Quiz[T], items []T, err error, opts Options) (screen.Screen, error) {
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", def.Kind, err)
	}
	qopts := []quiz.Option{
		quiz.WithSpeaker(opts.Speaker),
		quiz.WithSpeech(def.SpeechText),
	}
	if opts.Rand != nil {
		qopts = append(qopts, quiz.WithRand(opts.Rand))
	}
	engine, err := quiz.New(items, def.Answer, qopts...)
	if err != nil {
		return nil, fmt.Errorf("start %s quiz: %w", def.Kind, err)
	}
	popts := []play.Option{play.WithLogger(opts.Logger)}
	if opts.Results != nil {
		popts = append(popts, play.WithResults(opts.Results))
	}
	return play.New(def, engine, popts...), nil
}

// DeckScreen builds the flashcard screen for kind.
func DeckScreen(kind dataset.Kind, opts Options) (screen.Screen, error) {
	opts.defaults()
	src := opts.Datasets
	switch kind {
	case dataset.KindCities:
		items, err := src.Cities()
		return newDeck(catalog.CityDeck(), items, err, opts)
	case dataset.KindRivers:
		items, err := src.Rivers()
		return newDeck(catalog.RiverDeck(), items, err, opts)
	case dataset.KindFlags:
		items, err := src.Countries()
		flags := opts.Config.Flags
		if flags.CDN == "" {
			flags.CDN = flashcard.DefaultFlagCDN
		}
		if flags.Size == 0 {
			flags.Size = flashcard.DefaultFlagWidth
		}
		return newDeck(catalog.FlagDeck(catalog.FlagOptions{CDN: flags.CDN, Size: flags.Size, QR: flags.QR}), items, err, opts)
	case dataset.KindElements:
		items, err := src.Elements()
		return newDeck(catalog.ElementDeck(), items, err, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuiz, kind)
}

func newDeck[T any](def catalog.Deck[T], items []T, err error, opts Options) (screen.Screen, error) {
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", def.Kind, err)
	}
	deck, err := flashcard.NewDeck(items, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("open %s deck: %w", def.Kind, err)
	}
	return cards.New(def, deck), nil
}

// open returns a menu action that pushes the screen built by build, or an
// error notice when it cannot be built.
func open(title string, opts Options, build func() (screen.Screen, error)) func() tea.Cmd {
	return func() tea.Cmd {
		s, err := build()
		if err != nil {
			opts.Logger.Warn("open screen failed", zap.String("screen", title), zap.Error(err))
			return router.Push(notice.Error(title, err))
		}
		return router.Push(s)
	}
}

// homeEntries lists every quiz, every deck, history and exit.
func homeEntries(opts Options) []home.Entry {
	var entries []home.Entry
	for _, k := range dataset.AllKinds() {
		detail := ""
		if n, err := opts.Datasets.Count(k); err == nil {
			detail = fmt.Sprintf("%d questions", n)
		}
		entries = append(entries, home.Entry{
			Label:  k.DisplayName() + " Quiz",
			Detail: detail,
			Quiz:   k,
			Action: open(k.DisplayName(), opts, func() (screen.Screen, error) { return QuizScreen(k, opts) }),
		})
	}
	for _, k := range dataset.AllKinds() {
		entries = append(entries, home.Entry{
			Label:  k.DisplayName() + " Flashcards",
			Action: open(k.DisplayName(), opts, func() (screen.Screen, error) { return DeckScreen(k, opts) }),
		})
	}

	historyAction := func() tea.Cmd { return router.Push(history.New(opts.Results)) }
	if opts.Results == nil {
		historyAction = func() tea.Cmd {
			return router.Push(notice.New("History", "History is unavailable without a database."))
		}
	}
	entries = append(entries,
		home.Entry{Label: "History", Action: historyAction},
		home.Entry{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	)
	return entries
}
