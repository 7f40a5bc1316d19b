package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/quizdeck/internal/speech"
)

var (
	// ErrEmptyDataset is returned by New when there are no items to ask.
	ErrEmptyDataset = errors.New("quiz: dataset is empty")

	// ErrNilAccessor is returned by New when no answer accessor is given.
	ErrNilAccessor = errors.New("quiz: answer accessor is nil")

	// ErrNotAnswered is returned by Advance before the current question
	// has been answered.
	ErrNotAnswered = errors.New("quiz: current question not answered")

	// ErrNotInProgress is returned by Advance once the quiz is over.
	ErrNotInProgress = errors.New("quiz: not in progress")

	// ErrInvalidTransition is returned when review is opened or closed
	// from the wrong mode.
	ErrInvalidTransition = errors.New("quiz: invalid transition")
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	rng        *rand.Rand
	speaker    speech.Speaker
	shuffle    bool
	keepOrder  bool
	speechText any // func(T) string, type-checked in New
}

// WithRand sets the random source used for item order and distractors.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSpeaker sets the collaborator that pronounces answers.
func WithSpeaker(s speech.Speaker) Option {
	return func(o *options) { o.speaker = s }
}

// WithoutShuffle keeps items in dataset order.
func WithoutShuffle() Option {
	return func(o *options) { o.shuffle = false }
}

// KeepOrderOnRestart makes Restart reuse the current question order
// instead of drawing a new one.
func KeepOrderOnRestart() Option {
	return func(o *options) { o.keepOrder = true }
}

// WithSpeech sets the text pronounced after an answer. Defaults to the
// answer itself. fn must be a func(T) string for the engine's item type.
func WithSpeech[T any](fn func(T) string) Option {
	return func(o *options) { o.speechText = fn }
}

// Engine is a multiple-choice quiz over a fixed list of items. It owns its
// question order and is not safe for concurrent use.
type Engine[T any] struct {
	source   []T
	items    []T
	answerOf func(T) string
	speakOf  func(T) string
	universe []string
	opts     options

	mode      Mode
	index     int
	correct   int
	incorrect int
	answered  bool
	selected  string
	choices   []string
	missed    []Miss[T]
}

// New creates an engine over items. answer returns the value the user must
// pick for an item.
func New[T any](items []T, answer func(T) string, opts ...Option) (*Engine[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyDataset
	}
	if answer == nil {
		return nil, ErrNilAccessor
	}

	o := options{speaker: speech.Nop{}, shuffle: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.speaker == nil {
		o.speaker = speech.Nop{}
	}

	speakOf := answer
	if fn, ok := o.speechText.(func(T) string); ok && fn != nil {
		speakOf = fn
	}

	source := make([]T, len(items))
	copy(source, items)

	answers := make([]string, len(source))
	for i, it := range source {
		answers[i] = answer(it)
	}

	e := &Engine[T]{
		source:   source,
		answerOf: answer,
		speakOf:  speakOf,
		universe: distinct(answers),
		opts:     o,
	}
	e.items = e.order()
	e.reset()
	return e, nil
}

// order returns the question order for a new run.
func (e *Engine[T]) order() []T {
	if !e.opts.shuffle {
		out := make([]T, len(e.source))
		copy(out, e.source)
		return out
	}
	return Shuffle(e.source, e.opts.rng)
}

func (e *Engine[T]) reset() {
	e.mode = ModeInProgress
	e.index = 0
	e.correct = 0
	e.incorrect = 0
	e.missed = nil
	e.loadQuestion()
}

// loadQuestion regenerates choices for the current item and clears the
// per-question answer state.
func (e *Engine[T]) loadQuestion() {
	e.answered = false
	e.selected = ""
	e.choices = Options(e.answerOf(e.items[e.index]), e.universe, e.opts.rng)
}

// Answer records the user's choice for the current question. It returns
// false and changes nothing if the question was already answered or the
// quiz is not in progress.
func (e *Engine[T]) Answer(selected string) bool {
	if e.mode != ModeInProgress || e.answered {
		return false
	}

	item := e.items[e.index]
	e.answered = true
	e.selected = selected

	if selected == e.answerOf(item) {
		e.correct++
	} else {
		e.incorrect++
		e.missed = append(e.missed, Miss[T]{Item: item, UserAnswer: selected})
	}

	e.opts.speaker.Speak(e.speakOf(item))
	return true
}

// Advance moves to the next question, or to ModeCompleted after the last one.
func (e *Engine[T]) Advance() error {
	if e.mode != ModeInProgress {
		return ErrNotInProgress
	}
	if !e.answered {
		return ErrNotAnswered
	}

	if e.index+1 >= len(e.items) {
		e.mode = ModeCompleted
		return nil
	}

	e.index++
	e.loadQuestion()
	return nil
}

// Restart begins a new run from the first question. Valid from any mode.
func (e *Engine[T]) Restart() {
	if !e.opts.keepOrder {
		e.items = e.order()
	}
	e.reset()
}

// OpenReview switches from the final score to the list of missed questions.
func (e *Engine[T]) OpenReview() error {
	if e.mode != ModeCompleted {
		return ErrInvalidTransition
	}
	e.mode = ModeReviewing
	return nil
}

// CloseReview returns from the review list to the final score.
func (e *Engine[T]) CloseReview() error {
	if e.mode != ModeReviewing {
		return ErrInvalidTransition
	}
	e.mode = ModeCompleted
	return nil
}

// Replay pronounces the answer of item again.
func (e *Engine[T]) Replay(item T) {
	e.opts.speaker.Speak(e.speakOf(item))
}

// Mode returns the active mode.
func (e *Engine[T]) Mode() Mode {
	return e.mode
}

// Len returns the number of questions in a run.
func (e *Engine[T]) Len() int {
	return len(e.items)
}

// AnswerOf returns the correct answer for item.
func (e *Engine[T]) AnswerOf(item T) string {
	return e.answerOf(item)
}

// Snapshot returns a copy of the current state.
func (e *Engine[T]) Snapshot() State[T] {
	cur := e.items[e.index]

	choices := make([]string, len(e.choices))
	copy(choices, e.choices)

	var missed []Miss[T]
	if len(e.missed) > 0 {
		missed = make([]Miss[T], len(e.missed))
		copy(missed, e.missed)
	}

	return State[T]{
		Mode:      e.mode,
		Index:     e.index,
		Total:     len(e.items),
		Current:   cur,
		Answer:    e.answerOf(cur),
		Correct:   e.correct,
		Incorrect: e.incorrect,
		Answered:  e.answered,
		Selected:  e.selected,
		Options:   choices,
		Missed:    missed,
	}
}
