// Package flashcard implements a browsable deck of cards with a hideable
// hint, used for the flag and periodic table widgets.
package flashcard

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// ErrEmptyDeck is returned by NewDeck when there are no cards.
var ErrEmptyDeck = errors.New("flashcard: deck is empty")

// Deck holds a shuffled copy of its cards and a cursor into them.
type Deck[T any] struct {
	source []T
	cards  []T
	pos    int
	hint   bool
	rng    *rand.Rand
}

// NewDeck shuffles items into a new deck. A nil rng uses the global source.
func NewDeck[T any](items []T, rng *rand.Rand) (*Deck[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyDeck
	}
	src := append([]T(nil), items...)
	return &Deck[T]{
		source: src,
		cards:  quiz.Shuffle(src, rng),
		rng:    rng,
	}, nil
}

// Next moves to the following card. It reports false at the last card.
func (d *Deck[T]) Next() bool {
	if d.pos >= len(d.cards)-1 {
		return false
	}
	d.pos++
	d.hint = false
	return true
}

// Prev moves to the preceding card. It reports false at the first card.
func (d *Deck[T]) Prev() bool {
	if d.pos == 0 {
		return false
	}
	d.pos--
	d.hint = false
	return true
}

func (d *Deck[T]) ToggleHint()       { d.hint = !d.hint }
func (d *Deck[T]) HintVisible() bool { return d.hint }
func (d *Deck[T]) Current() T        { return d.cards[d.pos] }

// Position returns the zero-based index of the current card and the deck size.
func (d *Deck[T]) Position() (int, int) { return d.pos, len(d.cards) }

// Reshuffle deals a new permutation and returns to the first card.
func (d *Deck[T]) Reshuffle() {
	d.cards = quiz.Shuffle(d.source, d.rng)
	d.pos = 0
	d.hint = false
}
