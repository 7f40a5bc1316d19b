// Package cards is the flashcard screen: one card at a time, with the back
// side revealed on demand.
package cards

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/flashcard"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Hint    key.Binding
	Shuffle key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "Next")),
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "Prev")),
	Hint:    key.NewBinding(key.WithKeys("up", "down", "space"), key.WithHelp("↑↓", "Hint")),
	Shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Shuffle")),
}

// Screen shows a flashcard deck over records of type T.
type Screen[T any] struct {
	def  catalog.Deck[T]
	deck *flashcard.Deck[T]
}

// New creates a flashcard screen.
func New[T any](def catalog.Deck[T], deck *flashcard.Deck[T]) *Screen[T] {
	return &Screen[T]{def: def, deck: deck}
}

func (s *Screen[T]) Init() tea.Cmd { return nil }

func (s *Screen[T]) Title() string { return s.def.Title }

// Status shows the card position in the header.
func (s *Screen[T]) Status() string {
	pos, n := s.deck.Position()
	return fmt.Sprintf("%d / %d", pos+1, n)
}

func (s *Screen[T]) KeyHints() []layout.KeyHint {
	pos, n := s.deck.Position()
	prev, next := keys.Prev, keys.Next
	prev.SetEnabled(pos > 0)
	next.SetEnabled(pos < n-1)
	return append(layout.HintsFor(prev, next, keys.Hint, keys.Shuffle),
		layout.KeyHint{Key: "Esc", Description: "Menu"})
}

func (s *Screen[T]) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Next):
		s.deck.Next()
	case key.Matches(kmsg, keys.Prev):
		s.deck.Prev()
	case key.Matches(kmsg, keys.Hint):
		s.deck.ToggleHint()
	case key.Matches(kmsg, keys.Shuffle):
		s.deck.Reshuffle()
	}
	return s, nil
}

func (s *Screen[T]) View(width, height int) string {
	cw := components.ContentWidth(width)
	card := s.deck.Current()
	pos, n := s.deck.Position()

	front := make([]string, 0, 4)
	for i, line := range s.def.Front(card) {
		if i == 0 {
			front = append(front, theme.Prompt.Render(line))
			continue
		}
		front = append(front, theme.Dimmed.Render(line))
	}

	body := strings.Join(front, "\n")
	if s.deck.HintVisible() {
		back := s.def.Back(card)
		for i, line := range back {
			style := theme.Body
			if i == 0 {
				style = theme.Answer
			}
			back[i] = style.Render(line)
		}
		body += "\n\n" + strings.Join(back, "\n")
	} else {
		body += "\n\n" + theme.Hint.Render("press ↑ or ↓ to reveal")
	}

	progress := components.NewProgressBar(pos+1, n, false, cw).View()

	content := theme.Title.Width(cw).Render(s.def.Title) + "\n\n" +
		components.Card(body, cw) + "\n" +
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Subtitle.Render(fmt.Sprintf("%d of %d", pos+1, n))) + "\n" +
		progress

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
