package play

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Answer  key.Binding
	Move    key.Binding
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Replay  key.Binding
	Restart key.Binding
	Review  key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Answer:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Answer")),
	Move:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Choose")),
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Next:    key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "Next")),
	Replay:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Pronounce")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Try again")),
	Review:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Review")),
	Back:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Results")),
}
