// Package catalog describes how each dataset is presented: the question a
// quiz asks about a record, where its answer lives, and what a flashcard
// shows on each side.
package catalog

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/flashcard"
)

// Quiz describes one multiple-choice quiz over records of type T.
type Quiz[T any] struct {
	Kind     dataset.Kind
	Title    string
	Subject  string // "the longest rivers", used in the subtitle
	Question string // asked under every prompt

	// Prompt is the headline of a question, e.g. the country name.
	Prompt func(T) string
	// Answer returns the correct option for a record.
	Answer func(T) string
	// Speech returns the text pronounced after answering. Nil means Answer.
	Speech func(T) string
	// Details lists extra lines revealed once the question is answered.
	Details func(T) []string
}

// Subtitle returns the line shown under the quiz title.
func (q Quiz[T]) Subtitle(n int) string {
	return fmt.Sprintf("Test your knowledge of %s from %d countries", q.Subject, n)
}

// SpeechText returns what should be pronounced for rec.
func (q Quiz[T]) SpeechText(rec T) string {
	if q.Speech != nil {
		return q.Speech(rec)
	}
	return q.Answer(rec)
}

// DetailLines returns the revealed details of rec, if any.
func (q Quiz[T]) DetailLines(rec T) []string {
	if q.Details == nil {
		return nil
	}
	return q.Details(rec)
}

// Cities asks for the largest city of a country.
func Cities() Quiz[dataset.City] {
	return Quiz[dataset.City]{
		Kind:     dataset.KindCities,
		Title:    "City Practice Quiz",
		Subject:  "the largest cities",
		Question: "What is the largest city?",
		Prompt:   func(c dataset.City) string { return c.Country },
		Answer:   func(c dataset.City) string { return c.City },
		Details: func(c dataset.City) []string {
			return pronunciation(c.Pronunciation, c.IPA)
		},
	}
}

// Rivers asks for the longest river of a country.
func Rivers() Quiz[dataset.River] {
	return Quiz[dataset.River]{
		Kind:     dataset.KindRivers,
		Title:    "River Practice Quiz",
		Subject:  "the longest rivers",
		Question: "What is the longest river?",
		Prompt:   func(r dataset.River) string { return r.Country },
		Answer:   func(r dataset.River) string { return r.River },
		Details: func(r dataset.River) []string {
			lines := pronunciation(r.Pronunciation, r.IPA)
			return append(lines, RiverLength(r))
		},
	}
}

// RiverLength formats a river's length with thousands separators.
func RiverLength(r dataset.River) string {
	return fmt.Sprintf("Length: %s km", humanize.Comma(int64(r.Length)))
}

// Flags asks which country a flag belongs to.
func Flags() Quiz[dataset.Country] {
	return Quiz[dataset.Country]{
		Kind:     dataset.KindFlags,
		Title:    "Flag Practice Quiz",
		Subject:  "the world's flags",
		Question: "Which country does this flag belong to?",
		Prompt: func(c dataset.Country) string {
			return flashcard.FlagEmoji(c.ShortName) + "  " + c.ShortName
		},
		Answer: func(c dataset.Country) string { return c.LongName },
	}
}

// Elements asks for the element with a given atomic number.
func Elements() Quiz[dataset.Element] {
	return Quiz[dataset.Element]{
		Kind:     dataset.KindElements,
		Title:    "Element Practice Quiz",
		Subject:  "the periodic table",
		Question: "Which element has this atomic number?",
		Prompt:   func(e dataset.Element) string { return fmt.Sprintf("Atomic number %d", e.Number) },
		Answer:   func(e dataset.Element) string { return e.Name },
		Details: func(e dataset.Element) []string {
			return []string{e.Category}
		},
	}
}

func pronunciation(spoken, ipa string) []string {
	var parts []string
	if spoken != "" {
		parts = append(parts, spoken)
	}
	if ipa != "" {
		parts = append(parts, ipa)
	}
	if len(parts) == 0 {
		return nil
	}
	return []string{strings.Join(parts, "  ")}
}
