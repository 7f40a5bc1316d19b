package catalog

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/flashcard"
)

// Deck describes a flashcard deck over records of type T. Front is always
// shown; Back only while the hint is visible.
type Deck[T any] struct {
	Kind  dataset.Kind
	Title string
	Front func(T) []string
	Back  func(T) []string
}

// FlagOptions controls how flag cards render their image.
type FlagOptions struct {
	CDN  string
	Size int
	QR   bool
}

// FlagDeck shows a flag and reveals the country name as the hint.
func FlagDeck(opts FlagOptions) Deck[dataset.Country] {
	return Deck[dataset.Country]{
		Kind:  dataset.KindFlags,
		Title: "Flags",
		Front: func(c dataset.Country) []string {
			lines := []string{flashcard.FlagEmoji(c.ShortName)}
			url, err := flashcard.FlagURL(opts.CDN, c.ShortName, opts.Size)
			if err != nil {
				return append(lines, err.Error())
			}
			lines = append(lines, url)
			if url2x, err := flashcard.FlagURL2x(opts.CDN, c.ShortName, opts.Size); err == nil && url2x != url {
				lines = append(lines, url2x+" 2x")
			}
			if opts.QR {
				if qr, err := flashcard.FlagQR(url); err == nil {
					lines = append(lines, qr)
				}
			}
			return lines
		},
		Back: func(c dataset.Country) []string {
			return []string{c.LongName, c.ShortName}
		},
	}
}

// ElementDeck shows an atomic number and reveals the element as the hint.
func ElementDeck() Deck[dataset.Element] {
	return Deck[dataset.Element]{
		Kind:  dataset.KindElements,
		Title: "Periodic Elements",
		Front: func(e dataset.Element) []string {
			return []string{fmt.Sprintf("%d", e.Number)}
		},
		Back: func(e dataset.Element) []string {
			return []string{e.Category, fmt.Sprintf("%d. %s", e.Number, e.Name), e.Summary}
		},
	}
}

// CityDeck shows a country and reveals its largest city.
func CityDeck() Deck[dataset.City] {
	return Deck[dataset.City]{
		Kind:  dataset.KindCities,
		Title: "Largest Cities",
		Front: func(c dataset.City) []string { return []string{c.Country} },
		Back: func(c dataset.City) []string {
			return append([]string{c.City}, pronunciation(c.Pronunciation, c.IPA)...)
		},
	}
}

// RiverDeck shows a country and reveals its longest river.
func RiverDeck() Deck[dataset.River] {
	return Deck[dataset.River]{
		Kind:  dataset.KindRivers,
		Title: "Longest Rivers",
		Front: func(r dataset.River) []string { return []string{r.Country} },
		Back: func(r dataset.River) []string {
			lines := append([]string{r.River}, pronunciation(r.Pronunciation, r.IPA)...)
			return append(lines, RiverLength(r))
		},
	}
}
