package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/dataset"
)

func TestCitiesQuiz(t *testing.T) {
	q := Cities()
	c := dataset.City{Country: "Japan", City: "Tokyo", Pronunciation: "TOH-kee-oh", IPA: "/ˈtoʊkioʊ/"}

	assert.Equal(t, "Japan", q.Prompt(c))
	assert.Equal(t, "Tokyo", q.Answer(c))
	assert.Equal(t, "Tokyo", q.SpeechText(c))
	assert.Equal(t, []string{"TOH-kee-oh  /ˈtoʊkioʊ/"}, q.DetailLines(c))
	assert.Equal(t, "Test your knowledge of the largest cities from 12 countries", q.Subtitle(12))
}

func TestRiversQuizLength(t *testing.T) {
	q := Rivers()
	r := dataset.River{Country: "Egypt", River: "Nile", Length: 6650}

	lines := q.DetailLines(r)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Length: 6,650 km", lines[len(lines)-1])
	assert.Equal(t, "What is the longest river?", q.Question)
}

func TestFlagsQuiz(t *testing.T) {
	q := Flags()
	c := dataset.Country{LongName: "France", ShortName: "FR"}

	assert.Equal(t, "France", q.Answer(c))
	assert.Contains(t, q.Prompt(c), "FR")
	assert.Nil(t, q.DetailLines(c))
}

func TestElementsQuiz(t *testing.T) {
	q := Elements()
	e := dataset.Element{Name: "Oxygen", Number: 8, Category: "diatomic nonmetal"}

	assert.Equal(t, "Atomic number 8", q.Prompt(e))
	assert.Equal(t, "Oxygen", q.Answer(e))
	assert.Equal(t, []string{"diatomic nonmetal"}, q.DetailLines(e))
}

func TestPronunciationSkipsBlanks(t *testing.T) {
	assert.Nil(t, pronunciation("", ""))
	assert.Equal(t, []string{"/x/"}, pronunciation("", "/x/"))
}

func TestFlagDeck(t *testing.T) {
	c := dataset.Country{LongName: "Germany", ShortName: "DE"}

	d := FlagDeck(FlagOptions{Size: 320})
	front := d.Front(c)
	require.Len(t, front, 3)
	assert.Equal(t, "https://flagcdn.com/w320/de.png", front[1])
	assert.Equal(t, "https://flagcdn.com/w640/de.png 2x", front[2])
	assert.Equal(t, []string{"Germany", "DE"}, d.Back(c))

	withQR := FlagDeck(FlagOptions{Size: 320, QR: true}).Front(c)
	require.Len(t, withQR, 4)
	assert.Greater(t, strings.Count(withQR[3], "\n"), 5)

	bad := FlagDeck(FlagOptions{Size: 7}).Front(c)
	assert.Contains(t, bad[1], "unsupported flag width")
}

func TestElementDeck(t *testing.T) {
	e := dataset.Element{Name: "Helium", Number: 2, Category: "noble gas", Summary: "Inert."}
	d := ElementDeck()
	assert.Equal(t, []string{"2"}, d.Front(e))
	assert.Equal(t, []string{"noble gas", "2. Helium", "Inert."}, d.Back(e))
}

func TestRiverDeck(t *testing.T) {
	r := dataset.River{Country: "Brazil", River: "Amazon", Length: 6400}
	back := RiverDeck().Back(r)
	assert.Equal(t, "Amazon", back[0])
	assert.Equal(t, "Length: 6,400 km", back[len(back)-1])
	assert.Equal(t, []string{"Brazil"}, CityDeck().Front(dataset.City{Country: "Brazil"}))
}
