package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *Screen[T]) View(width, height int) string {
	st := s.engine.Snapshot()
	cw := components.ContentWidth(width)

	var body string
	switch st.Mode {
	case quiz.ModeCompleted:
		body = s.renderComplete(st, cw)
	case quiz.ModeReviewing:
		body = s.renderReview(st, cw, height)
	default:
		body = s.renderQuestion(st, cw)
	}

	header := theme.Title.Width(cw).Render(s.def.Title) + "\n" +
		theme.Subtitle.Width(cw).Render(s.def.Subtitle(st.Total))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		header+"\n\n"+body)
}

// renderQuestion renders the score card, the prompt and the options.
func (s *Screen[T]) renderQuestion(st quiz.State[T], cw int) string {
	var b strings.Builder

	score := fmt.Sprintf("%s   %s   %s",
		theme.Correct.Render(fmt.Sprintf("Correct %d", st.Correct)),
		theme.Body.Render(fmt.Sprintf("Question %d / %d", st.Index+1, st.Total)),
		theme.Incorrect.Render(fmt.Sprintf("Incorrect %d", st.Incorrect)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, score))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(st.Index, st.Total, false, cw).View())
	b.WriteString("\n\n")

	card := theme.Prompt.Render(s.def.Prompt(st.Current)) + "\n" +
		theme.Dimmed.Render(s.def.Question)
	if st.Answered {
		card += "\n\n" + theme.Answer.Render(s.def.Answer(st.Current))
		for _, line := range s.def.DetailLines(st.Current) {
			card += "\n" + theme.Pronunciation.Render(line)
		}
	}
	b.WriteString(components.Card(card, cw))
	b.WriteString("\n")

	if st.Answered {
		var feedback string
		if st.IsCorrect() {
			feedback = theme.Correct.Render("✓ Correct! Well done!")
		} else {
			feedback = theme.Incorrect.Render(fmt.Sprintf("✗ Incorrect. The correct answer is %s.", s.def.Answer(st.Current)))
		}
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, feedback))
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(s.options.View())

	if st.Answered {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press n for the next question"))
	}
	return b.String()
}

// renderComplete renders the final score.
func (s *Screen[T]) renderComplete(st quiz.State[T], cw int) string {
	lines := []string{
		theme.Title.Render("🎉 Quiz Complete!"),
		"",
		theme.Body.Render(fmt.Sprintf("You got %d out of %d correct", st.Correct, st.Total)),
		"",
	}
	if n := len(st.Missed); n > 0 {
		lines = append(lines, theme.Selected.Render(fmt.Sprintf("v  Review Incorrect (%d)", n)))
	}
	lines = append(lines, theme.Selected.Render("r  Try Again"))
	if s.saveErr != "" {
		lines = append(lines, "", theme.Incorrect.Render("Could not save this run: "+s.saveErr))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

// renderReview renders the missed questions around the review cursor.
func (s *Screen[T]) renderReview(st quiz.State[T], cw, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(fmt.Sprintf("Incorrect Questions (%d)", len(st.Missed))))
	b.WriteString("\n\n")

	if len(st.Missed) == 0 {
		b.WriteString(theme.Subtitle.Width(cw).Render("🎉 Perfect score! No incorrect answers to review."))
		return b.String()
	}

	// Each entry takes roughly five lines; show as many as fit.
	visible := (height - 8) / 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.review >= visible {
		start = s.review - visible + 1
	}
	end := min(start+visible, len(st.Missed))

	for i := start; i < end; i++ {
		m := st.Missed[i]
		entry := theme.Prompt.Render(s.def.Prompt(m.Item)) + "\n" +
			theme.Incorrect.Render("Your answer: "+m.UserAnswer) + "\n" +
			theme.Correct.Render("Correct answer: "+s.def.Answer(m.Item))
		for _, line := range s.def.DetailLines(m.Item) {
			entry += "\n" + theme.Pronunciation.Render(line)
		}

		border := theme.Border
		if i == s.review {
			border = theme.Primary
		}
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(cw - 2).
			Padding(0, 1).
			Render(entry))
		b.WriteString("\n")
	}
	if len(st.Missed) > visible {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d", s.review+1, len(st.Missed))))
	}
	return b.String()
}
