package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ProgressBar shows how far through a quiz or deck the user is.
type ProgressBar struct {
	Done      int
	Total     int
	ShowCount bool // append "done/total"
	Width     int
}

// NewProgressBar creates a bar for done of total steps.
func NewProgressBar(done, total int, showCount bool, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, ShowCount: showCount, Width: width}
}

// Fraction returns Done/Total clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var count string
	if p.ShowCount {
		count = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", p.Done, p.Total))
	}

	barWidth := max(p.Width-lipgloss.Width(count), 4)
	filled := int(float64(barWidth) * p.Fraction())

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		count
}
