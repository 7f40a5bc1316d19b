package home

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Block letters, one glyph per rune of the title.
var glyphs = map[rune][6]string{
	'Q': {" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║▄▄ ██║", "╚██████╔╝", " ╚══▀▀═╝ "},
	'U': {"██╗   ██╗", "██║   ██║", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
	'I': {"██╗", "██║", "██║", "██║", "██║", "╚═╝"},
	'Z': {"███████╗", "╚══███╔╝", "  ███╔╝ ", " ███╔╝  ", "███████╗", "╚══════╝"},
	'D': {"██████╗ ", "██╔══██╗", "██║  ██║", "██║  ██║", "██████╔╝", "╚═════╝ "},
	'E': {"███████╗", "██╔════╝", "█████╗  ", "██╔══╝  ", "███████╗", "╚══════╝"},
	'C': {" ██████╗", "██╔════╝", "██║     ", "██║     ", "╚██████╗", " ╚═════╝"},
	'K': {"██╗  ██╗", "██║ ██╔╝", "█████╔╝ ", "██╔═██╗ ", "██║  ██╗", "╚═╝  ╚═╝"},
}

const titleCompact = "Q · U · I · Z · D · E · C · K"

// bannerFull returns the block-letter title for word.
func bannerFull(word string) string {
	var rows [6]strings.Builder
	for _, r := range word {
		g := glyphs[r]
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	text := titleCompact
	if full := bannerFull("QUIZDECK"); !compact && lipgloss.Width(full) <= cw {
		text = full
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatsBar renders the totals across all saved runs in a bordered box
// matching content width.
func renderStatsBar(t totals, now time.Time, cw int, compact bool) string {
	runStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	lastStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case t.runs == 0 && compact:
		stats = dimStyle.Render("▶0")
	case t.runs == 0:
		stats = dimStyle.Render("▶ NO RUNS YET")
	case compact:
		stats = fmt.Sprintf("%s %s",
			runStyle.Render(fmt.Sprintf("▶%d", t.runs)),
			accStyle.Render(fmt.Sprintf("✓%.0f%%", t.accuracy()*100)),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			runStyle.Render(fmt.Sprintf("▶ %s RUNS", humanize.Comma(int64(t.runs)))),
			accStyle.Render(fmt.Sprintf("✓ %.0f%% CORRECT", t.accuracy()*100)),
			lastStyle.Render("⏱ "+strings.ToUpper(humanize.RelTime(t.last, now, "AGO", "FROM NOW"))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu frames the menu in a card at content width.
func renderMenu(menu string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.TrimRight(menu, "\n"))
}

// renderLoadError renders a dim one-line note when stats could not be read.
func renderLoadError(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Scores unavailable")
}
