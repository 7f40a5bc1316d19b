package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for framed sections so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
