package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to one lipgloss renderer so SSH sessions get the remote
// terminal's color profile.
type styles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	value    lipgloss.Style
	record   lipgloss.Style
	box      lipgloss.Style
}

func newStyles(lg *lipgloss.Renderer) styles {
	return styles{
		title: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4500")).
			MarginBottom(1),
		item: lg.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2),
		selected: lg.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 2),
		dim: lg.NewStyle().
			Foreground(lipgloss.Color("241")),
		value: lg.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
		record: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")),
		box: lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4),
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
