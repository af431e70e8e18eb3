package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/huefx/internal/tui/styles"
)

// RenderHeader renders the application header with a status on the right
func RenderHeader(width int, title, status string, ok bool) string {
	statusStyle := lipgloss.NewStyle().
		Foreground(styles.ColorSuccess).
		Background(styles.ColorSurface).
		Padding(0, 1)

	if !ok {
		statusStyle = statusStyle.Foreground(styles.ColorError)
	}

	left := styles.StyleHeaderTitle.Render(" " + title + " ")
	right := statusStyle.Render(status)

	// Calculate spacing
	spacing := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}

	return styles.StyleHeaderBar.Width(width).Render(left + strings.Repeat(" ", spacing) + right)
}
