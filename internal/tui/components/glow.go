package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/angristan/huefx/internal/preview"
)

// cellAspect is how much taller a terminal cell is than it is wide
const cellAspect = 2.0

// Caption colors over the glow
var (
	captionDark  = lipgloss.Color("#1A1A2E")
	captionLight = lipgloss.Color("#FAFAFA")
)

// RenderGlow draws the glow as a radial gradient filling width x height
// cells, with caption centered on the middle row. Radii are measured as a
// percentage of the distance from the center to the farthest corner.
func RenderGlow(g preview.Glow, width, height int, caption string) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	corner := math.Hypot(cx, cy*cellAspect)
	if corner == 0 {
		corner = 1
	}

	fg := captionLight
	if g.DarkText {
		fg = captionDark
	}
	text := []rune(caption)
	if len(text) > width {
		text = text[:width]
	}
	captionRow := height / 2
	captionStart := (width - len(text)) / 2

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		var run strings.Builder
		var runColor colorful.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(runColor.Hex())).
				Foreground(fg).
				Render(run.String()))
			run.Reset()
		}
		for x := 0; x < width; x++ {
			r := math.Hypot(float64(x)-cx, (float64(y)-cy)*cellAspect) / corner * 100
			inCaption := y == captionRow && x >= captionStart && x < captionStart+len(text)
			// keep the caption in a single run
			if inCaption && x > captionStart {
				run.WriteRune(text[x-captionStart])
				continue
			}
			c := g.At(r)
			if run.Len() > 0 && c.Hex() != runColor.Hex() {
				flush()
			}
			runColor = c
			if inCaption {
				run.WriteRune(text[x-captionStart])
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
	}
	return b.String()
}
