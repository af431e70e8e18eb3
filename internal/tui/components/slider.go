package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/angristan/huefx/internal/panel"
	"github.com/angristan/huefx/internal/preview"
	"github.com/angristan/huefx/internal/tui/styles"
)

// Gradient maps a track position in [0, 1] to a color
type Gradient func(t float64) colorful.Color

// HueGradient sweeps the color wheel
func HueGradient(t float64) colorful.Color {
	return colorful.Hsl(t*360, 1, 0.5)
}

// SaturationGradient fades from white to the fully saturated hue
func SaturationGradient(hue float64) Gradient {
	return func(t float64) colorful.Color {
		return colorful.Hsl(hue, t, 0.5+0.5*(1-t))
	}
}

// BrightnessGradient runs from the backdrop to warm white
func BrightnessGradient(t float64) colorful.Color {
	return preview.Backdrop.BlendRgb(colorful.Color{R: 1, G: 0.92, B: 0.75}, t)
}

// TemperatureGradient runs from warm (low kelvin) to cool (high kelvin)
func TemperatureGradient(t float64) colorful.Color {
	warm := colorful.Color{R: 1, G: 0.6, B: 0.25}
	cool := colorful.Color{R: 0.8, G: 0.9, B: 1}
	return warm.BlendLab(cool, t).Clamped()
}

// SliderTrack renders a track of width cells with the knob at the slider's
// position. Filled cells take their color from g.
func SliderTrack(s panel.Slider, width int, g Gradient) string {
	if width < 2 {
		width = 2
	}

	pos := 0.0
	if span := s.Interval.Span(); span > 0 {
		pos = (float64(s.Value) - s.Interval.Min) / span
	}
	knob := int(pos*float64(width-1) + 0.5)

	var bar strings.Builder
	for i := 0; i < width; i++ {
		t := float64(i) / float64(width-1)
		color := lipgloss.Color(g(t).Hex())
		switch {
		case i == knob:
			bar.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render("●"))
		case i < knob:
			bar.WriteString(lipgloss.NewStyle().Foreground(color).Render("━"))
		default:
			bar.WriteString(styles.StyleSliderTrack.Render("─"))
		}
	}
	return bar.String()
}

// RenderControlRow lays out a label, a body and a readout on one line
func RenderControlRow(label, body, readout string, focused bool) string {
	labelStyle := styles.StyleLabel
	cursor := "  "
	if focused {
		labelStyle = styles.StyleLabelFocused
		cursor = styles.StyleSelected.Render("> ")
	}
	return cursor + labelStyle.Render(label) + body + styles.StyleReadout.Render(readout)
}

// SwitchBody renders a two-state switch, e.g. "● On  ○ Off"
func SwitchBody(on bool, onText, offText string, width int) string {
	onStyle, offStyle := styles.StyleStatusOff, styles.StyleStatusOn
	onIcon, offIcon := "○", "●"
	if on {
		onStyle, offStyle = styles.StyleStatusOn, styles.StyleStatusOff
		onIcon, offIcon = "●", "○"
	}
	body := onStyle.Render(onIcon+" "+onText) + "  " + offStyle.Render(offIcon+" "+offText)
	return lipgloss.NewStyle().Width(width).Render(body)
}
