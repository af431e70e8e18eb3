// Package preview derives the panel's background glow from the light state.
package preview

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/scale"
)

// incandescentHue approximates the hue of an incandescent bulb (deg)
const incandescentHue = 33

// Backdrop is the color the glow fades into (#333333)
var Backdrop = colorful.Color{R: 0.2, G: 0.2, B: 0.2}

// Glow describes the light's appearance as a radial gradient: a solid HSL
// color up to Inner percent of the radius, fading to Backdrop at Outer.
type Glow struct {
	Hue        int // degrees
	Saturation int // percent
	Lightness  int // percent
	Inner      int // percent
	Outer      float64
	// DarkText is true when foreground text should be dark for contrast
	DarkText bool
}

// Derive computes the glow for a state. sliderHue and sliderSat are the
// current hue (deg) and saturation (%) slider positions; ct is the light's
// mirek range.
func Derive(s models.DeviceState, sliderHue, sliderSat int, ct scale.Interval) Glow {
	g := Glow{
		Hue:        sliderHue,
		Saturation: sliderSat,
	}

	if s.On {
		g.DarkText = true
		if s.Mode == models.ColorModeColor {
			sat := scale.DeviceSaturation
			g.Lightness = scale.Scale(sat.Max-float64(s.Saturation), 0, sat.Span(), 50, 100)
		} else {
			g.Hue = incandescentHue
			g.Saturation = scale.Scale(float64(s.ColorTemp), ct.Min, ct.Max, 0, 100)
			// Warm (high mirek) stays at 62%, cool approaches white
			g.Lightness = scale.Scale(ct.Max-float64(s.ColorTemp), 0, ct.Span(), 62, 100)
		}
	}

	bri := scale.DeviceBrightness
	g.Inner = scale.Scale(float64(s.Brightness), bri.Min, bri.Max, 0, 50)
	g.Outer = 10 + 1.5*float64(g.Inner)
	return g
}

// Color returns the glow's solid color
func (g Glow) Color() colorful.Color {
	return colorful.Hsl(float64(g.Hue), clampUnit(float64(g.Saturation)/100), clampUnit(float64(g.Lightness)/100)).Clamped()
}

// Hex returns the glow's solid color as "#rrggbb"
func (g Glow) Hex() string {
	return g.Color().Hex()
}

// At returns the gradient color at radius r, where r is a percentage of the
// distance from the center (0) to the farthest corner (100).
func (g Glow) At(r float64) colorful.Color {
	inner := float64(g.Inner)
	switch {
	case r <= inner:
		return g.Color()
	case r >= g.Outer:
		return Backdrop
	default:
		t := (r - inner) / (g.Outer - inner)
		return g.Color().BlendRgb(Backdrop, t).Clamped()
	}
}

// CSS renders the glow the way a browser background would be declared
func (g Glow) CSS() string {
	return fmt.Sprintf("radial-gradient(circle, hsl(%d, %d%%, %d%%) %d%%, #333 %g%%)",
		g.Hue, g.Saturation, g.Lightness, g.Inner, g.Outer)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
