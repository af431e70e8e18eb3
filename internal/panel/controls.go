package panel

import (
	"time"

	"github.com/angristan/huefx/internal/scale"
)

// Control identifies one input on the panel
type Control int

const (
	ControlBrightness Control = iota
	ControlHue
	ControlSaturation
	ControlTemperature
	ControlPower
	ControlColorMode
)

// Controls lists every control in display order
var Controls = []Control{
	ControlPower,
	ControlColorMode,
	ControlBrightness,
	ControlHue,
	ControlSaturation,
	ControlTemperature,
}

// String returns the control's label
func (c Control) String() string {
	switch c {
	case ControlBrightness:
		return "Brightness"
	case ControlHue:
		return "Hue"
	case ControlSaturation:
		return "Saturation"
	case ControlTemperature:
		return "Temperature"
	case ControlPower:
		return "Power"
	case ControlColorMode:
		return "Color"
	default:
		return "Unknown"
	}
}

// IsSlider reports whether the control takes a numeric position
func (c Control) IsSlider() bool {
	switch c {
	case ControlBrightness, ControlHue, ControlSaturation, ControlTemperature:
		return true
	}
	return false
}

// Slider is the configuration and position of a slider control
type Slider struct {
	Control  Control
	Interval scale.Interval
	Step     int
	Value    int
}

// Input is a single UI event delivered to the controller. Sliders use
// Position, switches use On, or Toggle to flip whatever the switch is at.
// At is when the event happened; event loops treat a zero At as "now".
type Input struct {
	Control  Control
	Position int
	On       bool
	Toggle   bool
	At       time.Time
}
