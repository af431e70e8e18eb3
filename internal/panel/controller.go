package panel

import (
	"fmt"
	"time"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/preview"
	"github.com/angristan/huefx/internal/scale"
	"github.com/angristan/huefx/internal/throttle"
)

// Dispatch tells the event loop what to do after an input. Send is the
// payload to send right away; Check is a deferred check to fire after
// Settle. Either or both may be nil.
type Dispatch struct {
	Send  *models.Payload
	Check *throttle.Check
}

// Controller owns the state of one light's control panel: the device state,
// the slider positions and the command throttle. It is driven by a single
// event loop and is not safe for concurrent use.
type Controller struct {
	lightID  string
	state    models.DeviceState
	ctRange  scale.Interval
	sliders  map[Control]*Slider
	throttle *throttle.Throttle
}

// Option configures a Controller
type Option func(*Controller)

// WithThrottle sets the throttle timings
func WithThrottle(interval, settle time.Duration) Option {
	return func(c *Controller) {
		c.throttle = throttle.New(interval, settle)
	}
}

// New creates a controller initialized from the light's reported state
func New(light *models.Light, opts ...Option) *Controller {
	ct := light.ColorTempRange
	if ct.Span() <= 0 {
		ct = scale.DeviceColorTemp
	}

	c := &Controller{
		lightID:  light.ID,
		state:    normalize(light.State, ct),
		ctRange:  ct,
		throttle: throttle.New(throttle.DefaultInterval, throttle.DefaultSettle),
	}
	for _, opt := range opts {
		opt(c)
	}

	s := c.state
	c.sliders = map[Control]*Slider{
		ControlBrightness: newSlider(ControlBrightness, scale.SliderBrightness,
			scale.DeviceBrightness.To(scale.SliderBrightness, float64(s.Brightness))),
		ControlHue: newSlider(ControlHue, scale.SliderHue,
			scale.DeviceHue.To(scale.SliderHue, float64(s.Hue))),
		ControlSaturation: newSlider(ControlSaturation, scale.SliderSaturation,
			scale.DeviceSaturation.To(scale.SliderSaturation, float64(s.Saturation))),
		ControlTemperature: newSlider(ControlTemperature, scale.KelvinRange(ct),
			scale.MirekToKelvin(s.ColorTemp)),
	}

	return c
}

// normalize brings reported values into the device ranges so payloads built
// from them are always valid
func normalize(s models.DeviceState, ct scale.Interval) models.DeviceState {
	s.Brightness = int(scale.DeviceBrightness.Clamp(float64(s.Brightness)))
	s.Hue = int(scale.DeviceHue.Clamp(float64(s.Hue)))
	s.Saturation = int(scale.DeviceSaturation.Clamp(float64(s.Saturation)))
	s.ColorTemp = int(ct.Clamp(float64(s.ColorTemp)))
	return s
}

func newSlider(ctrl Control, iv scale.Interval, value int) *Slider {
	return &Slider{
		Control:  ctrl,
		Interval: iv,
		Step:     iv.Step(),
		Value:    int(iv.Clamp(float64(value))),
	}
}

// LightID returns the id of the controlled light
func (c *Controller) LightID() string {
	return c.lightID
}

// State returns a copy of the current device state
func (c *Controller) State() models.DeviceState {
	return c.state
}

// ColorTempRange returns the light's mirek range
func (c *Controller) ColorTempRange() scale.Interval {
	return c.ctRange
}

// Settle returns the delay after which a deferred check must be fired
func (c *Controller) Settle() time.Duration {
	return c.throttle.Settle()
}

// Slider returns a copy of a slider's configuration and position
func (c *Controller) Slider(ctrl Control) (Slider, bool) {
	s, ok := c.sliders[ctrl]
	if !ok {
		return Slider{}, false
	}
	return *s, true
}

// Sliders returns the sliders in display order
func (c *Controller) Sliders() []Slider {
	var out []Slider
	for _, ctrl := range Controls {
		if s, ok := c.sliders[ctrl]; ok {
			out = append(out, *s)
		}
	}
	return out
}

// Switch returns the position of a switch control
func (c *Controller) Switch(ctrl Control) bool {
	switch ctrl {
	case ControlPower:
		return c.state.On
	case ControlColorMode:
		return c.state.Mode == models.ColorModeColor
	}
	return false
}

// Visible reports whether a control is shown in the current color mode
func (c *Controller) Visible(ctrl Control) bool {
	color := c.state.Mode == models.ColorModeColor
	switch ctrl {
	case ControlHue, ControlSaturation:
		return color
	case ControlTemperature:
		return !color
	}
	return true
}

// Readout returns the displayed value of a control, e.g. "50%" or "6536 K"
func (c *Controller) Readout(ctrl Control) string {
	switch ctrl {
	case ControlBrightness, ControlSaturation:
		return fmt.Sprintf("%d%%", c.sliders[ctrl].Value)
	case ControlHue:
		return fmt.Sprintf("%d°", c.sliders[ctrl].Value)
	case ControlTemperature:
		return fmt.Sprintf("%d K", c.sliders[ctrl].Value)
	case ControlPower:
		if c.state.On {
			return "On"
		}
		return "Off"
	case ControlColorMode:
		if c.state.Mode == models.ColorModeColor {
			return "Color"
		}
		return "Temperature"
	}
	return ""
}

// Glow derives the background preview from the current state
func (c *Controller) Glow() preview.Glow {
	return preview.Derive(c.state,
		c.sliders[ControlHue].Value,
		c.sliders[ControlSaturation].Value,
		c.ctRange)
}

// Handle applies an input at time now and returns what the event loop
// should send or schedule. Inputs for unknown controls are ignored.
func (c *Controller) Handle(in Input, now time.Time) Dispatch {
	if in.Toggle && !in.Control.IsSlider() {
		in.On = !c.Switch(in.Control)
	}
	p, ok := c.apply(in)
	if !ok {
		return Dispatch{}
	}

	send, check := c.throttle.Input(p, now)
	d := Dispatch{Check: check}
	if send {
		d.Send = &p
	}
	return d
}

// Nudge moves a slider by a number of steps and handles the result as an
// input. Switches toggle regardless of steps.
func (c *Controller) Nudge(ctrl Control, steps int, now time.Time) Dispatch {
	if !ctrl.IsSlider() {
		return c.Handle(Input{Control: ctrl, Toggle: true}, now)
	}
	s, ok := c.sliders[ctrl]
	if !ok {
		return Dispatch{}
	}
	return c.Handle(Input{Control: ctrl, Position: s.Value + steps*s.Step}, now)
}

// Fire evaluates a deferred check at time now, returning the payload to
// send if the check is still the newest input.
func (c *Controller) Fire(check throttle.Check, now time.Time) (models.Payload, bool) {
	if !c.throttle.Fire(check, now) {
		return models.Payload{}, false
	}
	return check.Payload, true
}

// apply updates the state for an input and builds its payload. It reports
// false when nothing should be sent.
func (c *Controller) apply(in Input) (models.Payload, bool) {
	s := &c.state
	color := s.Mode == models.ColorModeColor

	if in.Control.IsSlider() {
		sl := c.sliders[in.Control]
		sl.Value = int(sl.Interval.Clamp(float64(in.Position)))
	}

	switch in.Control {
	case ControlBrightness:
		s.Brightness = scale.SliderBrightness.To(scale.DeviceBrightness, float64(c.sliders[in.Control].Value))
		return models.Payload{Bri: models.Int(s.Brightness)}, s.On

	case ControlHue:
		s.Hue = scale.SliderHue.To(scale.DeviceHue, float64(c.sliders[in.Control].Value))
		return models.Payload{Hue: models.Int(s.Hue)}, s.On && color

	case ControlSaturation:
		s.Saturation = scale.SliderSaturation.To(scale.DeviceSaturation, float64(c.sliders[in.Control].Value))
		return models.Payload{Sat: models.Int(s.Saturation)}, s.On && color

	case ControlTemperature:
		s.ColorTemp = scale.KelvinToMirek(c.sliders[in.Control].Value)
		return models.Payload{CT: models.Int(s.ColorTemp)}, s.On && !color

	case ControlPower:
		s.On = in.On
		if !s.On {
			return models.Payload{On: models.Bool(false)}, true
		}
		p := models.Payload{On: models.Bool(true), Bri: models.Int(s.Brightness)}
		if color {
			p.Hue = models.Int(s.Hue)
			p.Sat = models.Int(s.Saturation)
		} else {
			p.CT = models.Int(s.ColorTemp)
		}
		return p, true

	case ControlColorMode:
		var p models.Payload
		if in.On {
			s.Mode = models.ColorModeColor
			p = models.Payload{Hue: models.Int(s.Hue), Sat: models.Int(s.Saturation)}
		} else {
			s.Mode = models.ColorModeTemperature
			p = models.Payload{CT: models.Int(s.ColorTemp)}
		}
		return p, s.On
	}

	return models.Payload{}, false
}
