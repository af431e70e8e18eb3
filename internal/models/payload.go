package models

import (
	"fmt"
	"strings"
)

// Device attribute names understood by the light API
const (
	AttrOn  = "on"
	AttrBri = "bri"
	AttrHue = "hue"
	AttrSat = "sat"
	AttrCT  = "ct"
)

// Payload is a single state command. Nil fields are left out of the request.
type Payload struct {
	On  *bool `json:"on,omitempty"`
	Bri *int  `json:"bri,omitempty"`
	Hue *int  `json:"hue,omitempty"`
	Sat *int  `json:"sat,omitempty"`
	CT  *int  `json:"ct,omitempty"`
}

// Bool returns a pointer to v, for building payloads
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for building payloads
func Int(v int) *int {
	return &v
}

// IsEmpty reports whether the payload carries no attributes
func (p Payload) IsEmpty() bool {
	return p.On == nil && p.Bri == nil && p.Hue == nil && p.Sat == nil && p.CT == nil
}

// Clone returns a deep copy that shares no pointers with p
func (p Payload) Clone() Payload {
	var c Payload
	if p.On != nil {
		c.On = Bool(*p.On)
	}
	if p.Bri != nil {
		c.Bri = Int(*p.Bri)
	}
	if p.Hue != nil {
		c.Hue = Int(*p.Hue)
	}
	if p.Sat != nil {
		c.Sat = Int(*p.Sat)
	}
	if p.CT != nil {
		c.CT = Int(*p.CT)
	}
	return c
}

// String renders the payload in attribute order, e.g. "on=true bri=126"
func (p Payload) String() string {
	var parts []string
	if p.On != nil {
		parts = append(parts, fmt.Sprintf("%s=%t", AttrOn, *p.On))
	}
	if p.Bri != nil {
		parts = append(parts, fmt.Sprintf("%s=%d", AttrBri, *p.Bri))
	}
	if p.Hue != nil {
		parts = append(parts, fmt.Sprintf("%s=%d", AttrHue, *p.Hue))
	}
	if p.Sat != nil {
		parts = append(parts, fmt.Sprintf("%s=%d", AttrSat, *p.Sat))
	}
	if p.CT != nil {
		parts = append(parts, fmt.Sprintf("%s=%d", AttrCT, *p.CT))
	}
	if len(parts) == 0 {
		return "{}"
	}
	return strings.Join(parts, " ")
}

// Apply copies the payload's attributes onto a device state
func (p Payload) Apply(s *DeviceState) {
	if p.On != nil {
		s.On = *p.On
	}
	if p.Bri != nil {
		s.Brightness = *p.Bri
	}
	if p.Hue != nil {
		s.Hue = *p.Hue
		s.Mode = ColorModeColor
	}
	if p.Sat != nil {
		s.Saturation = *p.Sat
		s.Mode = ColorModeColor
	}
	if p.CT != nil {
		s.ColorTemp = *p.CT
		s.Mode = ColorModeTemperature
	}
}
