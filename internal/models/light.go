package models

import "github.com/angristan/huefx/internal/scale"

// Light represents a single controllable light on the bridge
type Light struct {
	// Identifier from the bridge (v1 numeric id as a string)
	ID string
	// User-friendly name
	Name string
	// Bridge light type, e.g. "Extended color light"
	Type string
	// Whether the light is reachable on the network
	Reachable bool
	// Current state in device units
	State DeviceState
	// Supported color temperature range in mirek
	ColorTempRange scale.Interval
	// Whether the light supports hue/saturation
	SupportsColor bool
}

// LightSummary is a light as listed by the picker
type LightSummary struct {
	ID        string
	Name      string
	On        bool
	Reachable bool
}

// Clone creates a copy of the light
func (l *Light) Clone() *Light {
	clone := *l
	return &clone
}
