package messages

import (
	"time"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/throttle"
)

// LightsLoadedMsg contains the bridge's light list
type LightsLoadedMsg struct {
	Lights []models.LightSummary
}

// OpenLightMsg requests the control panel for a light
type OpenLightMsg struct {
	ID string
}

// LightLoadedMsg contains a light's state and capabilities
type LightLoadedMsg struct {
	Light *models.Light
}

// BackMsg requests returning from the panel to the picker
type BackMsg struct{}

// RefreshMsg requests a refresh of the light list
type RefreshMsg struct{}

// ErrorMsg indicates an error occurred
type ErrorMsg struct {
	Err error
}

// ThrottleCheckMsg delivers a deferred throttle check once its settle
// delay has passed. At is when the timer fired.
type ThrottleCheckMsg struct {
	LightID string
	Check   throttle.Check
	At      time.Time
}

// CommandResultMsg reports the outcome of a state command
type CommandResultMsg struct {
	LightID string
	Payload models.Payload
	Updates models.Updates
	Err     error
}
