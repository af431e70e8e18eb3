package api

import (
	"context"
	"errors"

	"github.com/angristan/huefx/internal/models"
)

// ErrLightNotFound is returned when the bridge has no light with the given id
var ErrLightNotFound = errors.New("light not found")

// BridgeClient defines the interface for talking to the light's bridge.
// This abstraction allows for both real bridge connections and demo mode.
type BridgeClient interface {
	// GetLight fetches a light's state and capabilities
	GetLight(ctx context.Context, id string) (*models.Light, error)

	// ListLights lists the lights known to the bridge
	ListLights(ctx context.Context) ([]models.LightSummary, error)

	// SetState sends one state command and reports what the bridge did with it
	SetState(ctx context.Context, id string, p models.Payload) (models.Updates, error)

	// Host returns the bridge address, for display
	Host() string
}

// Compile-time checks
var (
	_ BridgeClient = (*HueBridge)(nil)
	_ BridgeClient = (*DemoBridge)(nil)
)
