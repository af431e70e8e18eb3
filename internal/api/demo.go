package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/scale"
)

// Bridge error type for attributes that cannot change while the light is off
const errTypeDeviceOff = 201

// DemoBridge implements BridgeClient for demo mode without a real Hue bridge.
// All state changes are maintained in memory.
type DemoBridge struct {
	// Latency is slept before every call to simulate the network
	Latency time.Duration

	order    []string
	lights   map[string]*models.Light
	commands []DemoCommand
	mu       sync.RWMutex
}

// DemoCommand is a state command received by the demo bridge
type DemoCommand struct {
	LightID string
	Payload models.Payload
}

// NewDemoBridge creates a demo bridge with sample data
func NewDemoBridge() *DemoBridge {
	d := &DemoBridge{
		Latency: 300 * time.Millisecond,
		lights:  make(map[string]*models.Light),
	}
	d.initializeDemoData()
	return d
}

// Host returns the demo bridge host
func (d *DemoBridge) Host() string {
	return "demo-bridge.local"
}

func (d *DemoBridge) wait(ctx context.Context) error {
	if d.Latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d.Latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetLight returns a copy of a demo light
func (d *DemoBridge) GetLight(ctx context.Context, id string) (*models.Light, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	light, ok := d.lights[id]
	if !ok {
		return nil, fmt.Errorf("light %s: %w", id, ErrLightNotFound)
	}
	return light.Clone(), nil
}

// ListLights returns the demo lights in id order
func (d *DemoBridge) ListLights(ctx context.Context) ([]models.LightSummary, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]models.LightSummary, 0, len(d.order))
	for _, id := range d.order {
		l := d.lights[id]
		result = append(result, models.LightSummary{
			ID:        l.ID,
			Name:      l.Name,
			On:        l.State.On,
			Reachable: l.Reachable,
		})
	}
	return result, nil
}

// SetState applies a command to a demo light. Like the real bridge, it
// rejects brightness and color changes while the light is off.
func (d *DemoBridge) SetState(ctx context.Context, id string, p models.Payload) (models.Updates, error) {
	updates := models.NewUpdates()
	if err := d.wait(ctx); err != nil {
		return updates, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	light, ok := d.lights[id]
	if !ok {
		return updates, fmt.Errorf("light %s: %w", id, ErrLightNotFound)
	}
	d.commands = append(d.commands, DemoCommand{LightID: id, Payload: p.Clone()})

	on := light.State.On
	if p.On != nil {
		on = *p.On
		light.State.On = on
		updates.Accepted[models.AttrOn] = on
	}

	set := func(attr string, v *int, iv scale.Interval, dst *int) {
		if v == nil {
			return
		}
		if !on {
			address := fmt.Sprintf("/lights/%s/state/%s", id, attr)
			updates.Errors[attr] = models.AttrError{
				Type:        errTypeDeviceOff,
				Address:     address,
				Description: fmt.Sprintf("parameter, %s, is not modifiable. Device is set to off.", attr),
			}
			return
		}
		*dst = int(iv.Clamp(float64(*v)))
		updates.Accepted[attr] = float64(*dst)
	}

	s := &light.State
	set(models.AttrBri, p.Bri, scale.DeviceBrightness, &s.Brightness)
	if light.SupportsColor {
		set(models.AttrHue, p.Hue, scale.DeviceHue, &s.Hue)
		set(models.AttrSat, p.Sat, scale.DeviceSaturation, &s.Saturation)
	}
	set(models.AttrCT, p.CT, light.ColorTempRange, &s.ColorTemp)

	if on {
		if _, ok := updates.Accepted[models.AttrCT]; ok {
			s.Mode = models.ColorModeTemperature
		}
		if _, ok := updates.Accepted[models.AttrHue]; ok {
			s.Mode = models.ColorModeColor
		}
		if _, ok := updates.Accepted[models.AttrSat]; ok {
			s.Mode = models.ColorModeColor
		}
	}

	return updates, nil
}

// Commands returns the commands received so far
func (d *DemoBridge) Commands() []DemoCommand {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]DemoCommand(nil), d.commands...)
}

// initializeDemoData creates the demo lights
func (d *DemoBridge) initializeDemoData() {
	lights := []*models.Light{
		{
			ID:        "1",
			Name:      "Living Room Ceiling",
			Type:      "Extended color light",
			Reachable: true,
			State: models.DeviceState{
				On:         true,
				Mode:       models.ColorModeTemperature,
				Brightness: 203, // ~80%
				Hue:        8418,
				Saturation: 140,
				ColorTemp:  326, // Neutral white
			},
			ColorTempRange: scale.DeviceColorTemp,
			SupportsColor:  true,
		},
		{
			ID:        "2",
			Name:      "Floor Lamp",
			Type:      "Extended color light",
			Reachable: true,
			State: models.DeviceState{
				On:         true,
				Mode:       models.ColorModeColor,
				Brightness: 152, // ~60%
				Hue:        46920, // Blue
				Saturation: 254,
				ColorTemp:  400,
			},
			ColorTempRange: scale.DeviceColorTemp,
			SupportsColor:  true,
		},
		{
			ID:        "3",
			Name:      "Bedside",
			Type:      "Color temperature light",
			Reachable: true,
			State: models.DeviceState{
				On:         false,
				Mode:       models.ColorModeTemperature,
				Brightness: 76, // ~30%
				ColorTemp:  454, // Very warm
			},
			ColorTempRange: scale.NewInterval(153, 454),
		},
		{
			ID:        "4",
			Name:      "Desk Lamp",
			Type:      "Extended color light",
			Reachable: true,
			State: models.DeviceState{
				On:         true,
				Mode:       models.ColorModeColor,
				Brightness: 229, // ~90%
				Hue:        56100, // Purple
				Saturation: 200,
				ColorTemp:  300,
			},
			ColorTempRange: scale.DeviceColorTemp,
			SupportsColor:  true,
		},
		{
			ID:        "5",
			Name:      "Garden Spot",
			Type:      "Extended color light",
			Reachable: false,
			State: models.DeviceState{
				Mode:       models.ColorModeTemperature,
				Brightness: 254,
				ColorTemp:  233,
			},
			ColorTempRange: scale.DeviceColorTemp,
			SupportsColor:  true,
		},
	}

	for _, l := range lights {
		d.order = append(d.order, l.ID)
		d.lights[l.ID] = l
	}
}
