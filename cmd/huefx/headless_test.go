package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/angristan/huefx/internal/api"
	"github.com/angristan/huefx/internal/config"
)

func testConfig(light string) *config.Config {
	return &config.Config{
		Light: light,
		Bridge: config.BridgeConfig{
			Timeout: config.Duration(time.Second),
		},
		Throttle: config.ThrottleConfig{
			Interval: config.Duration(250 * time.Millisecond),
			Settle:   config.Duration(20 * time.Millisecond),
		},
	}
}

func TestRunHeadless(t *testing.T) {
	bridge := api.NewDemoBridge()
	bridge.Latency = 0

	input := strings.Join([]string{
		"# dim the lamp down",
		"bri 10",
		"bri 20",
		"not a command",
		"bri 30",
		"",
	}, "\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := runHeadless(ctx, strings.NewReader(input), bridge, testConfig("1")); err != nil {
		t.Fatalf("runHeadless returned error: %v", err)
	}

	commands := bridge.Commands()
	if len(commands) < 2 {
		t.Fatalf("Expected at least the first and last commands, got %v", commands)
	}
	if commands[0].Payload.String() != "bri=24" {
		t.Errorf("Expected first command bri=24, got %v", commands[0].Payload)
	}
	if last := commands[len(commands)-1].Payload.String(); last != "bri=75" {
		t.Errorf("Expected last command bri=75, got %v", last)
	}

	light, _ := bridge.GetLight(ctx, "1")
	if light.State.Brightness != 75 {
		t.Errorf("Expected final brightness 75, got %d", light.State.Brightness)
	}
}

func TestRunHeadless_NeedsLight(t *testing.T) {
	bridge := api.NewDemoBridge()
	bridge.Latency = 0

	err := runHeadless(context.Background(), strings.NewReader(""), bridge, testConfig(""))
	if !errors.Is(err, config.ErrNoLight) {
		t.Errorf("Expected ErrNoLight, got %v", err)
	}
}

func TestRunHeadless_UnknownLight(t *testing.T) {
	bridge := api.NewDemoBridge()
	bridge.Latency = 0

	err := runHeadless(context.Background(), strings.NewReader(""), bridge, testConfig("99"))
	if !errors.Is(err, api.ErrLightNotFound) {
		t.Errorf("Expected ErrLightNotFound, got %v", err)
	}
}
