package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/angristan/huefx/internal/api"
	"github.com/angristan/huefx/internal/config"
	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/panel"
)

// runHeadless drives the configured light from lines read from r until r
// is exhausted and every deferred command has gone out
func runHeadless(ctx context.Context, r io.Reader, bridge api.BridgeClient, cfg *config.Config, opts ...panel.LoopOption) error {
	if err := cfg.RequireLight(); err != nil {
		return fmt.Errorf("headless mode needs a light (-light or light in config): %w", err)
	}

	light, err := bridge.GetLight(ctx, cfg.Light)
	if err != nil {
		return fmt.Errorf("failed to load light: %w", err)
	}

	ctrl := panel.New(light, panel.WithThrottle(cfg.Throttle.Interval.Duration(), cfg.Throttle.Settle.Duration()))
	timeout := cfg.Bridge.Timeout.Duration()

	send := func(ctx context.Context, p models.Payload) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		updates, err := bridge.SetState(ctx, light.ID, p)
		if err != nil {
			log.Error().Err(err).Str("light", light.ID).Str("payload", p.String()).Msg("Command failed")
			return
		}
		for attr, e := range updates.Errors {
			log.Warn().Str("light", light.ID).Str("attr", attr).Str("error", e.Description).Msg("Attribute rejected")
		}
		log.Info().Str("light", light.ID).Str("payload", p.String()).Msg("Command sent")
	}

	observe := func(c *panel.Controller) {
		ev := log.Debug().Str("light", c.LightID())
		for _, control := range panel.Controls {
			if c.Visible(control) {
				ev = ev.Str(strings.ToLower(control.String()), c.Readout(control))
			}
		}
		ev.Str("glow", c.Glow().CSS()).Msg("Panel updated")
	}

	opts = append([]panel.LoopOption{panel.WithObserver(observe)}, opts...)
	loop := panel.NewLoop(ctrl, send, opts...)

	inputs := make(chan panel.Input)
	go func() {
		defer close(inputs)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			in, err := panel.ParseInput(line)
			if err != nil {
				log.Warn().Err(err).Str("line", line).Msg("Ignoring input")
				continue
			}
			select {
			case inputs <- in:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Error().Err(err).Msg("Failed to read input")
		}
	}()

	log.Info().Str("light", light.ID).Str("name", light.Name).Msg("Headless control started")
	return loop.Run(ctx, inputs)
}
