package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/amimof/huego"
	"github.com/rs/zerolog/log"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/scale"
)

// errTypeUnavailable is the bridge's error type for a missing resource
const errTypeUnavailable = 3

// HueBridge talks to a Hue bridge over the v1 REST API
type HueBridge struct {
	host     string
	username string
	client   *http.Client
	lights   *huego.Bridge
}

// NewHueBridge creates a new bridge client. A zero timeout leaves requests
// bounded only by their context.
func NewHueBridge(host, username string, timeout time.Duration) *HueBridge {
	return &HueBridge{
		host:     host,
		username: username,
		lights:   huego.New(host, username),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Host returns the bridge host
func (b *HueBridge) Host() string {
	return b.host
}

// doRequest performs a request against the user's v1 API namespace
func (b *HueBridge) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	url := fmt.Sprintf("https://%s/api/%s%s", b.host, b.username, path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return b.client.Do(req)
}

// apiError is the v1 error object
type apiError struct {
	Type        int    `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// apiResult is one element of a v1 response list
type apiResult struct {
	Success map[string]json.RawMessage `json:"success"`
	Error   *apiError                  `json:"error"`
}

// lightResource represents the v1 light resource
type lightResource struct {
	State struct {
		On        bool   `json:"on"`
		Bri       int    `json:"bri"`
		Hue       *int   `json:"hue"`
		Sat       *int   `json:"sat"`
		CT        *int   `json:"ct"`
		ColorMode string `json:"colormode"`
		Reachable bool   `json:"reachable"`
	} `json:"state"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Capabilities struct {
		Control struct {
			CT *struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"ct"`
		} `json:"control"`
	} `json:"capabilities"`
}

func (r *lightResource) toModel(id string) *models.Light {
	light := &models.Light{
		ID:             id,
		Name:           r.Name,
		Type:           r.Type,
		Reachable:      r.State.Reachable,
		SupportsColor:  r.State.Hue != nil,
		ColorTempRange: scale.DeviceColorTemp,
		State: models.DeviceState{
			On:         r.State.On,
			Mode:       models.ColorModeFromAPI(r.State.ColorMode),
			Brightness: r.State.Bri,
		},
	}

	if ct := r.Capabilities.Control.CT; ct != nil && ct.Max > ct.Min {
		light.ColorTempRange = scale.NewInterval(ct.Min, ct.Max)
	}

	if r.State.Hue != nil {
		light.State.Hue = *r.State.Hue
	}
	if r.State.Sat != nil {
		light.State.Saturation = *r.State.Sat
	}
	if r.State.CT != nil {
		light.State.ColorTemp = *r.State.CT
	} else {
		light.State.ColorTemp = int(light.ColorTempRange.Max)
	}

	return light
}

// GetLight retrieves a light's state and capabilities
func (b *HueBridge) GetLight(ctx context.Context, id string) (light *models.Light, err error) {
	resp, err := b.doRequest(ctx, http.MethodGet, "/lights/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get light: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read light response: %w", err)
	}

	// Errors come back as a list with status 200
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var results []apiResult
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return nil, fmt.Errorf("failed to decode light response: %w", err)
		}
		for _, r := range results {
			if r.Error == nil {
				continue
			}
			if r.Error.Type == errTypeUnavailable {
				return nil, fmt.Errorf("light %s: %w", id, ErrLightNotFound)
			}
			return nil, fmt.Errorf("API error: %s", r.Error.Description)
		}
		return nil, fmt.Errorf("unexpected light response for %s", id)
	}

	var raw lightResource
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode light response: %w", err)
	}

	return raw.toModel(id), nil
}

// ListLights lists the bridge's lights sorted by id
func (b *HueBridge) ListLights(ctx context.Context) ([]models.LightSummary, error) {
	lights, err := b.lights.GetLightsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lights: %w", err)
	}

	result := make([]models.LightSummary, 0, len(lights))
	for _, l := range lights {
		summary := models.LightSummary{
			ID:   strconv.Itoa(l.ID),
			Name: l.Name,
		}
		if l.State != nil {
			summary.On = l.State.On
			summary.Reachable = l.State.Reachable
		}
		result = append(result, summary)
	}
	sortSummaries(result)

	return result, nil
}

// SetState sends a PUT request to update light state
func (b *HueBridge) SetState(ctx context.Context, id string, p models.Payload) (updates models.Updates, err error) {
	updates = models.NewUpdates()

	body, err := json.Marshal(p)
	if err != nil {
		return updates, fmt.Errorf("failed to encode state: %w", err)
	}

	path := fmt.Sprintf("/lights/%s/state", id)
	resp, err := b.doRequest(ctx, http.MethodPut, path, bytes.NewReader(body))
	if err != nil {
		return updates, fmt.Errorf("failed to set light state: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return updates, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var results []apiResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return updates, fmt.Errorf("failed to decode state response: %w", err)
	}

	for _, r := range results {
		for address, raw := range r.Success {
			var value interface{}
			if err := json.Unmarshal(raw, &value); err != nil {
				return updates, fmt.Errorf("failed to decode %s: %w", address, err)
			}
			updates.Accepted[attrOf(address)] = value
		}
		if r.Error != nil {
			updates.Errors[attrOf(r.Error.Address)] = models.AttrError{
				Type:        r.Error.Type,
				Address:     r.Error.Address,
				Description: r.Error.Description,
			}
		}
	}

	if !updates.OK() {
		log.Warn().
			Str("light", id).
			Str("payload", p.String()).
			Int("errors", len(updates.Errors)).
			Msg("Bridge rejected attributes")
	}

	return updates, nil
}

// attrOf returns the attribute name at the end of a resource address,
// e.g. "bri" for "/lights/1/state/bri"
func attrOf(address string) string {
	if i := strings.LastIndex(address, "/"); i >= 0 {
		return address[i+1:]
	}
	return address
}

// sortSummaries orders lights by numeric id, falling back to string order
func sortSummaries(lights []models.LightSummary) {
	sort.Slice(lights, func(i, j int) bool {
		a, errA := strconv.Atoi(lights[i].ID)
		b, errB := strconv.Atoi(lights[j].ID)
		if errA == nil && errB == nil {
			return a < b
		}
		return lights[i].ID < lights[j].ID
	})
}
