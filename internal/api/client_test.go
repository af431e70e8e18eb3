package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angristan/huefx/internal/models"
)

func newTestBridge(t *testing.T, handler http.HandlerFunc) *HueBridge {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)
	return NewHueBridge(strings.TrimPrefix(srv.URL, "https://"), "testuser", 0)
}

const colorLampJSON = `{
	"state": {"on": true, "bri": 144, "hue": 13088, "sat": 212, "ct": 467,
		"colormode": "hs", "reachable": true},
	"type": "Extended color light",
	"name": "Hue color lamp 7",
	"capabilities": {"control": {"ct": {"min": 153, "max": 454}}}
}`

func TestGetLight(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/testuser/lights/7" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = io.WriteString(w, colorLampJSON)
	})

	light, err := b.GetLight(context.Background(), "7")
	if err != nil {
		t.Fatalf("GetLight returned error: %v", err)
	}

	if light.ID != "7" || light.Name != "Hue color lamp 7" || light.Type != "Extended color light" {
		t.Errorf("Unexpected light metadata: %+v", light)
	}
	if !light.Reachable || !light.SupportsColor {
		t.Error("Expected reachable color light")
	}
	expected := models.DeviceState{
		On:         true,
		Mode:       models.ColorModeColor,
		Brightness: 144,
		Hue:        13088,
		Saturation: 212,
		ColorTemp:  467,
	}
	if light.State != expected {
		t.Errorf("State = %+v, expected %+v", light.State, expected)
	}
	if light.ColorTempRange.Min != 153 || light.ColorTempRange.Max != 454 {
		t.Errorf("Expected ct range [153, 454], got %v", light.ColorTempRange)
	}
}

func TestGetLight_WhiteAmbianceDefaults(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"state":{"on":false,"bri":1,"colormode":"ct","reachable":true},"name":"Hall"}`)
	})

	light, err := b.GetLight(context.Background(), "2")
	if err != nil {
		t.Fatalf("GetLight returned error: %v", err)
	}
	if light.SupportsColor {
		t.Error("Expected a light without hue to not support color")
	}
	if light.ColorTempRange.Min != 153 || light.ColorTempRange.Max != 500 {
		t.Errorf("Expected default ct range, got %v", light.ColorTempRange)
	}
	if light.State.ColorTemp != 500 {
		t.Errorf("Expected missing ct to default to the warm end, got %d", light.State.ColorTemp)
	}
}

func TestGetLight_NotFound(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"error":{"type":3,"address":"/lights/9","description":"resource, /lights/9, not available"}}]`)
	})

	_, err := b.GetLight(context.Background(), "9")
	if !errors.Is(err, ErrLightNotFound) {
		t.Errorf("Expected ErrLightNotFound, got %v", err)
	}
}

func TestGetLight_HTTPError(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := b.GetLight(context.Background(), "1")
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Errorf("Expected status error, got %v", err)
	}
}

func TestSetState(t *testing.T) {
	var body map[string]interface{}
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/testuser/lights/1/state" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
		_, _ = io.WriteString(w, `[
			{"success":{"/lights/1/state/on":true}},
			{"success":{"/lights/1/state/bri":126}},
			{"error":{"type":201,"address":"/lights/1/state/hue","description":"parameter, hue, is not modifiable. Device is set to off."}}
		]`)
	})

	p := models.Payload{On: models.Bool(true), Bri: models.Int(126), Hue: models.Int(100)}
	updates, err := b.SetState(context.Background(), "1", p)
	if err != nil {
		t.Fatalf("SetState returned error: %v", err)
	}

	if len(body) != 3 || body["on"] != true || body["bri"] != float64(126) || body["hue"] != float64(100) {
		t.Errorf("Unexpected request body: %v", body)
	}
	if _, ok := body["ct"]; ok {
		t.Error("Expected absent attributes to be omitted from the body")
	}

	if updates.Accepted["on"] != true || updates.Accepted["bri"] != float64(126) {
		t.Errorf("Unexpected accepted values: %v", updates.Accepted)
	}
	if updates.OK() {
		t.Fatal("Expected hue to be reported as rejected")
	}
	if e := updates.Errors["hue"]; e.Type != 201 || e.Address != "/lights/1/state/hue" {
		t.Errorf("Unexpected hue error: %+v", e)
	}
}

func TestSetState_HTTPError(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusForbidden)
	})

	_, err := b.SetState(context.Background(), "1", models.Payload{On: models.Bool(false)})
	if err == nil {
		t.Error("Expected an error for a non-200 response")
	}
}

func TestListLights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/testuser/lights" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{
			"10": {"name": "Porch", "state": {"on": false, "reachable": false}},
			"2": {"name": "Desk", "state": {"on": true, "reachable": true}}
		}`)
	}))
	defer srv.Close()

	b := NewHueBridge(strings.TrimPrefix(srv.URL, "http://"), "testuser", 0)
	lights, err := b.ListLights(context.Background())
	if err != nil {
		t.Fatalf("ListLights returned error: %v", err)
	}

	expected := []models.LightSummary{
		{ID: "2", Name: "Desk", On: true, Reachable: true},
		{ID: "10", Name: "Porch"},
	}
	if len(lights) != len(expected) {
		t.Fatalf("Expected %d lights, got %d", len(expected), len(lights))
	}
	for i := range expected {
		if lights[i] != expected[i] {
			t.Errorf("lights[%d] = %+v, expected %+v", i, lights[i], expected[i])
		}
	}
}

func TestAttrOf(t *testing.T) {
	tests := map[string]string{
		"/lights/1/state/bri": "bri",
		"/lights/12/state/ct": "ct",
		"on":                  "on",
	}
	for address, expected := range tests {
		if got := attrOf(address); got != expected {
			t.Errorf("attrOf(%q) = %q, expected %q", address, got, expected)
		}
	}
}
