package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/angristan/huefx/internal/api"
	"github.com/angristan/huefx/internal/config"
	"github.com/angristan/huefx/internal/tui/messages"
)

// collect runs cmd and any batched commands, returning their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func newDemoModel(t *testing.T, light string) Model {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.Light = light

	bridge := api.NewDemoBridge()
	bridge.Latency = 0
	return NewModel(cfg, bridge)
}

func TestDemoModeInit(t *testing.T) {
	model := newDemoModel(t, "")

	if model.screen != ScreenPicker {
		t.Errorf("Expected ScreenPicker, got %d", model.screen)
	}

	loaded, ok := find[messages.LightsLoadedMsg](collect(model.Init()))
	if !ok {
		t.Fatal("Expected Init to load the light list")
	}
	if len(loaded.Lights) == 0 {
		t.Fatal("LightsLoadedMsg.Lights is empty!")
	}

	newModel, _ := model.Update(loaded)
	view := newModel.(Model).View()
	if strings.Contains(view, "Loading") {
		t.Error("View should not contain 'Loading' after LightsLoadedMsg")
	}
	if !strings.Contains(view, "Floor Lamp") {
		t.Error("View should list the demo lights")
	}
}

func TestOpenAndLeavePanel(t *testing.T) {
	var model tea.Model = newDemoModel(t, "")

	loaded, _ := find[messages.LightsLoadedMsg](collect(model.Init()))
	model, _ = model.Update(loaded)

	// Enter opens the first light
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	open, ok := find[messages.OpenLightMsg](collect(cmd))
	if !ok || open.ID != "1" {
		t.Fatalf("Expected OpenLightMsg for light 1, got %+v", open)
	}

	model, cmd = model.Update(open)
	light, ok := find[messages.LightLoadedMsg](collect(cmd))
	if !ok {
		t.Fatal("Expected the light to load")
	}

	model, _ = model.Update(light)
	if model.(Model).screen != ScreenPanel {
		t.Fatalf("Expected ScreenPanel, got %d", model.(Model).screen)
	}
	if !strings.Contains(model.View(), "Brightness") {
		t.Error("Expected the panel view")
	}

	// Esc goes back to the picker
	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back, ok := find[messages.BackMsg](collect(cmd))
	if !ok {
		t.Fatal("Expected BackMsg")
	}
	model, _ = model.Update(back)
	if model.(Model).screen != ScreenPicker {
		t.Errorf("Expected ScreenPicker after back, got %d", model.(Model).screen)
	}
}

func TestConfiguredLightOpensDirectly(t *testing.T) {
	model := newDemoModel(t, "4")

	light, ok := find[messages.LightLoadedMsg](collect(model.Init()))
	if !ok || light.Light.Name != "Desk Lamp" {
		t.Fatalf("Expected Init to load the configured light, got %+v", light)
	}

	newModel, _ := model.Update(light)
	if newModel.(Model).screen != ScreenPanel {
		t.Error("Expected the configured light to open the panel")
	}
}

func TestUnknownLightShowsError(t *testing.T) {
	model := newDemoModel(t, "")

	newModel, cmd := model.Update(messages.OpenLightMsg{ID: "42"})
	errMsg, ok := find[messages.ErrorMsg](collect(cmd))
	if !ok {
		t.Fatal("Expected ErrorMsg for an unknown light")
	}

	newModel, _ = newModel.Update(errMsg)
	if !strings.Contains(newModel.View(), "light not found") {
		t.Error("Expected the picker to show the error")
	}
}

func TestDeferredCheckAfterLeavingPanel(t *testing.T) {
	var model tea.Model = newDemoModel(t, "1")

	light, _ := find[messages.LightLoadedMsg](collect(model.(Model).Init()))
	model, _ = model.Update(light)

	// Two quick brightness presses: the second is deferred
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRight})

	check, ok := find[messages.ThrottleCheckMsg](collect(cmd))
	if !ok {
		t.Fatal("Expected a deferred check")
	}

	model, _ = model.Update(messages.BackMsg{})
	_, cmd = model.Update(check)
	if _, ok := find[messages.CommandResultMsg](collect(cmd)); !ok {
		t.Error("Expected the deferred command to be sent after leaving the panel")
	}
}
