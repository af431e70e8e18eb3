package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/angristan/huefx/internal/api"
	"github.com/angristan/huefx/internal/config"
	"github.com/angristan/huefx/internal/panel"
	"github.com/angristan/huefx/internal/tui/messages"
	"github.com/angristan/huefx/internal/tui/screens"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenPicker Screen = iota
	ScreenPanel
)

// Model is the main application model
type Model struct {
	// Configuration
	config *config.Config

	// Bridge connection
	bridge api.BridgeClient

	// Current screen
	screen Screen

	// Screen models
	pickerScreen screens.PickerModel
	panelScreen  screens.PanelModel
	hasPanel     bool

	// Window size
	width  int
	height int

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model. When the config names a light
// the panel opens directly.
func NewModel(cfg *config.Config, bridge api.BridgeClient) Model {
	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		config:       cfg,
		bridge:       bridge,
		screen:       ScreenPicker,
		pickerScreen: screens.NewPickerModel(bridge.Host()),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("huefx"),
		m.pickerScreen.Init(),
		m.fetchLightsCmd(),
	}
	if m.config.Light != "" {
		cmds = append(cmds, m.fetchLightCmd(m.config.Light))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pickerScreen.SetSize(msg.Width, msg.Height)
		m.panelScreen.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global key handlers
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}

	case messages.LightsLoadedMsg:
		m.pickerScreen.SetLights(msg.Lights)
		return m, nil

	case messages.OpenLightMsg:
		return m, m.fetchLightCmd(msg.ID)

	case messages.LightLoadedMsg:
		m.panelScreen = screens.NewPanelModel(msg.Light, m.bridge, m.config.Bridge.Timeout.Duration(),
			panel.WithThrottle(m.config.Throttle.Interval.Duration(), m.config.Throttle.Settle.Duration()))
		m.panelScreen.SetSize(m.width, m.height)
		m.hasPanel = true
		m.screen = ScreenPanel
		log.Info().Str("light", msg.Light.ID).Str("name", msg.Light.Name).Msg("Opened light")
		return m, nil

	case messages.BackMsg:
		m.screen = ScreenPicker
		m.pickerScreen.SetLoading(true)
		return m, tea.Batch(m.pickerScreen.Init(), m.fetchLightsCmd())

	case messages.ThrottleCheckMsg, messages.CommandResultMsg:
		// Deferred sends still go out after leaving the panel
		if !m.hasPanel {
			return m, nil
		}
		var cmd tea.Cmd
		m.panelScreen, cmd = m.panelScreen.Update(msg)
		return m, cmd

	case messages.RefreshMsg:
		return m, m.fetchLightsCmd()

	case messages.ErrorMsg:
		log.Error().Err(msg.Err).Msg("Bridge request failed")
		m.screen = ScreenPicker
		m.pickerScreen.SetError(msg.Err)
		return m, nil
	}

	// Route to current screen
	switch m.screen {
	case ScreenPicker:
		var cmd tea.Cmd
		m.pickerScreen, cmd = m.pickerScreen.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenPanel:
		var cmd tea.Cmd
		m.panelScreen, cmd = m.panelScreen.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the current screen
func (m Model) View() string {
	switch m.screen {
	case ScreenPicker:
		return m.pickerScreen.View()
	case ScreenPanel:
		return m.panelScreen.View()
	default:
		return "Unknown screen"
	}
}

// requestTimeout bounds one bridge request
func (m Model) requestTimeout() time.Duration {
	if d := m.config.Bridge.Timeout.Duration(); d > 0 {
		return d
	}
	return 5 * time.Second
}

// fetchLightsCmd creates a command to list the bridge's lights
func (m Model) fetchLightsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.requestTimeout())
		defer cancel()

		lights, err := m.bridge.ListLights(ctx)
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.LightsLoadedMsg{Lights: lights}
	}
}

// fetchLightCmd creates a command to load one light for the panel
func (m Model) fetchLightCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.requestTimeout())
		defer cancel()

		light, err := m.bridge.GetLight(ctx, id)
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.LightLoadedMsg{Light: light}
	}
}
