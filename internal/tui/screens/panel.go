package screens

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/angristan/huefx/internal/api"
	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/panel"
	"github.com/angristan/huefx/internal/throttle"
	"github.com/angristan/huefx/internal/tui/components"
	"github.com/angristan/huefx/internal/tui/messages"
	"github.com/angristan/huefx/internal/tui/styles"
)

// coarseSteps is how many slider steps shift+arrow moves
const coarseSteps = 10

type panelKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	CoarseLeft  key.Binding
	CoarseRight key.Binding
	Toggle      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func defaultPanelKeys() panelKeyMap {
	return panelKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "focus")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "adjust")),
		Right:       key.NewBinding(key.WithKeys("right", "l")),
		CoarseLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←→", "coarse")),
		CoarseRight: key.NewBinding(key.WithKeys("shift+right", "L")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// PanelModel is the control panel for one light
type PanelModel struct {
	light   *models.Light
	ctrl    *panel.Controller
	bridge  api.BridgeClient
	timeout time.Duration
	keys    panelKeyMap
	now     func() time.Time

	focus int

	// Last command outcome
	status    string
	statusErr bool
	inFlight  int

	width  int
	height int
}

// NewPanelModel creates a panel for light. Commands go through bridge,
// each bounded by timeout.
func NewPanelModel(light *models.Light, bridge api.BridgeClient, timeout time.Duration, opts ...panel.Option) PanelModel {
	return PanelModel{
		light:   light,
		ctrl:    panel.New(light, opts...),
		bridge:  bridge,
		timeout: timeout,
		keys:    defaultPanelKeys(),
		now:     time.Now,
	}
}

// SetClock replaces the clock used to timestamp key presses
func (m *PanelModel) SetClock(now func() time.Time) {
	m.now = now
}

func (m *PanelModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Controller exposes the panel's controller
func (m PanelModel) Controller() *panel.Controller {
	return m.ctrl
}

// controls returns the focusable controls in display order
func (m PanelModel) controls() []panel.Control {
	var out []panel.Control
	for _, c := range panel.Controls {
		if !m.light.SupportsColor && (c == panel.ControlColorMode || c == panel.ControlHue || c == panel.ControlSaturation) {
			continue
		}
		if m.ctrl.Visible(c) {
			out = append(out, c)
		}
	}
	return out
}

// Focused returns the control under the cursor
func (m PanelModel) Focused() panel.Control {
	controls := m.controls()
	if m.focus >= len(controls) {
		return controls[len(controls)-1]
	}
	return controls[m.focus]
}

func (m PanelModel) Update(msg tea.Msg) (PanelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return messages.BackMsg{} }

		case key.Matches(msg, m.keys.Up):
			if m.focus > 0 {
				m.focus--
			}

		case key.Matches(msg, m.keys.Down):
			if m.focus < len(m.controls())-1 {
				m.focus++
			}

		case key.Matches(msg, m.keys.Left):
			cmd = m.nudge(-1)

		case key.Matches(msg, m.keys.Right):
			cmd = m.nudge(1)

		case key.Matches(msg, m.keys.CoarseLeft):
			cmd = m.nudge(-coarseSteps)

		case key.Matches(msg, m.keys.CoarseRight):
			cmd = m.nudge(coarseSteps)

		case key.Matches(msg, m.keys.Toggle):
			ctrl := m.Focused()
			if ctrl.IsSlider() {
				ctrl = panel.ControlPower
			}
			cmd = m.dispatch(m.ctrl.Handle(panel.Input{Control: ctrl, Toggle: true}, m.now()))
		}
		return m, cmd

	case messages.ThrottleCheckMsg:
		if msg.LightID != m.light.ID {
			return m, nil
		}
		if p, ok := m.ctrl.Fire(msg.Check, msg.At); ok {
			cmd := m.sendCmd(p)
			return m, cmd
		}

	case messages.CommandResultMsg:
		if msg.LightID != m.light.ID {
			return m, nil
		}
		if m.inFlight > 0 {
			m.inFlight--
		}
		m.status, m.statusErr = describeResult(msg)
	}

	return m, nil
}

// nudge moves the focused slider, or flips the focused switch
func (m *PanelModel) nudge(steps int) tea.Cmd {
	ctrl := m.Focused()
	if !ctrl.IsSlider() {
		// Right means on/color, left means off/temperature
		return m.dispatch(m.ctrl.Handle(panel.Input{Control: ctrl, On: steps > 0}, m.now()))
	}
	return m.dispatch(m.ctrl.Nudge(ctrl, steps, m.now()))
}

// dispatch turns the controller's decision into commands: an immediate send
// and a tick that delivers the deferred check back to Update
func (m *PanelModel) dispatch(d panel.Dispatch) tea.Cmd {
	if m.focus >= len(m.controls()) {
		m.focus = len(m.controls()) - 1
	}

	var cmds []tea.Cmd
	if d.Send != nil {
		cmds = append(cmds, m.sendCmd(*d.Send))
	}
	if d.Check != nil {
		cmds = append(cmds, checkCmd(m.light.ID, *d.Check, m.ctrl.Settle()))
	}
	return tea.Batch(cmds...)
}

func checkCmd(lightID string, check throttle.Check, settle time.Duration) tea.Cmd {
	return tea.Tick(settle, func(t time.Time) tea.Msg {
		return messages.ThrottleCheckMsg{LightID: lightID, Check: check, At: t}
	})
}

// sendCmd creates a command that sends p to the light
func (m *PanelModel) sendCmd(p models.Payload) tea.Cmd {
	m.inFlight++
	bridge, id, timeout := m.bridge, m.light.ID, m.timeout

	log.Debug().Str("light", id).Str("payload", p.String()).Msg("Sending command")

	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		updates, err := bridge.SetState(ctx, id, p)
		if err != nil {
			log.Error().Err(err).Str("light", id).Str("payload", p.String()).Msg("Command failed")
		}
		return messages.CommandResultMsg{LightID: id, Payload: p, Updates: updates, Err: err}
	}
}

// describeResult summarizes a command result for the status line
func describeResult(msg messages.CommandResultMsg) (string, bool) {
	if msg.Err != nil {
		return "✗ " + msg.Err.Error(), true
	}
	if !msg.Updates.OK() {
		attrs := make([]string, 0, len(msg.Updates.Errors))
		for attr := range msg.Updates.Errors {
			attrs = append(attrs, attr)
		}
		sort.Strings(attrs)
		first := msg.Updates.Errors[attrs[0]]
		return fmt.Sprintf("✗ rejected %s: %s", strings.Join(attrs, ", "), first.Description), true
	}
	return "✓ " + msg.Payload.String(), false
}

func (m PanelModel) View() string {
	var b strings.Builder

	status := "● " + m.light.Name
	if !m.light.Reachable {
		status = "● " + m.light.Name + " (unreachable)"
	}
	b.WriteString(components.RenderHeader(m.width, "HUEFX", status, m.light.Reachable))
	b.WriteString("\n\n")

	trackWidth := 24
	if m.width >= 100 {
		trackWidth = 32
	}

	var rows []string
	focused := m.Focused()
	for _, ctrl := range m.controls() {
		rows = append(rows, m.renderControl(ctrl, ctrl == focused, trackWidth))
	}
	controls := styles.StylePanel.Render(strings.Join(rows, "\n\n"))

	glowHeight := lipgloss.Height(controls) - 2
	glowWidth := m.width - lipgloss.Width(controls) - 4
	if glowWidth > glowHeight*4 {
		glowWidth = glowHeight * 4
	}
	if glowWidth >= 8 {
		glow := styles.StyleGlowFrame.Render(components.RenderGlow(m.ctrl.Glow(), glowWidth, glowHeight, m.glowCaption()))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, controls, "  ", glow))
	} else {
		b.WriteString(controls)
	}

	// Status bar
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())

	// Help bar
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m PanelModel) renderControl(ctrl panel.Control, focused bool, width int) string {
	readout := m.ctrl.Readout(ctrl)

	switch ctrl {
	case panel.ControlPower:
		return components.RenderControlRow(ctrl.String(), components.SwitchBody(m.ctrl.Switch(ctrl), "On", "Off", width), "", focused)
	case panel.ControlColorMode:
		return components.RenderControlRow(ctrl.String(), components.SwitchBody(m.ctrl.Switch(ctrl), "Color", "Temperature", width), "", focused)
	}

	s, _ := m.ctrl.Slider(ctrl)
	var g components.Gradient
	switch ctrl {
	case panel.ControlHue:
		g = components.HueGradient
	case panel.ControlSaturation:
		hue, _ := m.ctrl.Slider(panel.ControlHue)
		g = components.SaturationGradient(float64(hue.Value))
	case panel.ControlTemperature:
		g = components.TemperatureGradient
	default:
		g = components.BrightnessGradient
	}
	return components.RenderControlRow(ctrl.String(), components.SliderTrack(s, width, g), readout, focused)
}

// glowCaption labels the glow with its color, or "Off"
func (m PanelModel) glowCaption() string {
	if !m.ctrl.State().On {
		return "Off"
	}
	return strings.ToUpper(m.ctrl.Glow().Hex())
}

func (m PanelModel) renderStatus() string {
	switch {
	case m.status == "" && m.inFlight == 0:
		return styles.StyleTextMuted.Render(fmt.Sprintf("Bridge %s", m.bridge.Host()))
	case m.statusErr:
		return styles.StyleError.Render(m.status)
	case m.inFlight > 0:
		return styles.StyleWarning.Render("⟳ Sending...")
	default:
		return styles.StyleSuccess.Render(m.status)
	}
}

func (m PanelModel) renderHelp() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Left, m.keys.CoarseLeft, m.keys.Toggle, m.keys.Back, m.keys.Quit}
	pairs := make([][2]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		pairs = append(pairs, [2]string{h.Key, h.Desc})
	}
	return renderHelp(pairs)
}
