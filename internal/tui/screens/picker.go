package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/tui/components"
	"github.com/angristan/huefx/internal/tui/messages"
	"github.com/angristan/huefx/internal/tui/styles"
)

// PickerModel lists the bridge's lights and lets the user open one
type PickerModel struct {
	host          string
	lights        []models.LightSummary
	items         []models.LightSummary // lights matching the search
	selectedIndex int

	searchMode  bool
	searchInput textinput.Model
	searchQuery string

	// Loading state
	loading bool
	spinner spinner.Model
	err     error

	width  int
	height int
}

// NewPickerModel creates a picker for the bridge at host
func NewPickerModel(host string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	return PickerModel{
		host:        host,
		searchInput: ti,
		loading:     true,
		spinner:     sp,
	}
}

// Init starts the loading spinner
func (m PickerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetLights replaces the light list and ends loading
func (m *PickerModel) SetLights(lights []models.LightSummary) {
	m.lights = lights
	m.loading = false
	m.err = nil
	m.rebuild()
}

// SetError shows err in place of the list
func (m *PickerModel) SetError(err error) {
	m.err = err
	m.loading = false
}

// SetLoading shows the spinner until SetLights or SetError
func (m *PickerModel) SetLoading(loading bool) {
	m.loading = loading
}

func (m *PickerModel) rebuild() {
	m.items = nil
	query := strings.ToLower(m.searchQuery)
	for _, l := range m.lights {
		if query == "" || strings.Contains(strings.ToLower(l.Name), query) {
			m.items = append(m.items, l)
		}
	}
	if m.selectedIndex >= len(m.items) {
		m.selectedIndex = max(0, len(m.items)-1)
	}
}

// Selected returns the highlighted light
func (m PickerModel) Selected() (models.LightSummary, bool) {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.items) {
		return m.items[m.selectedIndex], true
	}
	return models.LightSummary{}, false
}

func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searchMode {
			switch msg.String() {
			case "esc":
				m.searchMode = false
				m.searchQuery = ""
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				m.rebuild()
				return m, nil
			case "enter":
				m.searchMode = false
				m.searchQuery = m.searchInput.Value()
				m.searchInput.Blur()
				m.rebuild()
				return m, nil
			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.searchQuery = m.searchInput.Value()
				m.rebuild()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}

		case "down", "j":
			if m.selectedIndex < len(m.items)-1 {
				m.selectedIndex++
			}

		case "home":
			m.selectedIndex = 0

		case "end":
			m.selectedIndex = max(0, len(m.items)-1)

		case "enter", "right", "l":
			if l, ok := m.Selected(); ok {
				id := l.ID
				return m, func() tea.Msg { return messages.OpenLightMsg{ID: id} }
			}

		case "/":
			m.searchMode = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case "r":
			m.loading = true
			return m, tea.Batch(func() tea.Msg { return messages.RefreshMsg{} }, m.spinner.Tick)
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	status, ok := m.host, true
	switch {
	case m.loading:
		status = "⟳ Loading..."
	case m.err != nil:
		status, ok = "● Error", false
	}
	b.WriteString(components.RenderHeader(m.width, "HUEFX", status, ok))
	b.WriteString("\n")

	// Search bar
	if m.searchMode {
		b.WriteString(styles.StyleSearch.Render("/ ") + m.searchInput.View())
		b.WriteString("\n")
	} else if m.searchQuery != "" {
		b.WriteString(styles.StyleSearch.Render("/ " + m.searchQuery + " "))
		b.WriteString(styles.StyleTextMuted.Render("(esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var content strings.Builder
	switch {
	case m.err != nil:
		content.WriteString("  " + styles.StyleError.Render(m.err.Error()))
	case m.loading && len(m.items) == 0:
		content.WriteString(fmt.Sprintf("  %s Loading lights...", m.spinner.View()))
	case len(m.items) == 0:
		content.WriteString(styles.StyleTextMuted.Render("  No lights found"))
	default:
		for i, l := range m.items {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(m.renderRow(l, i == m.selectedIndex))
		}
	}

	contentHeight := m.height - 5
	if m.searchMode || m.searchQuery != "" {
		contentHeight--
	}
	if contentHeight < 3 {
		contentHeight = 3
	}
	b.WriteString(lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content.String()))
	b.WriteString("\n")
	b.WriteString(renderHelp([][2]string{
		{"↑↓", "select"}, {"enter", "open"}, {"/", "search"}, {"r", "refresh"}, {"q", "quit"},
	}))

	return b.String()
}

func (m PickerModel) renderRow(l models.LightSummary, selected bool) string {
	cursor := "  "
	if selected {
		cursor = styles.StyleSelected.Render("> ")
	}

	icon := styles.StyleStatusOff.Render("○")
	if l.On {
		icon = styles.StyleStatusOn.Render("●")
	}

	nameStyle := styles.StyleLightNameDim
	if l.On {
		nameStyle = styles.StyleLightName
	}
	if selected {
		nameStyle = styles.StyleSelected
	}

	row := fmt.Sprintf("%s%s %s %s", cursor, icon, nameStyle.Render(l.Name), styles.StyleTextMuted.Render("#"+l.ID))
	if !l.Reachable {
		row += " " + styles.StyleWarning.Render("unreachable")
	}
	return row
}

// renderHelp renders key/description pairs as a help line
func renderHelp(pairs [][2]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = styles.StyleHelpKey.Render(p[0]) + " " + styles.StyleHelp.Render(p[1])
	}
	return strings.Join(parts, styles.StyleHelp.Render(" • "))
}
