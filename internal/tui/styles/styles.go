package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - Lavender theme
var (
	// Primary colors
	ColorPrimary    = lipgloss.Color("#B794F4") // Lavender
	ColorSurface    = lipgloss.Color("#2D2D44") // Surface color
	ColorSurfaceAlt = lipgloss.Color("#3D3D5C") // Alternate surface

	// Text colors
	ColorText      = lipgloss.Color("#FAFAFA") // Primary text
	ColorTextMuted = lipgloss.Color("#A0A0B0") // Muted text
	ColorTextDim   = lipgloss.Color("#6B6B80") // Dim text

	// State colors
	ColorSuccess = lipgloss.Color("#68D391") // Green
	ColorWarning = lipgloss.Color("#F6E05E") // Yellow
	ColorError   = lipgloss.Color("#FC8181") // Red

	// Light states
	ColorLightOn  = lipgloss.Color("#FBBF24") // Warm yellow for on
	ColorLightOff = lipgloss.Color("#4A4A5A") // Gray for off
)

// Styles for various UI components
var (
	// Header styles
	StyleHeaderTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Background(ColorPrimary).
				Padding(0, 1)

	StyleHeaderBar = lipgloss.NewStyle().
			Background(ColorSurface)

	// Panel styles
	StylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	StyleGlowFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurfaceAlt)

	// Control labels
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(12)

	StyleLabelFocused = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(12)

	StyleReadout = lipgloss.NewStyle().
			Foreground(ColorText).
			Width(8).
			Align(lipgloss.Right)

	// Status indicators
	StyleStatusOn = lipgloss.NewStyle().
			Foreground(ColorLightOn).
			Bold(true)

	StyleStatusOff = lipgloss.NewStyle().
			Foreground(ColorLightOff)

	// Slider styles
	StyleSliderTrack = lipgloss.NewStyle().
				Foreground(ColorSurfaceAlt)

	// List styles
	StyleLightName = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleLightNameDim = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	StyleSelected = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Search bar styles
	StyleSearch = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Help styles
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Loading/spinner styles
	StyleSpinner = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Error styles
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Success styles
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Text muted style
	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
