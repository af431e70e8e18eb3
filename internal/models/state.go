package models

// ColorMode selects which controls drive the light's color
type ColorMode int

const (
	// ColorModeTemperature drives the light by color temperature (ct)
	ColorModeTemperature ColorMode = iota
	// ColorModeColor drives the light by hue and saturation
	ColorModeColor
)

// String returns the mode name used in readouts and headless input
func (m ColorMode) String() string {
	if m == ColorModeColor {
		return "color"
	}
	return "temp"
}

// DeviceState is the light's current state in device-native units
type DeviceState struct {
	// Current on/off state
	On bool
	// Color or temperature mode
	Mode ColorMode
	// Brightness (1-254)
	Brightness int
	// Hue (0-65535)
	Hue int
	// Saturation (0-254)
	Saturation int
	// Color temperature in mirek
	ColorTemp int
}

// ColorModeFromAPI maps the bridge's "colormode" attribute to a ColorMode.
// The bridge reports "hs" or "xy" for color lights and "ct" otherwise.
func ColorModeFromAPI(mode string) ColorMode {
	switch mode {
	case "hs", "xy":
		return ColorModeColor
	default:
		return ColorModeTemperature
	}
}
