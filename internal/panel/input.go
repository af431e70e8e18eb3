package panel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownControl = errors.New("unknown control")
	ErrBadValue       = errors.New("bad value")
)

// sliderNames maps headless input words to slider controls
var sliderNames = map[string]Control{
	"bri":         ControlBrightness,
	"brightness":  ControlBrightness,
	"hue":         ControlHue,
	"sat":         ControlSaturation,
	"saturation":  ControlSaturation,
	"temp":        ControlTemperature,
	"temperature": ControlTemperature,
	"kelvin":      ControlTemperature,
}

// ParseInput parses one line of headless input. Positions are slider units:
// percent for brightness and saturation, degrees for hue, kelvin for
// temperature.
//
//	bri 50
//	hue 180
//	temp 3000
//	on | off | toggle
//	mode color | mode temp
func ParseInput(line string) (Input, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Input{}, fmt.Errorf("empty input: %w", ErrUnknownControl)
	}

	word := fields[0]
	switch word {
	case "on", "off":
		if len(fields) != 1 {
			return Input{}, fmt.Errorf("%q takes no value: %w", word, ErrBadValue)
		}
		return Input{Control: ControlPower, On: word == "on"}, nil

	case "toggle":
		return Input{Control: ControlPower, Toggle: true}, nil

	case "mode":
		if len(fields) != 2 {
			return Input{}, fmt.Errorf("mode needs color or temp: %w", ErrBadValue)
		}
		switch fields[1] {
		case "color", "colour", "hs":
			return Input{Control: ControlColorMode, On: true}, nil
		case "temp", "temperature", "ct":
			return Input{Control: ControlColorMode, On: false}, nil
		}
		return Input{}, fmt.Errorf("mode %q: %w", fields[1], ErrBadValue)
	}

	ctrl, ok := sliderNames[word]
	if !ok {
		return Input{}, fmt.Errorf("%q: %w", word, ErrUnknownControl)
	}
	if len(fields) != 2 {
		return Input{}, fmt.Errorf("%s needs one value: %w", word, ErrBadValue)
	}
	pos, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(fields[1], "%"), "k"))
	if err != nil {
		return Input{}, fmt.Errorf("%s %q: %w", word, fields[1], ErrBadValue)
	}
	return Input{Control: ctrl, Position: pos}, nil
}
