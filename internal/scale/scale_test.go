package scale

import (
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name                           string
		value, srcMin, srcMax, dstMin, dstMax float64
		expected                       int
	}{
		{"slider 50% to device brightness", 50, 1, 100, 1, 254, 126},
		{"device brightness min to slider", 1, 1, 254, 1, 100, 1},
		{"device brightness max to slider", 254, 1, 254, 1, 100, 100},
		{"hue degrees to device", 180, 0, 360, 0, 65535, 32768},
		{"device hue to degrees", 65535, 0, 65535, 0, 360, 360},
		{"saturation percent to device", 40, 0, 100, 0, 254, 102},
		{"half rounds up", 1, 0, 2, 0, 1, 1},
		{"below range extrapolates", -10, 0, 100, 0, 10, -1},
		{"above range extrapolates", 200, 0, 100, 0, 10, 20},
		{"inverted target", 25, 0, 100, 100, 0, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scale(tt.value, tt.srcMin, tt.srcMax, tt.dstMin, tt.dstMax)
			if result != tt.expected {
				t.Errorf("Scale(%v, %v, %v, %v, %v) = %d, expected %d",
					tt.value, tt.srcMin, tt.srcMax, tt.dstMin, tt.dstMax, result, tt.expected)
			}
		})
	}
}

func TestScale_Endpoints(t *testing.T) {
	intervals := []Interval{
		DeviceBrightness, DeviceHue, DeviceSaturation, DeviceColorTemp,
		SliderBrightness, SliderHue, SliderSaturation,
		KelvinRange(DeviceColorTemp),
	}

	for _, a := range intervals {
		for _, b := range intervals {
			if got := a.To(b, a.Min); got != int(b.Min) {
				t.Errorf("%v -> %v: min maps to %d, expected %v", a, b, got, b.Min)
			}
			if got := a.To(b, a.Max); got != int(b.Max) {
				t.Errorf("%v -> %v: max maps to %d, expected %v", a, b, got, b.Max)
			}
		}
	}
}

func TestScale_RoundTrip(t *testing.T) {
	// Slider -> device -> slider; the device side is always the finer range
	pairs := []struct {
		name   string
		slider Interval
		device Interval
	}{
		{"brightness", SliderBrightness, DeviceBrightness},
		{"hue", SliderHue, DeviceHue},
		{"saturation", SliderSaturation, DeviceSaturation},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for v := p.slider.Min; v <= p.slider.Max; v++ {
				device := p.slider.To(p.device, v)
				back := p.device.To(p.slider, float64(device))
				if diff := back - int(v); diff < -1 || diff > 1 {
					t.Errorf("round trip of %v via %d returned %d", v, device, back)
				}
			}
		})
	}
}

func TestScale_PanicsOnZeroWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero-width source range")
		}
	}()
	Scale(5, 10, 10, 0, 100)
}

func TestNewInterval_PanicsWhenInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for max < min")
		}
	}()
	NewInterval(100, 1)
}

func TestPercent(t *testing.T) {
	if got := Percent(127, 0, 254); got != 50 {
		t.Errorf("Percent(127, 0, 254) = %d, expected 50", got)
	}
}

func TestInterval_Step(t *testing.T) {
	tests := []struct {
		interval Interval
		expected int
	}{
		{SliderBrightness, 1},
		{SliderSaturation, 1},
		{SliderHue, 4},
		{NewInterval(0, 149), 1},
		{NewInterval(0, 150), 2},
		{KelvinRange(DeviceColorTemp), 45},
	}

	for _, tt := range tests {
		if got := tt.interval.Step(); got != tt.expected {
			t.Errorf("%v.Step() = %d, expected %d", tt.interval, got, tt.expected)
		}
	}
}

func TestInterval_Clamp(t *testing.T) {
	i := NewInterval(1, 100)
	if got := i.Clamp(0); got != 1 {
		t.Errorf("Clamp(0) = %v, expected 1", got)
	}
	if got := i.Clamp(101); got != 100 {
		t.Errorf("Clamp(101) = %v, expected 100", got)
	}
	if got := i.Clamp(42); got != 42 {
		t.Errorf("Clamp(42) = %v, expected 42", got)
	}
}
