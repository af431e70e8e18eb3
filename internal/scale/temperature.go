package scale

// Mirek = 1,000,000 / Kelvin
const mirekFactor = 1e6

// MirekToKelvin converts a color temperature in mirek to kelvin.
// Non-positive input yields 0.
func MirekToKelvin(mirek int) int {
	return invert(mirek)
}

// KelvinToMirek converts a color temperature in kelvin to mirek.
// Non-positive input yields 0.
func KelvinToMirek(kelvin int) int {
	return invert(kelvin)
}

func invert(v int) int {
	if v <= 0 {
		return 0
	}
	return Round(mirekFactor / float64(v))
}

// KelvinRange inverts a mirek interval into the kelvin interval used by the
// temperature slider. The lowest mirek is the coolest (highest) kelvin.
func KelvinRange(mirek Interval) Interval {
	return NewInterval(
		float64(MirekToKelvin(int(mirek.Max))),
		float64(MirekToKelvin(int(mirek.Min))),
	)
}
