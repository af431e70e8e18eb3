package scale

import (
	"fmt"
	"math"
)

// Interval is a closed numeric range used as the domain or codomain of a
// scaling operation. Max is always greater than Min.
type Interval struct {
	Min float64
	Max float64
}

// NewInterval returns the interval [min, max]. It panics if max <= min since
// every interval in this program is a known constant.
func NewInterval(min, max float64) Interval {
	if max <= min {
		panic(fmt.Sprintf("scale: invalid interval [%v, %v]", min, max))
	}
	return Interval{Min: min, Max: max}
}

// Span returns the width of the interval
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// Step returns the slider step size for the interval. Intervals spanning 150
// units or more are reduced to about 100 stops.
func (i Interval) Step() int {
	if i.Span() >= 150 {
		return Round(i.Span() / 100)
	}
	return 1
}

// Clamp limits v to the interval
func (i Interval) Clamp(v float64) float64 {
	return math.Max(i.Min, math.Min(i.Max, v))
}

// To projects v from i onto dst
func (i Interval) To(dst Interval, v float64) int {
	return Scale(v, i.Min, i.Max, dst.Min, dst.Max)
}

// Scale converts value from [srcMin, srcMax] to the corresponding position
// within [dstMin, dstMax], rounded to the nearest integer (half up).
// Values outside the source range are extrapolated.
func Scale(value, srcMin, srcMax, dstMin, dstMax float64) int {
	srcRange := srcMax - srcMin
	if srcRange <= 0 {
		panic(fmt.Sprintf("scale: zero-width source range [%v, %v]", srcMin, srcMax))
	}
	relPos := (value - srcMin) / srcRange
	return Round(dstMin + relPos*(dstMax-dstMin))
}

// Percent converts value from [srcMin, srcMax] to [0, 100]
func Percent(value, srcMin, srcMax float64) int {
	return Scale(value, srcMin, srcMax, 0, 100)
}

// Round rounds half up, matching the browser's Math.round for the
// non-negative ranges used here.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
