// Package compass holds the 24-mountain catalogue and the angle arithmetic
// every direction-sensitive part of the chart relies on.
package compass

import "math"

const fullCircle = 360.0

// Normalize maps any angle into [0, 360).
func Normalize(deg float64) float64 {
	n := math.Mod(deg, fullCircle)
	if n < 0 {
		n += fullCircle
	}
	// tiny negative inputs round up to exactly 360
	if n >= fullCircle {
		n -= fullCircle
	}
	return n
}

// InWrapRange reports whether angle lies in [start, end), wrapping past 360
// when start > end.
func InWrapRange(angle, start, end float64) bool {
	a, s, e := Normalize(angle), Normalize(start), Normalize(end)
	if s <= e {
		return a >= s && a < e
	}
	return a >= s || a < e
}

// CircularDistance is the shorter arc between a and b, in [0, 180].
func CircularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	return math.Min(d, fullCircle-d)
}
