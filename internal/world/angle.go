package world

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle maps angle into the half-open interval [start, end).
// Already-normalized values come back unchanged and the interval end wraps
// to its start, so the result is always safe for range comparisons.
func NormalizeAngle(angle, start, end float64) float64 {
	width := end - start
	r := math.Mod(angle-start, width)
	if r < 0 {
		r += width
	}
	return r + start
}
