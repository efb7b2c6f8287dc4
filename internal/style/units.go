package style

import "math"

// HalfPoints converts a font size in points to half-points, the unit of
// w:sz in WordprocessingML.
func HalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// PointTwips converts points to twentieths of a point.
func PointTwips(pt float64) int {
	return int(math.Round(pt * 20))
}

// InchTwips converts inches to twentieths of a point.
func InchTwips(in float64) int {
	return int(math.Round(in * 1440))
}
