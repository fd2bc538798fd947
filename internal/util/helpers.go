package util

import "math"

// Clamp constrains a value to the inclusive [min, max] range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Round1 rounds to one decimal place. Utilization percentages are
// displayed and compared at this precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
