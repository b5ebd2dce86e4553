package convert

import "math"

// Convert converts value in from into from's paired unit.
//
// US units are multiplied by their rate; metric units are divided by their pair's.
// Convert does not round.
// An invalid Unit converts to NaN.
func Convert(value float64, from Unit) float64 {
	if r, ok := rates[from]; ok {
		return value * r
	}

	if r, ok := rates[from.Pair()]; ok {
		return value / r
	}

	return math.NaN()
}
