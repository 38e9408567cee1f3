package elo

import "math"

const scale = 400.0

// expected returns the score player A is expected to take against player B.
// Ra - player A rating.
// Rb - player B rating.
func expected(Ra int, Rb int) float64 {
	ra := float64(Ra)
	rb := float64(Rb)
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/scale))
}

// Gap is the inverse of expected: the rating advantage that makes a player
// expected to score Ea (0 < Ea < 1). ok is false when Ea is 0 or 1 or out of range,
// as no finite gap predicts a certain result.
func Gap(Ea float64) (gap int, ok bool) {
	if !(Ea > 0 && Ea < 1) {
		return 0, false
	}
	return int(math.Round(scale * math.Log10(Ea/(1-Ea)))), true
}
