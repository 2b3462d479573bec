package drill

import "math"

// RoundRandom rounds x down and adds one with probability equal to its fractional part.
func RoundRandom(x float64, rng Rand) int {
	f := math.Floor(x)
	n := int(f)
	if frac := x - f; frac > 0 && rng.Float64() < frac {
		n++
	}
	return n
}
