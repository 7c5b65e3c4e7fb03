// Package confidence provides pricing-coverage score math utilities.
package confidence

import "math"

// Coverage scores an estimate by the share of bill-of-materials lines
// that resolved against the active rate catalog.
func Coverage(priced, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Clamp(float64(priced) / float64(total))
}

// Aggregate combines multiple coverage scores.
// Uses geometric mean to penalize poorly covered estimates.
func Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	product := 1.0
	for _, s := range scores {
		if s <= 0 {
			return 0
		}
		product *= s
	}

	return math.Pow(product, 1.0/float64(len(scores)))
}

// AboveThreshold checks if a score meets a minimum requirement.
func AboveThreshold(score, threshold float64) bool {
	return score >= threshold
}

// Clamp ensures a score is in valid range [0, 1].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
