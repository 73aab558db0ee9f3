package adstock

import "math"

// DecayFactor computes the per-period retention factor exp(ln(0.5)/halflife).
// Raised to the power of halflife the factor gives exactly 0.5, so a signal
// retains half of its remaining strength every halflife periods.
func DecayFactor(halflife float64) (float64, error) {
	if halflife <= 0 || math.IsNaN(halflife) || math.IsInf(halflife, 0) {
		return 0, errInvalidHalflife(halflife)
	}
	return math.Exp(-math.Ln2 / halflife), nil
}
