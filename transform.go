// Package adstock carries advertising effect forward through time. Each
// observation keeps a geometrically decaying share of the periods before it,
// parameterized by the number of periods it takes for that share to halve.
package adstock

import "math"

// DefaultRounding is the number of decimal places kept in transform output.
const DefaultRounding = 4

// ApplyHalflife transforms series with the given half-life and
// DefaultRounding decimal places. See ApplyHalflifeRounded.
func ApplyHalflife(series []float64, halflife float64) ([]float32, error) {
	return ApplyHalflifeRounded(series, halflife, DefaultRounding)
}

// ApplyHalflifeRounded applies exponential carryover decay to series. The
// result at position i is series[i] plus lambda times the result at i-1,
// where lambda is the retention factor for halflife. The recurrence runs at
// full float64 precision; rounding to the requested decimal places happens
// once on the way out. The input slice is never modified.
//
// A non-positive or non-finite halflife and a negative rounding are rejected
// with an invalid-parameter error. NaN and infinite observations flow through
// the recurrence untouched.
func ApplyHalflifeRounded(series []float64, halflife float64, rounding int) ([]float32, error) {
	lambda, err := DecayFactor(halflife)
	if err != nil {
		return nil, err
	}
	if rounding < 0 {
		return nil, errInvalidRounding(rounding)
	}

	out := make([]float32, len(series))
	if len(series) == 0 {
		return out, nil
	}

	working := append([]float64(nil), series...)
	for i := 1; i < len(working); i++ {
		working[i] += lambda * working[i-1]
	}

	pow := math.Pow(10, float64(rounding))
	for i, v := range working {
		out[i] = float32(math.Round(v*pow) / pow)
	}
	return out, nil
}
