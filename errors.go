package adstock

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// errInvalidHalflife builds the rejection for a half-life outside the valid
// domain. The offending value is carried in the error details.
func errInvalidHalflife(halflife float64) error {
	errorMap := errbuilder.ErrorMap{}
	errorMap.Set("halflife", fmt.Errorf("must be positive and finite, got %v", halflife))

	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid half-life").
		WithDetails(errbuilder.NewErrDetails(errorMap))
}

// errInvalidRounding builds the rejection for a negative decimal count.
func errInvalidRounding(rounding int) error {
	errorMap := errbuilder.ErrorMap{}
	errorMap.Set("rounding", fmt.Errorf("must be a non-negative number of decimal places, got %d", rounding))

	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid rounding").
		WithDetails(errbuilder.NewErrDetails(errorMap))
}

// IsInvalidParameter reports whether err, anywhere in its chain, is a
// transform parameter rejection. Callers can use it to separate their own
// bad input from I/O trouble around the transform.
func IsInvalidParameter(err error) bool {
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) {
		return false
	}
	return builder.ErrCode() == errbuilder.CodeInvalidArgument
}
