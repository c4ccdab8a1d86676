package tvm

import "errors"

// Errors returned by the package.
// They are always wrapped with the context of the failing computation,
// use [errors.Is] to match them.
var (
	// ErrInvalidValue is returned when a quantity is constructed from,
	// or an operation produces, a NaN or an infinity.
	ErrInvalidValue = errors.New("invalid value")

	// ErrAmbiguousUnitOperation is returned by operator-level multiplication,
	// division and exponentiation between two non-number kinds.
	// Use [Value.Multiply] and [Value.Divide] when the product or ratio is intended.
	ErrAmbiguousUnitOperation = errors.New("ambiguous unit operation")

	// ErrEmptySeries is returned by statistics that need at least one element.
	ErrEmptySeries = errors.New("empty series")

	// ErrInsufficientData is returned by sample statistics on fewer than two elements.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidArgument is returned when an argument is outside of its domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateInput is returned by the rate solver when the present value is zero.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrDidNotConverge is returned by the rate solver when it runs out of iterations.
	ErrDidNotConverge = errors.New("did not converge")
)
