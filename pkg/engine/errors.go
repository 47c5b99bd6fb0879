package engine

import "errors"

// Input validation errors. Formulas are undefined for negative magnitudes, so
// bad inputs are rejected before any computation rather than clamped.
var (
	// ErrInvalidTerm indicates a non-positive number of payment periods.
	ErrInvalidTerm = errors.New("term must be at least one period")

	// ErrInvalidRate indicates a negative periodic interest rate.
	ErrInvalidRate = errors.New("rate must not be negative")

	// ErrInvalidPrincipal indicates a negative principal amount.
	ErrInvalidPrincipal = errors.New("principal must not be negative")

	// ErrInvalidPayment indicates a negative payment amount.
	ErrInvalidPayment = errors.New("payment must not be negative")

	// ErrInvalidPeriod indicates a period index outside the loan term.
	ErrInvalidPeriod = errors.New("period index outside loan term")
)
