package domain

import "errors"

// Sentinel errors returned by the affordability engine. Callers match them
// with errors.Is; every failure aborts the whole computation, so none of
// these ever accompany a partial result.
var (
	// ErrUnknownLocation indicates the location key is absent from the price table.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrNoProjectionForYear indicates the location exists but has no price
	// projection for the requested year.
	ErrNoProjectionForYear = errors.New("no price projection for year")

	// ErrNoProjectionAvailable indicates the year search exhausted the table.
	ErrNoProjectionAvailable = errors.New("no price projections available")

	// ErrInvalidPercentage indicates a percentage input outside [0, 1].
	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrInvalidAmortizationInput indicates a negative principal or
	// non-positive term.
	ErrInvalidAmortizationInput = errors.New("invalid amortization input")

	// ErrConflictingInputs indicates both or neither of target age and
	// monthly savings capacity were supplied.
	ErrConflictingInputs = errors.New("conflicting inputs")
)
