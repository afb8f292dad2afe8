package domain

import "errors"

// Error taxonomy of the taste core. Pure-core errors (invalid input, unknown
// category) surface synchronously at construction; boundary errors are
// wrapped with context and aggregated by the orchestrators.
var (
	// ErrInvalidOnboardingInput marks an answer map with a value outside its
	// domain, or no usable answers at all. Raised only by the normalizer.
	ErrInvalidOnboardingInput = errors.New("invalid onboarding input")

	// ErrUnknownCategory marks a category name the registry does not know.
	// Rules log it as a warning and skip the category; it is never fatal.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrTasteConfigMissing marks a runtime lookup for a taste id that has no
	// precomputed record.
	ErrTasteConfigMissing = errors.New("taste config missing")

	// ErrExternalScorer marks a failed call to the external product scorer.
	// The category keeps an empty product list and the batch counts it.
	ErrExternalScorer = errors.New("external product scorer failed")

	// ErrStore marks a rejected config store write. Only the affected taste
	// id fails; the batch continues.
	ErrStore = errors.New("taste config store failure")
)
