package validation

import "errors"

var (
	// ErrValidationFailed matches every *Failure via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidOptional is returned when text or JSON cannot be decoded into an Optional.
	ErrInvalidOptional = errors.New("invalid optional value")
)
