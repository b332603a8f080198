package fees

import "errors"

var (
	// ErrInvalidAmount is returned for non-positive amounts. A zero or
	// negative amount is a caller contract violation, never a free fee.
	ErrInvalidAmount = errors.New("invalid amount: must be greater than zero")

	// ErrUnknownCategory is returned when no fee rule exists for the
	// category. Absence of a rule is an error, not a zero fee.
	ErrUnknownCategory = errors.New("unknown transaction category: no fee rule defined")
)
