package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Error kinds surfaced at the request boundary. Specific sentinels are marked with
// one of these so callers only need to check the kind.
var (
	// ErrValidation covers bad input and business-rule violations
	// (blank name, non-positive capacity, duplicates, past dates).
	ErrValidation = errors.New("validation error")

	// ErrNotFound means a referenced room or reservation does not exist.
	ErrNotFound = errors.New("not found")
)

// Is matches one specific sentinel. Marks are ignored, so two sentinels sharing
// ErrValidation stay distinct; use IsValidation or IsNotFound for the kind.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func IsValidation(err error) bool {
	return cr.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return cr.Is(err, ErrNotFound)
}
