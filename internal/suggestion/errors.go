package suggestion

import "errors"

// Domain-specific errors for the suggestion package.
var (
	// ErrAlreadyResolved means another actor accepted or dismissed the
	// suggestion first. Callers should refresh their view, not retry.
	ErrAlreadyResolved = errors.New("suggestion already resolved")
	ErrNotFound        = errors.New("suggestion not found")
	ErrPlantNotFound   = errors.New("plant not found")
	ErrInvalidInterval = errors.New("configured interval must be a positive number of days")
)
