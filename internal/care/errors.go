package care

import "errors"

// Domain-specific errors for the care package.
var (
	ErrInvalidInterval = errors.New("care interval must be a positive number of days")
	ErrInvalidCareKind = errors.New("unknown care kind")
	ErrPlantNotFound   = errors.New("plant not found")
)
