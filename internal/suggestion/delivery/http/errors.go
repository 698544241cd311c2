package http

import (
	"errors"

	"plant-care-management/internal/suggestion"
	pkgErrors "plant-care-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "suggestion not found")
	case errors.Is(err, suggestion.ErrPlantNotFound):
		return pkgErrors.NewHTTPError(404, "plant not found")
	case errors.Is(err, suggestion.ErrAlreadyResolved):
		return pkgErrors.NewHTTPError(409, "suggestion already resolved")
	case errors.Is(err, suggestion.ErrInvalidInterval):
		return pkgErrors.NewHTTPError(400, "invalid interval")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
