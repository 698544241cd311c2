package http

import (
	"errors"

	"plant-care-management/internal/care"
	pkgErrors "plant-care-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, care.ErrPlantNotFound):
		return pkgErrors.NewHTTPError(404, "plant not found")
	case errors.Is(err, care.ErrInvalidCareKind):
		return pkgErrors.NewHTTPError(400, "kind must be watering or fertilizing")
	case errors.Is(err, care.ErrInvalidInterval):
		return pkgErrors.NewHTTPError(400, "the plant does not track this care kind")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
