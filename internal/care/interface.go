package care

import (
	"context"

	"plant-care-management/internal/model"
)

// UseCase defines the business logic interface for the care domain.
type UseCase interface {
	// Dashboard classifies every tracked task of the user's plants, selects
	// the upcoming window, and attaches pending schedule suggestions.
	// Derived state is recomputed on every call.
	Dashboard(ctx context.Context, sc model.Scope, input DashboardInput) (DashboardOutput, error)

	// LogCareEvent records that a care action occurred and returns the
	// recomputed task for the pair.
	LogCareEvent(ctx context.Context, sc model.Scope, input LogCareEventInput) (LogCareEventOutput, error)
}
