package suggestion

import (
	"context"

	"plant-care-management/internal/model"
)

// UseCase defines the business logic interface for the suggestion domain.
type UseCase interface {
	// Refresh analyzes care history and persists new pending suggestions.
	// At most one pending suggestion exists per (plant, care kind); values
	// dismissed within the cooldown window are not re-proposed.
	Refresh(ctx context.Context, sc model.Scope, input RefreshInput) (RefreshOutput, error)

	// ListPending returns open suggestions, newest first.
	ListPending(ctx context.Context, sc model.Scope, input ListPendingInput) (ListPendingOutput, error)

	// Accept resolves a pending suggestion and applies the interval change
	// to the plant configuration. ErrAlreadyResolved when not pending.
	Accept(ctx context.Context, sc model.Scope, id string) (AppliedIntervalChange, error)

	// Dismiss resolves a pending suggestion and starts the cooldown for the
	// proposed value. ErrAlreadyResolved when not pending.
	Dismiss(ctx context.Context, sc model.Scope, id string) (DismissalRecord, error)
}
