package repository

import (
	"context"
	"time"

	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
)

// Repository is the durable store for schedule suggestions.
type Repository interface {
	CreateSuggestion(ctx context.Context, sc model.Scope, opt CreateSuggestionOptions) (suggestion.ScheduleSuggestion, error)
	// GetSuggestion returns the zero value (ID == "") when not found.
	GetSuggestion(ctx context.Context, sc model.Scope, id string) (suggestion.ScheduleSuggestion, error)
	ListSuggestions(ctx context.Context, sc model.Scope, opt ListSuggestionsOptions) ([]suggestion.ScheduleSuggestion, error)
	// ResolveSuggestion flips a pending suggestion to the target state.
	// The update is conditional on the row still being pending; it returns
	// false (and no error) when another actor resolved it first.
	ResolveSuggestion(ctx context.Context, sc model.Scope, opt ResolveSuggestionOptions) (bool, error)
	// HasRecentDismissal reports whether the same proposed value for the
	// pair was dismissed at or after the since instant.
	HasRecentDismissal(ctx context.Context, sc model.Scope, opt DismissalLookupOptions) (bool, error)
}

// CreateSuggestionOptions holds parameters for inserting a suggestion.
type CreateSuggestionOptions struct {
	ID                    string
	PlantID               string
	Kind                  model.CareKind
	CurrentIntervalDays   int
	SuggestedIntervalDays int
	ConfidenceScore       *float64
	DetectedAt            time.Time
}

// ListSuggestionsOptions holds filter parameters for listing suggestions.
type ListSuggestionsOptions struct {
	PlantID string
	Kind    model.CareKind
	State   suggestion.State
	Limit   int
}

// ResolveSuggestionOptions holds parameters for a pending-state transition.
type ResolveSuggestionOptions struct {
	ID         string
	State      suggestion.State
	ResolvedAt time.Time
}

// DismissalLookupOptions holds parameters for the cooldown check.
type DismissalLookupOptions struct {
	PlantID               string
	Kind                  model.CareKind
	SuggestedIntervalDays int
	Since                 time.Time
}
