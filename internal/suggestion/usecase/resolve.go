package usecase

import (
	"context"
	"fmt"
	"time"

	careRepo "plant-care-management/internal/care/repository"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
	"plant-care-management/internal/suggestion/repository"
)

// Accept resolves a pending suggestion and applies the new interval to the
// plant configuration. The state transition is a conditional update, so a
// concurrent duplicate accept (or dismiss) surfaces as ErrAlreadyResolved.
// If the interval write fails after the transition, the suggestion stays
// accepted; the returned change still describes the write so the caller can
// re-issue it.
func (uc *implUseCase) Accept(ctx context.Context, sc model.Scope, id string) (suggestion.AppliedIntervalChange, error) {
	s, err := uc.pendingByID(ctx, sc, id)
	if err != nil {
		return suggestion.AppliedIntervalChange{}, err
	}

	ok, err := uc.repo.ResolveSuggestion(ctx, sc, repository.ResolveSuggestionOptions{
		ID:         id,
		State:      suggestion.StateAccepted,
		ResolvedAt: time.Now().UTC(),
	})
	if err != nil {
		return suggestion.AppliedIntervalChange{}, err
	}
	if !ok {
		return suggestion.AppliedIntervalChange{}, suggestion.ErrAlreadyResolved
	}

	change := suggestion.AppliedIntervalChange{
		PlantID:         s.PlantID,
		Kind:            s.Kind,
		NewIntervalDays: s.SuggestedIntervalDays,
	}

	if err := uc.plants.SetInterval(ctx, sc, careRepo.SetIntervalOptions{
		PlantID:      change.PlantID,
		Kind:         change.Kind,
		IntervalDays: change.NewIntervalDays,
	}); err != nil {
		uc.l.Errorf(ctx, "Accept: suggestion %s resolved but interval %d not applied to plant %s: %v",
			id, change.NewIntervalDays, change.PlantID, err)
		return change, fmt.Errorf("failed to apply interval change: %w", err)
	}

	uc.l.Infof(ctx, "Accept: plant=%s kind=%s interval %d→%d",
		change.PlantID, change.Kind, s.CurrentIntervalDays, change.NewIntervalDays)
	return change, nil
}

// Dismiss resolves a pending suggestion and starts the cooldown for the
// proposed value.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) (suggestion.DismissalRecord, error) {
	s, err := uc.pendingByID(ctx, sc, id)
	if err != nil {
		return suggestion.DismissalRecord{}, err
	}

	dismissedAt := time.Now().UTC()
	ok, err := uc.repo.ResolveSuggestion(ctx, sc, repository.ResolveSuggestionOptions{
		ID:         id,
		State:      suggestion.StateDismissed,
		ResolvedAt: dismissedAt,
	})
	if err != nil {
		return suggestion.DismissalRecord{}, err
	}
	if !ok {
		return suggestion.DismissalRecord{}, suggestion.ErrAlreadyResolved
	}

	uc.cooldown.Add(cooldownKey(sc, s.PlantID, s.Kind, s.SuggestedIntervalDays), struct{}{})

	return suggestion.DismissalRecord{
		PlantID:               s.PlantID,
		Kind:                  s.Kind,
		SuggestedIntervalDays: s.SuggestedIntervalDays,
		DismissedAt:           dismissedAt,
	}, nil
}

// pendingByID loads a suggestion and screens the obvious failure modes.
// The conditional update remains the authority on the pending state.
func (uc *implUseCase) pendingByID(ctx context.Context, sc model.Scope, id string) (suggestion.ScheduleSuggestion, error) {
	s, err := uc.repo.GetSuggestion(ctx, sc, id)
	if err != nil {
		return suggestion.ScheduleSuggestion{}, err
	}
	if s.ID == "" {
		return suggestion.ScheduleSuggestion{}, suggestion.ErrNotFound
	}
	if s.State != suggestion.StatePending {
		return suggestion.ScheduleSuggestion{}, suggestion.ErrAlreadyResolved
	}
	return s, nil
}
