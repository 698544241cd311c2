package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	careRepo "plant-care-management/internal/care/repository"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
	"plant-care-management/internal/suggestion/repository"
	"plant-care-management/pkg/daymath"
)

// Refresh re-analyzes care history and persists new pending suggestions.
// At most one pending suggestion per (plant, care kind); values dismissed
// within the cooldown window are never re-proposed, though a different
// value may surface sooner.
func (uc *implUseCase) Refresh(ctx context.Context, sc model.Scope, input suggestion.RefreshInput) (suggestion.RefreshOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	plants, err := uc.targetPlants(ctx, sc, input.PlantID)
	if err != nil {
		return suggestion.RefreshOutput{}, err
	}

	var out suggestion.RefreshOutput
	for _, plant := range plants {
		for _, kind := range []model.CareKind{model.CareKindWatering, model.CareKindFertilizing} {
			interval := plant.IntervalFor(kind)
			if interval <= 0 {
				continue
			}

			created, pairErr := uc.refreshPair(ctx, sc, plant, kind, interval, now)
			if pairErr != nil {
				return suggestion.RefreshOutput{}, pairErr
			}
			if created != nil {
				out.Created = append(out.Created, *created)
			}
		}
	}
	return out, nil
}

func (uc *implUseCase) targetPlants(ctx context.Context, sc model.Scope, plantID string) ([]model.Plant, error) {
	if plantID == "" {
		return uc.plants.ListPlants(ctx, sc, careRepo.ListPlantsOptions{ActiveOnly: true})
	}

	plant, err := uc.plants.GetPlant(ctx, sc, plantID)
	if err != nil {
		return nil, err
	}
	if plant.ID == "" {
		return nil, suggestion.ErrPlantNotFound
	}
	return []model.Plant{plant}, nil
}

// refreshPair analyzes one (plant, kind) pair and persists a suggestion when
// warranted. Returns nil without error when nothing should surface.
func (uc *implUseCase) refreshPair(ctx context.Context, sc model.Scope, plant model.Plant, kind model.CareKind, interval int, now time.Time) (*suggestion.ScheduleSuggestion, error) {
	history, err := uc.plants.ListCareEvents(ctx, sc, careRepo.ListCareEventsOptions{
		PlantID: plant.ID,
		Kind:    kind,
	})
	if err != nil {
		return nil, err
	}

	analysis, err := suggestion.Analyze(history, interval)
	if err != nil {
		return nil, err
	}
	if !analysis.ShouldSuggest {
		return nil, nil
	}

	// One pending suggestion per pair at a time.
	pending, err := uc.repo.ListSuggestions(ctx, sc, repository.ListSuggestionsOptions{
		PlantID: plant.ID,
		Kind:    kind,
		State:   suggestion.StatePending,
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		return nil, nil
	}

	// Cooldown: a dismissed value stays quiet for CooldownDays.
	key := cooldownKey(sc, plant.ID, kind, analysis.SuggestedDays)
	if _, suppressed := uc.cooldown.Get(key); suppressed {
		uc.l.Debugf(ctx, "Refresh: cooldown hit for %s", key)
		return nil, nil
	}
	dismissed, err := uc.repo.HasRecentDismissal(ctx, sc, repository.DismissalLookupOptions{
		PlantID:               plant.ID,
		Kind:                  kind,
		SuggestedIntervalDays: analysis.SuggestedDays,
		Since:                 daymath.AddDays(now, -suggestion.CooldownDays),
	})
	if err != nil {
		return nil, err
	}
	if dismissed {
		uc.cooldown.Add(key, struct{}{})
		return nil, nil
	}

	created, err := uc.repo.CreateSuggestion(ctx, sc, repository.CreateSuggestionOptions{
		ID:                    uuid.NewString(),
		PlantID:               plant.ID,
		Kind:                  kind,
		CurrentIntervalDays:   interval,
		SuggestedIntervalDays: analysis.SuggestedDays,
		ConfidenceScore:       analysis.Confidence,
		DetectedAt:            now,
	})
	if err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "Refresh: suggested %d days (was %d) for plant=%s kind=%s",
		analysis.SuggestedDays, interval, plant.ID, kind)
	return &created, nil
}

// ListPending returns open suggestions, newest first.
func (uc *implUseCase) ListPending(ctx context.Context, sc model.Scope, input suggestion.ListPendingInput) (suggestion.ListPendingOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 50 {
		limit = suggestion.DefaultPendingLimit
	}

	suggestions, err := uc.repo.ListSuggestions(ctx, sc, repository.ListSuggestionsOptions{
		State: suggestion.StatePending,
		Limit: limit,
	})
	if err != nil {
		return suggestion.ListPendingOutput{}, err
	}

	return suggestion.ListPendingOutput{
		Suggestions: suggestions,
		Count:       len(suggestions),
	}, nil
}
