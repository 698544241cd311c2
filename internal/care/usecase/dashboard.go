package usecase

import (
	"context"
	"time"

	"plant-care-management/internal/care"
	"plant-care-management/internal/care/repository"
	"plant-care-management/internal/care/schedule"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
)

// Dashboard classifies every tracked task of the user's active plants,
// selects the upcoming window and attaches pending schedule suggestions.
// Nothing here is read back from storage; task state is derived from the
// care history at the evaluation instant.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope, input care.DashboardInput) (care.DashboardOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = schedule.DefaultHorizonDays
	}
	limit := input.Limit
	if limit <= 0 {
		limit = schedule.DefaultUpcomingLimit
	}

	plants, err := uc.repo.ListPlants(ctx, sc, repository.ListPlantsOptions{ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "Dashboard: failed to list plants: %v", err)
		return care.DashboardOutput{}, err
	}

	lastPerformed, err := uc.lastPerformedIndex(ctx, sc, plants)
	if err != nil {
		return care.DashboardOutput{}, err
	}

	var (
		tasks    = make([]care.PlantTasks, 0, len(plants))
		allTasks []care.CareTask
	)
	for _, plant := range plants {
		pt := care.PlantTasks{
			PlantID:   plant.ID,
			PlantName: plant.Name,
			TypeName:  plant.TypeName,
		}
		for _, kind := range []model.CareKind{model.CareKindWatering, model.CareKindFertilizing} {
			interval := plant.IntervalFor(kind)
			if interval <= 0 {
				continue
			}
			task, buildErr := schedule.BuildTask(plant.ID, plant.Name, kind, lastPerformed[eventKey{plant.ID, kind}], interval, now)
			if buildErr != nil {
				return care.DashboardOutput{}, buildErr
			}
			if kind == model.CareKindWatering {
				pt.Watering = &task
			} else {
				pt.Fertilizing = &task
			}
			allTasks = append(allTasks, task)
		}
		tasks = append(tasks, pt)
	}

	entries, total := schedule.SelectUpcoming(allTasks, now, horizon, limit)

	pending, err := uc.suggestions.ListPending(ctx, sc, suggestion.ListPendingInput{})
	if err != nil {
		uc.l.Errorf(ctx, "Dashboard: failed to list pending suggestions: %v", err)
		return care.DashboardOutput{}, err
	}

	summary := care.DashboardSummary{
		PlantCount:    len(plants),
		UpcomingCount: total,
	}
	for _, task := range allTasks {
		switch task.Status {
		case care.StatusOverdue:
			summary.OverdueCount++
		case care.StatusDue:
			summary.DueTodayCount++
		}
	}

	return care.DashboardOutput{
		Tasks:       tasks,
		Upcoming:    care.UpcomingOutput{Entries: entries, TotalMatched: total},
		Suggestions: toPendingSuggestions(pending.Suggestions),
		Summary:     summary,
		EvaluatedAt: now,
	}, nil
}

type eventKey struct {
	plantID string
	kind    model.CareKind
}

// lastPerformedIndex maps each (plant, kind) pair to its most recent care
// event timestamp.
func (uc *implUseCase) lastPerformedIndex(ctx context.Context, sc model.Scope, plants []model.Plant) (map[eventKey]*time.Time, error) {
	if len(plants) == 0 {
		return nil, nil
	}

	ids := make([]string, len(plants))
	for i, plant := range plants {
		ids[i] = plant.ID
	}

	latest, err := uc.repo.LatestCareEvents(ctx, sc, ids)
	if err != nil {
		uc.l.Errorf(ctx, "Dashboard: failed to load latest care events: %v", err)
		return nil, err
	}

	index := make(map[eventKey]*time.Time, len(latest))
	for _, event := range latest {
		at := event.PerformedAt
		index[eventKey{event.PlantID, event.Kind}] = &at
	}
	return index, nil
}

func toPendingSuggestions(suggestions []suggestion.ScheduleSuggestion) []care.PendingSuggestion {
	out := make([]care.PendingSuggestion, len(suggestions))
	for i, s := range suggestions {
		out[i] = care.PendingSuggestion{
			ID:                    s.ID,
			PlantID:               s.PlantID,
			PlantName:             s.PlantName,
			Kind:                  s.Kind,
			CurrentIntervalDays:   s.CurrentIntervalDays,
			SuggestedIntervalDays: s.SuggestedIntervalDays,
			ConfidenceScore:       s.ConfidenceScore,
		}
	}
	return out
}
