package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"plant-care-management/internal/care"
	"plant-care-management/internal/care/repository"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
)

var testScope = model.Scope{UserID: "user-1"}

func newTestUseCase(repo *mockCareRepo, suggestions *mockSuggestionUC) *implUseCase {
	return New(&mockLogger{}, repo, suggestions, nil, CalendarConfig{})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	plants := []model.Plant{
		{ID: "p-1", Name: "Monstera", TypeName: "Monstera deliciosa", WateringIntervalDays: 7, FertilizingIntervalDays: 30, IsActive: true},
		{ID: "p-2", Name: "Pothos", WateringIntervalDays: 10, IsActive: true},
		{ID: "p-3", Name: "Cactus", WateringIntervalDays: 21, IsActive: true},
	}

	repo := &mockCareRepo{
		listPlantsFunc: func(opt repository.ListPlantsOptions) ([]model.Plant, error) {
			if !opt.ActiveOnly {
				t.Error("expected active-only plant listing")
			}
			return plants, nil
		},
		latestEventsFunc: func(plantIDs []string) ([]model.CareEvent, error) {
			if len(plantIDs) != 3 {
				t.Errorf("expected 3 plant ids, got %d", len(plantIDs))
			}
			return []model.CareEvent{
				// Watered 9 days ago on a 7-day interval: overdue.
				{PlantID: "p-1", Kind: model.CareKindWatering, PerformedAt: daysAgo(9)},
				// Fertilized 30 days ago: due today.
				{PlantID: "p-1", Kind: model.CareKindFertilizing, PerformedAt: daysAgo(30)},
				// Watered 7 days ago on a 10-day interval: due in 3 days.
				{PlantID: "p-2", Kind: model.CareKindWatering, PerformedAt: daysAgo(7)},
				// p-3 was never watered: unknown.
			}, nil
		},
	}

	t.Run("classifies and aggregates", func(t *testing.T) {
		conf := 0.8
		suggestions := &mockSuggestionUC{
			listPendingFunc: func(input suggestion.ListPendingInput) (suggestion.ListPendingOutput, error) {
				list := []suggestion.ScheduleSuggestion{{
					ID:                    "sg-1",
					PlantID:               "p-2",
					PlantName:             "Pothos",
					Kind:                  model.CareKindWatering,
					CurrentIntervalDays:   10,
					SuggestedIntervalDays: 7,
					ConfidenceScore:       &conf,
					State:                 suggestion.StatePending,
				}}
				return suggestion.ListPendingOutput{Suggestions: list, Count: 1}, nil
			},
		}

		out, err := newTestUseCase(repo, suggestions).Dashboard(ctx, testScope, care.DashboardInput{Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Tasks) != 3 {
			t.Fatalf("expected tasks for 3 plants, got %d", len(out.Tasks))
		}

		monstera := out.Tasks[0]
		if monstera.Watering == nil || monstera.Watering.Status != care.StatusOverdue {
			t.Errorf("monstera watering = %+v, want overdue", monstera.Watering)
		}
		if monstera.Fertilizing == nil || monstera.Fertilizing.Status != care.StatusDue {
			t.Errorf("monstera fertilizing = %+v, want due", monstera.Fertilizing)
		}

		pothos := out.Tasks[1]
		if pothos.Watering == nil || pothos.Watering.Status != care.StatusOK {
			t.Errorf("pothos watering = %+v, want ok", pothos.Watering)
		}
		if pothos.Fertilizing != nil {
			t.Error("pothos does not track fertilizing")
		}

		cactus := out.Tasks[2]
		if cactus.Watering == nil || cactus.Watering.Status != care.StatusUnknown {
			t.Errorf("cactus watering = %+v, want unknown", cactus.Watering)
		}

		// Only the pothos watering task falls in the 7-day window; the
		// cactus task has no history and the unknown status is excluded.
		if out.Upcoming.TotalMatched != 1 || len(out.Upcoming.Entries) != 1 {
			t.Fatalf("upcoming = %+v, want exactly the pothos task", out.Upcoming)
		}
		if got := out.Upcoming.Entries[0]; got.Task.PlantID != "p-2" || got.DaysUntilDue != 3 {
			t.Errorf("upcoming entry = %+v, want p-2 in 3 days", got)
		}

		if len(out.Suggestions) != 1 || out.Suggestions[0].SuggestedIntervalDays != 7 {
			t.Errorf("suggestions = %+v, want the pending pothos proposal", out.Suggestions)
		}
		if out.Suggestions[0].ConfidenceScore == nil || *out.Suggestions[0].ConfidenceScore != 0.8 {
			t.Error("confidence score should pass through unchanged")
		}

		want := care.DashboardSummary{PlantCount: 3, OverdueCount: 1, DueTodayCount: 1, UpcomingCount: 1}
		if out.Summary != want {
			t.Errorf("summary = %+v, want %+v", out.Summary, want)
		}
		if !out.EvaluatedAt.Equal(now) {
			t.Errorf("evaluated at = %v, want %v", out.EvaluatedAt, now)
		}
	})

	t.Run("no plants", func(t *testing.T) {
		empty := &mockCareRepo{}
		out, err := newTestUseCase(empty, &mockSuggestionUC{}).Dashboard(ctx, testScope, care.DashboardInput{Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 0 || out.Summary.PlantCount != 0 {
			t.Errorf("expected an empty dashboard, got %+v", out)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		broken := &mockCareRepo{
			listPlantsFunc: func(opt repository.ListPlantsOptions) ([]model.Plant, error) {
				return nil, errors.New("db closed")
			},
		}
		if _, err := newTestUseCase(broken, &mockSuggestionUC{}).Dashboard(ctx, testScope, care.DashboardInput{Now: now}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestLogCareEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	plant := model.Plant{ID: "p-1", Name: "Monstera", WateringIntervalDays: 7, IsActive: true}

	t.Run("records and recomputes the task", func(t *testing.T) {
		var created *repository.CreateCareEventOptions
		repo := &mockCareRepo{
			getPlantFunc: func(id string) (model.Plant, error) { return plant, nil },
			createEventFunc: func(opt repository.CreateCareEventOptions) (model.CareEvent, error) {
				created = &opt
				return model.CareEvent{ID: opt.ID, PlantID: opt.PlantID, Kind: opt.Kind, PerformedAt: opt.PerformedAt, Note: opt.Note}, nil
			},
		}
		refreshed := false
		suggestions := &mockSuggestionUC{
			refreshFunc: func(input suggestion.RefreshInput) (suggestion.RefreshOutput, error) {
				refreshed = true
				if input.PlantID != "p-1" {
					t.Errorf("refresh plant = %s, want p-1", input.PlantID)
				}
				return suggestion.RefreshOutput{}, nil
			},
		}

		out, err := newTestUseCase(repo, suggestions).LogCareEvent(ctx, testScope, care.LogCareEventInput{
			PlantID: "p-1",
			Kind:    model.CareKindWatering,
			Note:    "bottom watered",
			Now:     now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("expected CreateCareEvent to be called")
		}
		if created.ID == "" {
			t.Error("expected a generated event id")
		}
		if !created.PerformedAt.Equal(now) {
			t.Errorf("performed at = %v, want now", created.PerformedAt)
		}
		if out.Task.Status != care.StatusOK {
			t.Errorf("task status = %s, want ok right after logging", out.Task.Status)
		}
		if out.Task.DueAt == nil || !out.Task.DueAt.Equal(now.AddDate(0, 0, 7)) {
			t.Errorf("due at = %v, want 7 days out", out.Task.DueAt)
		}
		if !refreshed {
			t.Error("expected a suggestion refresh")
		}
		if out.CalendarLink != "" {
			t.Error("calendar link should be empty with reminders disabled")
		}
	})

	t.Run("backdated event", func(t *testing.T) {
		repo := &mockCareRepo{
			getPlantFunc: func(id string) (model.Plant, error) { return plant, nil },
		}
		performedAt := now.AddDate(0, 0, -9)

		out, err := newTestUseCase(repo, &mockSuggestionUC{}).LogCareEvent(ctx, testScope, care.LogCareEventInput{
			PlantID:     "p-1",
			Kind:        model.CareKindWatering,
			PerformedAt: &performedAt,
			Now:         now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Status != care.StatusOverdue {
			t.Errorf("task status = %s, want overdue for a 9-day-old event", out.Task.Status)
		}
	})

	t.Run("failed suggestion refresh does not lose the event", func(t *testing.T) {
		repo := &mockCareRepo{
			getPlantFunc: func(id string) (model.Plant, error) { return plant, nil },
		}
		suggestions := &mockSuggestionUC{
			refreshFunc: func(input suggestion.RefreshInput) (suggestion.RefreshOutput, error) {
				return suggestion.RefreshOutput{}, errors.New("analysis store down")
			},
		}

		out, err := newTestUseCase(repo, suggestions).LogCareEvent(ctx, testScope, care.LogCareEventInput{
			PlantID: "p-1",
			Kind:    model.CareKindWatering,
			Now:     now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event.ID == "" {
			t.Error("expected the event to be returned")
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc := newTestUseCase(&mockCareRepo{}, &mockSuggestionUC{})
		_, err := uc.LogCareEvent(ctx, testScope, care.LogCareEventInput{PlantID: "p-1", Kind: "pruning", Now: now})
		if !errors.Is(err, care.ErrInvalidCareKind) {
			t.Errorf("error = %v, want ErrInvalidCareKind", err)
		}
	})

	t.Run("unknown plant", func(t *testing.T) {
		uc := newTestUseCase(&mockCareRepo{}, &mockSuggestionUC{})
		_, err := uc.LogCareEvent(ctx, testScope, care.LogCareEventInput{PlantID: "nope", Kind: model.CareKindWatering, Now: now})
		if !errors.Is(err, care.ErrPlantNotFound) {
			t.Errorf("error = %v, want ErrPlantNotFound", err)
		}
	})

	t.Run("untracked kind for the plant", func(t *testing.T) {
		repo := &mockCareRepo{
			getPlantFunc: func(id string) (model.Plant, error) { return plant, nil },
		}
		uc := newTestUseCase(repo, &mockSuggestionUC{})
		_, err := uc.LogCareEvent(ctx, testScope, care.LogCareEventInput{PlantID: "p-1", Kind: model.CareKindFertilizing, Now: now})
		if !errors.Is(err, care.ErrInvalidInterval) {
			t.Errorf("error = %v, want ErrInvalidInterval", err)
		}
	})
}
