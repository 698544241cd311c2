package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"plant-care-management/internal/care"
	"plant-care-management/internal/care/repository"
	"plant-care-management/internal/care/schedule"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
	"plant-care-management/pkg/gcalendar"
)

// LogCareEvent records that a care action occurred and returns the recomputed
// task for the pair. The suggestion refresh and the calendar reminder are
// best effort; a failure there never loses the logged event.
func (uc *implUseCase) LogCareEvent(ctx context.Context, sc model.Scope, input care.LogCareEventInput) (care.LogCareEventOutput, error) {
	if !input.Kind.Valid() {
		return care.LogCareEventOutput{}, care.ErrInvalidCareKind
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	plant, err := uc.repo.GetPlant(ctx, sc, input.PlantID)
	if err != nil {
		uc.l.Errorf(ctx, "LogCareEvent: failed to get plant %s: %v", input.PlantID, err)
		return care.LogCareEventOutput{}, err
	}
	if plant.ID == "" {
		return care.LogCareEventOutput{}, care.ErrPlantNotFound
	}

	interval := plant.IntervalFor(input.Kind)
	if interval <= 0 {
		return care.LogCareEventOutput{}, care.ErrInvalidInterval
	}

	performedAt := now
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	event, err := uc.repo.CreateCareEvent(ctx, sc, repository.CreateCareEventOptions{
		ID:          uuid.NewString(),
		PlantID:     plant.ID,
		Kind:        input.Kind,
		PerformedAt: performedAt,
		Note:        input.Note,
	})
	if err != nil {
		uc.l.Errorf(ctx, "LogCareEvent: failed to create care event: %v", err)
		return care.LogCareEventOutput{}, err
	}

	task, err := schedule.BuildTask(plant.ID, plant.Name, input.Kind, &event.PerformedAt, interval, now)
	if err != nil {
		return care.LogCareEventOutput{}, err
	}

	if _, refreshErr := uc.suggestions.Refresh(ctx, sc, suggestion.RefreshInput{PlantID: plant.ID, Now: now}); refreshErr != nil {
		uc.l.Warnf(ctx, "LogCareEvent: suggestion refresh failed for plant %s: %v", plant.ID, refreshErr)
	}

	return care.LogCareEventOutput{
		Event:        event,
		Task:         task,
		CalendarLink: uc.tryCreateCareReminder(ctx, plant, task),
	}, nil
}

// tryCreateCareReminder puts the next due date on the configured calendar.
// Returns "" when reminders are disabled or the call fails.
func (uc *implUseCase) tryCreateCareReminder(ctx context.Context, plant model.Plant, task care.CareTask) string {
	if uc.calendar == nil || task.DueAt == nil {
		return ""
	}

	reminder, err := uc.calendar.CreateCareReminder(ctx, gcalendar.ReminderRequest{
		CalendarID: uc.calendarCfg.CalendarID,
		PlantName:  plant.Name,
		Action:     task.Kind.Action(),
		DueAt:      *task.DueAt,
		Note:       fmt.Sprintf("Every %d days", task.IntervalDays),
		Timezone:   uc.calendarCfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "LogCareEvent: failed to create calendar reminder for plant %s: %v", plant.ID, err)
		return ""
	}
	return reminder.HtmlLink
}
