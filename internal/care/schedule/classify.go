package schedule

import (
	"time"

	"plant-care-management/internal/care"
	"plant-care-management/internal/model"
	"plant-care-management/pkg/daymath"
)

// Classify derives the status and due timestamp of a care task from its last
// occurrence and configured interval, evaluated at now. Day granularity:
// a due date later today is Due, not OK.
func Classify(lastPerformedAt *time.Time, intervalDays int, now time.Time) (care.TaskStatus, *time.Time, error) {
	if intervalDays <= 0 {
		return "", nil, care.ErrInvalidInterval
	}

	if lastPerformedAt == nil {
		return care.StatusUnknown, nil, nil
	}

	dueAt := daymath.AddDays(*lastPerformedAt, intervalDays)
	switch d := daymath.DaysUntil(now, dueAt); {
	case d < 0:
		return care.StatusOverdue, &dueAt, nil
	case d == 0:
		return care.StatusDue, &dueAt, nil
	default:
		return care.StatusOK, &dueAt, nil
	}
}

// BuildTask classifies a task and assembles the read model in one step.
func BuildTask(plantID, plantName string, kind model.CareKind, lastPerformedAt *time.Time, intervalDays int, now time.Time) (care.CareTask, error) {
	status, dueAt, err := Classify(lastPerformedAt, intervalDays, now)
	if err != nil {
		return care.CareTask{}, err
	}
	return care.CareTask{
		PlantID:         plantID,
		PlantName:       plantName,
		Kind:            kind,
		IntervalDays:    intervalDays,
		LastPerformedAt: lastPerformedAt,
		DueAt:           dueAt,
		Status:          status,
	}, nil
}
