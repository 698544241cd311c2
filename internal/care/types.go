package care

import (
	"time"

	"plant-care-management/internal/model"
)

// TaskStatus is the urgency category of a recurring care task.
type TaskStatus string

const (
	// StatusUnknown means the care action was never logged for the plant.
	StatusUnknown TaskStatus = "unknown"
	StatusOverdue TaskStatus = "overdue"
	StatusDue     TaskStatus = "due"
	// StatusOK is the non-urgent category; only OK tasks are eligible for
	// the upcoming window.
	StatusOK TaskStatus = "ok"
)

// CareTask is one recurring obligation for one plant and one care kind.
// Status and DueAt are derived from LastPerformedAt, IntervalDays and the
// evaluation instant; tasks are rebuilt on every read and never stored.
type CareTask struct {
	PlantID         string
	PlantName       string
	Kind            model.CareKind
	IntervalDays    int
	LastPerformedAt *time.Time
	DueAt           *time.Time
	Status          TaskStatus
}

// UpcomingEntry pairs a task with its days-until-due for the week-ahead view.
type UpcomingEntry struct {
	Task         CareTask
	DaysUntilDue int
}

// PlantTasks groups the classified tasks of one plant.
// A nil task means the care kind is not tracked for the plant.
type PlantTasks struct {
	PlantID     string
	PlantName   string
	TypeName    string
	Watering    *CareTask
	Fertilizing *CareTask
}

// --- UseCase Inputs ---

// DashboardInput controls the dashboard read. Now is the evaluation instant;
// zero means the current wall clock.
type DashboardInput struct {
	Now         time.Time
	HorizonDays int
	Limit       int
}

type LogCareEventInput struct {
	PlantID     string
	Kind        model.CareKind
	PerformedAt *time.Time // nil means now
	Note        string
	Now         time.Time
}

// --- UseCase Outputs ---

type UpcomingOutput struct {
	Entries      []UpcomingEntry
	TotalMatched int
}

type DashboardSummary struct {
	PlantCount    int
	OverdueCount  int
	DueTodayCount int
	UpcomingCount int
}

type DashboardOutput struct {
	Tasks       []PlantTasks
	Upcoming    UpcomingOutput
	Suggestions []PendingSuggestion
	Summary     DashboardSummary
	EvaluatedAt time.Time
}

// PendingSuggestion is the dashboard's read model of an open schedule
// suggestion, kept minimal so the care domain does not depend on the
// suggestion engine internals.
type PendingSuggestion struct {
	ID                    string
	PlantID               string
	PlantName             string
	Kind                  model.CareKind
	CurrentIntervalDays   int
	SuggestedIntervalDays int
	ConfidenceScore       *float64
}

type LogCareEventOutput struct {
	Event        model.CareEvent
	Task         CareTask
	CalendarLink string
}
