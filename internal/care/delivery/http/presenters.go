package http

import (
	"time"

	"plant-care-management/internal/care"
	"plant-care-management/internal/model"
	"plant-care-management/pkg/daymath"
	pkgErrors "plant-care-management/pkg/errors"
	"plant-care-management/pkg/response"
)

// --- Request DTOs ---

type dashboardReq struct {
	At          string `form:"at"`
	HorizonDays int    `form:"horizon_days"`
	Limit       int    `form:"limit"`
}

func (r dashboardReq) validate() error {
	if r.At != "" {
		if _, err := time.Parse(time.RFC3339, r.At); err != nil {
			return pkgErrors.NewHTTPError(400, "at must be an RFC3339 timestamp")
		}
	}
	if r.HorizonDays < 0 || r.Limit < 0 {
		return pkgErrors.NewHTTPError(400, "horizon_days and limit must not be negative")
	}
	return nil
}

func (r dashboardReq) toInput() care.DashboardInput {
	input := care.DashboardInput{
		HorizonDays: r.HorizonDays,
		Limit:       r.Limit,
	}
	if r.At != "" {
		input.Now, _ = time.Parse(time.RFC3339, r.At)
	}
	return input
}

// ---

type logCareEventReq struct {
	PlantID     string `json:"-"` // populated from URI param
	Kind        string `json:"kind"         binding:"required"`
	PerformedAt string `json:"performed_at" binding:"omitempty"`
	Note        string `json:"note"         binding:"max=1000"`
}

func (r logCareEventReq) validate() error {
	if !model.CareKind(r.Kind).Valid() {
		return pkgErrors.NewHTTPError(400, "kind must be watering or fertilizing")
	}
	if r.PerformedAt != "" {
		if _, err := time.Parse(time.RFC3339, r.PerformedAt); err != nil {
			return pkgErrors.NewHTTPError(400, "performed_at must be an RFC3339 timestamp")
		}
	}
	return nil
}

func (r logCareEventReq) toInput() care.LogCareEventInput {
	input := care.LogCareEventInput{
		PlantID: r.PlantID,
		Kind:    model.CareKind(r.Kind),
		Note:    r.Note,
	}
	if r.PerformedAt != "" {
		at, _ := time.Parse(time.RFC3339, r.PerformedAt)
		input.PerformedAt = &at
	}
	return input
}

// --- Response DTOs ---

type careTaskResp struct {
	PlantID       string         `json:"plant_id"`
	PlantName     string         `json:"plant_name"`
	Kind          string         `json:"kind"`
	IntervalDays  int            `json:"interval_days"`
	LastPerformed *time.Time     `json:"last_performed_at"`
	LastCareLabel string         `json:"last_care_label"`
	DueAt         *response.Date `json:"due_at"`
	Status        string         `json:"status"`
}

func newCareTaskResp(task care.CareTask, now time.Time) careTaskResp {
	return careTaskResp{
		PlantID:       task.PlantID,
		PlantName:     task.PlantName,
		Kind:          string(task.Kind),
		IntervalDays:  task.IntervalDays,
		LastPerformed: task.LastPerformedAt,
		LastCareLabel: daymath.FormatTimeAgo(task.LastPerformedAt, now),
		DueAt:         newDueDate(task.DueAt),
		Status:        string(task.Status),
	}
}

func newDueDate(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}

type plantTasksResp struct {
	PlantID     string        `json:"plant_id"`
	PlantName   string        `json:"plant_name"`
	TypeName    string        `json:"type_name,omitempty"`
	Watering    *careTaskResp `json:"watering,omitempty"`
	Fertilizing *careTaskResp `json:"fertilizing,omitempty"`
}

type upcomingEntryResp struct {
	Task         careTaskResp `json:"task"`
	DaysUntilDue int          `json:"days_until_due"`
}

type upcomingResp struct {
	Entries      []upcomingEntryResp `json:"entries"`
	TotalMatched int                 `json:"total_matched"`
	MoreCount    int                 `json:"more_count"`
}

type suggestionResp struct {
	ID                    string   `json:"id"`
	PlantID               string   `json:"plant_id"`
	PlantName             string   `json:"plant_name"`
	Kind                  string   `json:"kind"`
	CurrentIntervalDays   int      `json:"current_interval_days"`
	SuggestedIntervalDays int      `json:"suggested_interval_days"`
	ConfidenceScore       *float64 `json:"confidence_score"`
}

type summaryResp struct {
	PlantCount    int `json:"plant_count"`
	OverdueCount  int `json:"overdue_count"`
	DueTodayCount int `json:"due_today_count"`
	UpcomingCount int `json:"upcoming_count"`
}

type dashboardResp struct {
	Tasks       []plantTasksResp `json:"tasks"`
	Upcoming    upcomingResp     `json:"upcoming"`
	Suggestions []suggestionResp `json:"suggestions"`
	Summary     summaryResp      `json:"summary"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

func (h *handler) newDashboardResp(out care.DashboardOutput) dashboardResp {
	now := out.EvaluatedAt

	tasks := make([]plantTasksResp, len(out.Tasks))
	for i, pt := range out.Tasks {
		resp := plantTasksResp{
			PlantID:   pt.PlantID,
			PlantName: pt.PlantName,
			TypeName:  pt.TypeName,
		}
		if pt.Watering != nil {
			watering := newCareTaskResp(*pt.Watering, now)
			resp.Watering = &watering
		}
		if pt.Fertilizing != nil {
			fertilizing := newCareTaskResp(*pt.Fertilizing, now)
			resp.Fertilizing = &fertilizing
		}
		tasks[i] = resp
	}

	entries := make([]upcomingEntryResp, len(out.Upcoming.Entries))
	for i, entry := range out.Upcoming.Entries {
		entries[i] = upcomingEntryResp{
			Task:         newCareTaskResp(entry.Task, now),
			DaysUntilDue: entry.DaysUntilDue,
		}
	}

	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = suggestionResp{
			ID:                    s.ID,
			PlantID:               s.PlantID,
			PlantName:             s.PlantName,
			Kind:                  string(s.Kind),
			CurrentIntervalDays:   s.CurrentIntervalDays,
			SuggestedIntervalDays: s.SuggestedIntervalDays,
			ConfidenceScore:       s.ConfidenceScore,
		}
	}

	return dashboardResp{
		Tasks: tasks,
		Upcoming: upcomingResp{
			Entries:      entries,
			TotalMatched: out.Upcoming.TotalMatched,
			MoreCount:    out.Upcoming.TotalMatched - len(entries),
		},
		Suggestions: suggestions,
		Summary: summaryResp{
			PlantCount:    out.Summary.PlantCount,
			OverdueCount:  out.Summary.OverdueCount,
			DueTodayCount: out.Summary.DueTodayCount,
			UpcomingCount: out.Summary.UpcomingCount,
		},
		EvaluatedAt: out.EvaluatedAt,
	}
}

type careEventResp struct {
	ID          string    `json:"id"`
	PlantID     string    `json:"plant_id"`
	Kind        string    `json:"kind"`
	PerformedAt time.Time `json:"performed_at"`
	Note        string    `json:"note,omitempty"`
}

type logCareEventResp struct {
	Event        careEventResp `json:"event"`
	Task         careTaskResp  `json:"task"`
	CalendarLink string        `json:"calendar_link,omitempty"`
}

func (h *handler) newLogCareEventResp(out care.LogCareEventOutput) logCareEventResp {
	return logCareEventResp{
		Event: careEventResp{
			ID:          out.Event.ID,
			PlantID:     out.Event.PlantID,
			Kind:        string(out.Event.Kind),
			PerformedAt: out.Event.PerformedAt,
			Note:        out.Event.Note,
		},
		Task:         newCareTaskResp(out.Task, time.Now().UTC()),
		CalendarLink: out.CalendarLink,
	}
}
