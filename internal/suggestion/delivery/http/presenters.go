package http

import (
	"time"

	"plant-care-management/internal/suggestion"
)

// --- Request DTOs ---

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() suggestion.ListPendingInput {
	return suggestion.ListPendingInput{Limit: r.Limit}
}

// ---

type refreshReq struct {
	PlantID string `json:"plant_id"`
}

func (r refreshReq) validate() error { return nil }

func (r refreshReq) toInput() suggestion.RefreshInput {
	return suggestion.RefreshInput{PlantID: r.PlantID}
}

// --- Response DTOs ---

type suggestionResp struct {
	ID                    string     `json:"id"`
	PlantID               string     `json:"plant_id"`
	PlantName             string     `json:"plant_name"`
	Kind                  string     `json:"kind"`
	CurrentIntervalDays   int        `json:"current_interval_days"`
	SuggestedIntervalDays int        `json:"suggested_interval_days"`
	ConfidenceScore       *float64   `json:"confidence_score"`
	State                 string     `json:"state"`
	DetectedAt            time.Time  `json:"detected_at"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
}

func newSuggestionResp(s suggestion.ScheduleSuggestion) suggestionResp {
	return suggestionResp{
		ID:                    s.ID,
		PlantID:               s.PlantID,
		PlantName:             s.PlantName,
		Kind:                  string(s.Kind),
		CurrentIntervalDays:   s.CurrentIntervalDays,
		SuggestedIntervalDays: s.SuggestedIntervalDays,
		ConfidenceScore:       s.ConfidenceScore,
		State:                 string(s.State),
		DetectedAt:            s.DetectedAt,
		ResolvedAt:            s.ResolvedAt,
	}
}

type listResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Count       int              `json:"count"`
}

func (h *handler) newListResp(out suggestion.ListPendingOutput) listResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = newSuggestionResp(s)
	}
	return listResp{
		Suggestions: suggestions,
		Count:       out.Count,
	}
}

type refreshResp struct {
	Created []suggestionResp `json:"created"`
	Count   int              `json:"count"`
}

func (h *handler) newRefreshResp(out suggestion.RefreshOutput) refreshResp {
	created := make([]suggestionResp, len(out.Created))
	for i, s := range out.Created {
		created[i] = newSuggestionResp(s)
	}
	return refreshResp{
		Created: created,
		Count:   len(created),
	}
}

type acceptResp struct {
	PlantID         string `json:"plant_id"`
	Kind            string `json:"kind"`
	NewIntervalDays int    `json:"new_interval_days"`
}

func (h *handler) newAcceptResp(out suggestion.AppliedIntervalChange) acceptResp {
	return acceptResp{
		PlantID:         out.PlantID,
		Kind:            string(out.Kind),
		NewIntervalDays: out.NewIntervalDays,
	}
}

type dismissResp struct {
	PlantID               string    `json:"plant_id"`
	Kind                  string    `json:"kind"`
	SuggestedIntervalDays int       `json:"suggested_interval_days"`
	DismissedAt           time.Time `json:"dismissed_at"`
}

func (h *handler) newDismissResp(out suggestion.DismissalRecord) dismissResp {
	return dismissResp{
		PlantID:               out.PlantID,
		Kind:                  string(out.Kind),
		SuggestedIntervalDays: out.SuggestedIntervalDays,
		DismissedAt:           out.DismissedAt,
	}
}
