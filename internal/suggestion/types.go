package suggestion

import (
	"time"

	"plant-care-management/internal/model"
)

// State is the lifecycle state of a schedule suggestion. A suggestion
// transitions exactly once from pending to accepted or dismissed.
type State string

const (
	StatePending   State = "pending"
	StateAccepted  State = "accepted"
	StateDismissed State = "dismissed"
)

// ScheduleSuggestion proposes an interval change for one plant/care-kind pair.
// Immutable once created except State and ResolvedAt.
type ScheduleSuggestion struct {
	ID                    string
	PlantID               string
	PlantName             string
	UserID                string
	Kind                  model.CareKind
	CurrentIntervalDays   int
	SuggestedIntervalDays int
	// ConfidenceScore is in [0,1]; nil means no estimate is available,
	// which is distinct from a low score.
	ConfidenceScore *float64
	State           State
	DetectedAt      time.Time
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}

// Analysis is the outcome of examining a care history against the configured
// interval.
type Analysis struct {
	ShouldSuggest  bool
	SuggestedDays  int
	Confidence     *float64
	MedianInterval int
	DataPointsUsed int
}

// AppliedIntervalChange instructs the plant configuration store to update
// the configured interval after an accept.
type AppliedIntervalChange struct {
	PlantID         string
	Kind            model.CareKind
	NewIntervalDays int
}

// DismissalRecord captures a dismissed proposal so the same value is not
// re-proposed during the cooldown window.
type DismissalRecord struct {
	PlantID               string
	Kind                  model.CareKind
	SuggestedIntervalDays int
	DismissedAt           time.Time
}

// --- UseCase Inputs/Outputs ---

// RefreshInput re-analyzes history for one plant, or all of the user's
// plants when PlantID is empty. Now zero means the current wall clock.
type RefreshInput struct {
	PlantID string
	Now     time.Time
}

type RefreshOutput struct {
	Created []ScheduleSuggestion
}

// DefaultPendingLimit caps the dashboard suggestion list.
const DefaultPendingLimit = 5

type ListPendingInput struct {
	Limit int
}

type ListPendingOutput struct {
	Suggestions []ScheduleSuggestion
	Count       int
}
