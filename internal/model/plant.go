package model

import "time"

// CareKind is the kind of recurring care a plant receives.
type CareKind string

const (
	CareKindWatering    CareKind = "watering"
	CareKindFertilizing CareKind = "fertilizing"
)

// Valid reports whether k is a known care kind.
func (k CareKind) Valid() bool {
	return k == CareKindWatering || k == CareKindFertilizing
}

// Action is the verb form used in reminders and messages.
func (k CareKind) Action() string {
	if k == CareKindFertilizing {
		return "Fertilize"
	}
	return "Water"
}

// Plant is a tracked plant with its configured care intervals.
// Interval fields are 0 when the care kind is not tracked for the plant.
type Plant struct {
	ID                      string
	UserID                  string
	Name                    string
	TypeName                string
	WateringIntervalDays    int
	FertilizingIntervalDays int
	IsActive                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IntervalFor returns the configured interval for the given care kind.
func (p Plant) IntervalFor(kind CareKind) int {
	if kind == CareKindFertilizing {
		return p.FertilizingIntervalDays
	}
	return p.WateringIntervalDays
}

// CareEvent is a timestamped record that a care action occurred.
type CareEvent struct {
	ID          string
	PlantID     string
	UserID      string
	Kind        CareKind
	PerformedAt time.Time
	Note        string
	CreatedAt   time.Time
}
