package repository

import (
	"time"

	"plant-care-management/internal/model"
)

// ListPlantsOptions holds filter parameters for listing plants.
type ListPlantsOptions struct {
	ActiveOnly bool
}

// SetIntervalOptions holds parameters for updating one configured interval.
type SetIntervalOptions struct {
	PlantID      string
	Kind         model.CareKind
	IntervalDays int
}

// CreateCareEventOptions holds parameters for inserting a care event.
type CreateCareEventOptions struct {
	ID          string
	PlantID     string
	Kind        model.CareKind
	PerformedAt time.Time
	Note        string
}

// ListCareEventsOptions holds filter parameters for reading care history.
type ListCareEventsOptions struct {
	PlantID string
	Kind    model.CareKind
	Limit   int
}
