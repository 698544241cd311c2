package repository

import (
	"context"

	"plant-care-management/internal/model"
)

// Repository is the composed interface for the care domain data store.
type Repository interface {
	PlantRepository
	CareEventRepository
}

// PlantRepository defines data access for plants and their configured
// care intervals.
type PlantRepository interface {
	// GetPlant returns the zero value (ID == "") when not found.
	GetPlant(ctx context.Context, sc model.Scope, id string) (model.Plant, error)
	ListPlants(ctx context.Context, sc model.Scope, opt ListPlantsOptions) ([]model.Plant, error)
	// SetInterval updates the configured interval for one care kind.
	SetInterval(ctx context.Context, sc model.Scope, opt SetIntervalOptions) error
}

// CareEventRepository defines data access for the care history.
type CareEventRepository interface {
	CreateCareEvent(ctx context.Context, sc model.Scope, opt CreateCareEventOptions) (model.CareEvent, error)
	// ListCareEvents returns a plant's history ordered ascending by time.
	ListCareEvents(ctx context.Context, sc model.Scope, opt ListCareEventsOptions) ([]model.CareEvent, error)
	// LatestCareEvents returns the most recent event per (plant, kind) for
	// the given plants.
	LatestCareEvents(ctx context.Context, sc model.Scope, plantIDs []string) ([]model.CareEvent, error)
}
