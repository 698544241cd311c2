package usecase

import (
	"context"

	"plant-care-management/internal/care/repository"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock care repository for testing
type mockCareRepo struct {
	getPlantFunc     func(id string) (model.Plant, error)
	listPlantsFunc   func(opt repository.ListPlantsOptions) ([]model.Plant, error)
	setIntervalFunc  func(opt repository.SetIntervalOptions) error
	createEventFunc  func(opt repository.CreateCareEventOptions) (model.CareEvent, error)
	listEventsFunc   func(opt repository.ListCareEventsOptions) ([]model.CareEvent, error)
	latestEventsFunc func(plantIDs []string) ([]model.CareEvent, error)
}

func (m *mockCareRepo) GetPlant(ctx context.Context, sc model.Scope, id string) (model.Plant, error) {
	if m.getPlantFunc == nil {
		return model.Plant{}, nil
	}
	return m.getPlantFunc(id)
}

func (m *mockCareRepo) ListPlants(ctx context.Context, sc model.Scope, opt repository.ListPlantsOptions) ([]model.Plant, error) {
	if m.listPlantsFunc == nil {
		return nil, nil
	}
	return m.listPlantsFunc(opt)
}

func (m *mockCareRepo) SetInterval(ctx context.Context, sc model.Scope, opt repository.SetIntervalOptions) error {
	if m.setIntervalFunc == nil {
		return nil
	}
	return m.setIntervalFunc(opt)
}

func (m *mockCareRepo) CreateCareEvent(ctx context.Context, sc model.Scope, opt repository.CreateCareEventOptions) (model.CareEvent, error) {
	if m.createEventFunc == nil {
		return model.CareEvent{
			ID:          opt.ID,
			PlantID:     opt.PlantID,
			UserID:      sc.UserID,
			Kind:        opt.Kind,
			PerformedAt: opt.PerformedAt,
			Note:        opt.Note,
		}, nil
	}
	return m.createEventFunc(opt)
}

func (m *mockCareRepo) ListCareEvents(ctx context.Context, sc model.Scope, opt repository.ListCareEventsOptions) ([]model.CareEvent, error) {
	if m.listEventsFunc == nil {
		return nil, nil
	}
	return m.listEventsFunc(opt)
}

func (m *mockCareRepo) LatestCareEvents(ctx context.Context, sc model.Scope, plantIDs []string) ([]model.CareEvent, error) {
	if m.latestEventsFunc == nil {
		return nil, nil
	}
	return m.latestEventsFunc(plantIDs)
}

// Mock suggestion usecase for testing
type mockSuggestionUC struct {
	refreshFunc     func(input suggestion.RefreshInput) (suggestion.RefreshOutput, error)
	listPendingFunc func(input suggestion.ListPendingInput) (suggestion.ListPendingOutput, error)
}

func (m *mockSuggestionUC) Refresh(ctx context.Context, sc model.Scope, input suggestion.RefreshInput) (suggestion.RefreshOutput, error) {
	if m.refreshFunc == nil {
		return suggestion.RefreshOutput{}, nil
	}
	return m.refreshFunc(input)
}

func (m *mockSuggestionUC) ListPending(ctx context.Context, sc model.Scope, input suggestion.ListPendingInput) (suggestion.ListPendingOutput, error) {
	if m.listPendingFunc == nil {
		return suggestion.ListPendingOutput{}, nil
	}
	return m.listPendingFunc(input)
}

func (m *mockSuggestionUC) Accept(ctx context.Context, sc model.Scope, id string) (suggestion.AppliedIntervalChange, error) {
	return suggestion.AppliedIntervalChange{}, nil
}

func (m *mockSuggestionUC) Dismiss(ctx context.Context, sc model.Scope, id string) (suggestion.DismissalRecord, error) {
	return suggestion.DismissalRecord{}, nil
}
