package usecase

import (
	"context"

	careRepo "plant-care-management/internal/care/repository"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
	"plant-care-management/internal/suggestion/repository"
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

// Mock suggestion repository for testing
type mockSuggestionRepo struct {
	createFunc          func(opt repository.CreateSuggestionOptions) (suggestion.ScheduleSuggestion, error)
	getFunc             func(id string) (suggestion.ScheduleSuggestion, error)
	listFunc            func(opt repository.ListSuggestionsOptions) ([]suggestion.ScheduleSuggestion, error)
	resolveFunc         func(opt repository.ResolveSuggestionOptions) (bool, error)
	recentDismissalFunc func(opt repository.DismissalLookupOptions) (bool, error)
}

func (m *mockSuggestionRepo) CreateSuggestion(ctx context.Context, sc model.Scope, opt repository.CreateSuggestionOptions) (suggestion.ScheduleSuggestion, error) {
	if m.createFunc == nil {
		return suggestion.ScheduleSuggestion{}, nil
	}
	return m.createFunc(opt)
}

func (m *mockSuggestionRepo) GetSuggestion(ctx context.Context, sc model.Scope, id string) (suggestion.ScheduleSuggestion, error) {
	if m.getFunc == nil {
		return suggestion.ScheduleSuggestion{}, nil
	}
	return m.getFunc(id)
}

func (m *mockSuggestionRepo) ListSuggestions(ctx context.Context, sc model.Scope, opt repository.ListSuggestionsOptions) ([]suggestion.ScheduleSuggestion, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(opt)
}

func (m *mockSuggestionRepo) ResolveSuggestion(ctx context.Context, sc model.Scope, opt repository.ResolveSuggestionOptions) (bool, error) {
	if m.resolveFunc == nil {
		return true, nil
	}
	return m.resolveFunc(opt)
}

func (m *mockSuggestionRepo) HasRecentDismissal(ctx context.Context, sc model.Scope, opt repository.DismissalLookupOptions) (bool, error) {
	if m.recentDismissalFunc == nil {
		return false, nil
	}
	return m.recentDismissalFunc(opt)
}

// Mock care repository for testing
type mockCareRepo struct {
	getPlantFunc     func(id string) (model.Plant, error)
	listPlantsFunc   func(opt careRepo.ListPlantsOptions) ([]model.Plant, error)
	setIntervalFunc  func(opt careRepo.SetIntervalOptions) error
	listEventsFunc   func(opt careRepo.ListCareEventsOptions) ([]model.CareEvent, error)
	latestEventsFunc func(plantIDs []string) ([]model.CareEvent, error)
	createEventFunc  func(opt careRepo.CreateCareEventOptions) (model.CareEvent, error)
}

func (m *mockCareRepo) GetPlant(ctx context.Context, sc model.Scope, id string) (model.Plant, error) {
	if m.getPlantFunc == nil {
		return model.Plant{}, nil
	}
	return m.getPlantFunc(id)
}

func (m *mockCareRepo) ListPlants(ctx context.Context, sc model.Scope, opt careRepo.ListPlantsOptions) ([]model.Plant, error) {
	if m.listPlantsFunc == nil {
		return nil, nil
	}
	return m.listPlantsFunc(opt)
}

func (m *mockCareRepo) SetInterval(ctx context.Context, sc model.Scope, opt careRepo.SetIntervalOptions) error {
	if m.setIntervalFunc == nil {
		return nil
	}
	return m.setIntervalFunc(opt)
}

func (m *mockCareRepo) CreateCareEvent(ctx context.Context, sc model.Scope, opt careRepo.CreateCareEventOptions) (model.CareEvent, error) {
	if m.createEventFunc == nil {
		return model.CareEvent{}, nil
	}
	return m.createEventFunc(opt)
}

func (m *mockCareRepo) ListCareEvents(ctx context.Context, sc model.Scope, opt careRepo.ListCareEventsOptions) ([]model.CareEvent, error) {
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
