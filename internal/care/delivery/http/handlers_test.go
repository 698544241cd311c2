package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"plant-care-management/config"
	"plant-care-management/internal/care"
	"plant-care-management/internal/middleware"
	"plant-care-management/internal/model"
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

// Mock care usecase for testing
type mockCareUC struct {
	dashboardFunc func(sc model.Scope, input care.DashboardInput) (care.DashboardOutput, error)
	logEventFunc  func(sc model.Scope, input care.LogCareEventInput) (care.LogCareEventOutput, error)
}

func (m *mockCareUC) Dashboard(ctx context.Context, sc model.Scope, input care.DashboardInput) (care.DashboardOutput, error) {
	if m.dashboardFunc == nil {
		return care.DashboardOutput{}, nil
	}
	return m.dashboardFunc(sc, input)
}

func (m *mockCareUC) LogCareEvent(ctx context.Context, sc model.Scope, input care.LogCareEventInput) (care.LogCareEventOutput, error) {
	if m.logEventFunc == nil {
		return care.LogCareEventOutput{}, nil
	}
	return m.logEventFunc(sc, input)
}

func newTestRouter(uc care.UseCase, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Auth.DefaultUserID = "default"
	}
	router := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(router.Group("/api/v1"), h, middleware.New(&mockLogger{}, cfg))
	return router
}

func TestDashboardHandler(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	t.Run("passes query parameters and scope through", func(t *testing.T) {
		var gotScope model.Scope
		var gotInput care.DashboardInput
		uc := &mockCareUC{
			dashboardFunc: func(sc model.Scope, input care.DashboardInput) (care.DashboardOutput, error) {
				gotScope = sc
				gotInput = input
				return care.DashboardOutput{
					Summary:     care.DashboardSummary{PlantCount: 2},
					EvaluatedAt: input.Now,
				}, nil
			},
		}

		router := newTestRouter(uc, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?at=2026-08-10T12:00:00Z&horizon_days=14&limit=3", nil)
		req.Header.Set("X-User-ID", "user-7")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if gotScope.UserID != "user-7" {
			t.Errorf("scope user = %q, want user-7", gotScope.UserID)
		}
		if !gotInput.Now.Equal(now) || gotInput.HorizonDays != 14 || gotInput.Limit != 3 {
			t.Errorf("unexpected input: %+v", gotInput)
		}

		var body struct {
			Message string `json:"message"`
			Data    struct {
				Summary struct {
					PlantCount int `json:"plant_count"`
				} `json:"summary"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.Data.Summary.PlantCount != 2 {
			t.Errorf("plant count = %d, want 2", body.Data.Summary.PlantCount)
		}
	})

	t.Run("renders due dates without a time component", func(t *testing.T) {
		dueAt := time.Date(2026, 8, 13, 12, 0, 0, 0, time.UTC)
		uc := &mockCareUC{
			dashboardFunc: func(sc model.Scope, input care.DashboardInput) (care.DashboardOutput, error) {
				return care.DashboardOutput{
					Tasks: []care.PlantTasks{
						{
							PlantID:   "p-1",
							PlantName: "Monstera",
							Watering: &care.CareTask{
								PlantID:      "p-1",
								PlantName:    "Monstera",
								Kind:         model.CareKindWatering,
								IntervalDays: 7,
								DueAt:        &dueAt,
								Status:       care.StatusOK,
							},
						},
					},
					Summary:     care.DashboardSummary{PlantCount: 1},
					EvaluatedAt: now,
				}, nil
			},
		}

		router := newTestRouter(uc, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"due_at":"2026-08-13"`) {
			t.Errorf("due_at not rendered as a calendar date: %s", w.Body.String())
		}
	})

	t.Run("rejects a malformed evaluation instant", func(t *testing.T) {
		router := newTestRouter(&mockCareUC{}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?at=tomorrow", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("anonymous requests fall back to the default user", func(t *testing.T) {
		var gotScope model.Scope
		uc := &mockCareUC{
			dashboardFunc: func(sc model.Scope, input care.DashboardInput) (care.DashboardOutput, error) {
				gotScope = sc
				return care.DashboardOutput{}, nil
			},
		}

		router := newTestRouter(uc, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if gotScope.UserID != "default" {
			t.Errorf("scope user = %q, want default", gotScope.UserID)
		}
	})
}

func TestLogCareEventHandler(t *testing.T) {
	t.Run("logs an event", func(t *testing.T) {
		var gotInput care.LogCareEventInput
		uc := &mockCareUC{
			logEventFunc: func(sc model.Scope, input care.LogCareEventInput) (care.LogCareEventOutput, error) {
				gotInput = input
				return care.LogCareEventOutput{
					Event: model.CareEvent{ID: "evt-1", PlantID: input.PlantID, Kind: input.Kind},
					Task:  care.CareTask{PlantID: input.PlantID, Kind: input.Kind, Status: care.StatusOK},
				}, nil
			},
		}

		router := newTestRouter(uc, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plants/p-1/care-events",
			strings.NewReader(`{"kind":"watering","note":"bottom watered"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if gotInput.PlantID != "p-1" || gotInput.Kind != model.CareKindWatering || gotInput.Note != "bottom watered" {
			t.Errorf("unexpected input: %+v", gotInput)
		}
		if gotInput.PerformedAt != nil {
			t.Error("performed_at must stay nil when omitted")
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		router := newTestRouter(&mockCareUC{}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plants/p-1/care-events",
			strings.NewReader(`{"kind":"pruning"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("maps a missing plant to 404", func(t *testing.T) {
		uc := &mockCareUC{
			logEventFunc: func(sc model.Scope, input care.LogCareEventInput) (care.LogCareEventOutput, error) {
				return care.LogCareEventOutput{}, care.ErrPlantNotFound
			},
		}

		router := newTestRouter(uc, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plants/missing/care-events",
			strings.NewReader(`{"kind":"watering"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("requires the API token when configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Auth.APIToken = "secret"
		cfg.Auth.DefaultUserID = "default"
		router := newTestRouter(&mockCareUC{}, cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plants/p-1/care-events",
			strings.NewReader(`{"kind":"watering"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status without token = %d, want 401", w.Code)
		}

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/api/v1/plants/p-1/care-events",
			strings.NewReader(`{"kind":"watering"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer secret")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status with token = %d, want 200", w.Code)
		}
	})
}
