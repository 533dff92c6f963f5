package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/api/handler"
	"github.com/trungle-dev/content-planner/internal/domain"
	"github.com/trungle-dev/content-planner/internal/service"
)

// stubContentStore serves canned items for handler tests
type stubContentStore struct {
	items []domain.ContentItem
}

func (s *stubContentStore) Create(ctx context.Context, item *domain.ContentItem) error { return nil }
func (s *stubContentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	return nil, nil
}
func (s *stubContentStore) List(ctx context.Context, workspaceID *uuid.UUID) ([]domain.ContentItem, error) {
	return s.items, nil
}
func (s *stubContentStore) Update(ctx context.Context, id uuid.UUID, update *domain.ContentUpdate) error {
	return nil
}
func (s *stubContentStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubContentStore) CountAll(ctx context.Context) (int, error)      { return len(s.items), nil }
func (s *stubContentStore) CountByStatus(ctx context.Context, status domain.ContentStatus) (int, error) {
	return 0, nil
}
func (s *stubContentStore) GroupByStage(ctx context.Context) (map[domain.FunnelStage]int, error) {
	return map[domain.FunnelStage]int{}, nil
}
func (s *stubContentStore) Recent(ctx context.Context, limit int) ([]domain.ContentItem, error) {
	return nil, nil
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}

	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

func newCalendarRouter(store *stubContentStore) http.Handler {
	h := handler.NewCalendarHandler(service.NewCalendarService(store))
	r := chi.NewRouter()
	r.Get("/calendar/{year}/{month}", h.Month)
	return r
}

func TestCalendarHandler_Month(t *testing.T) {
	store := &stubContentStore{items: []domain.ContentItem{
		{
			ID:            uuid.New(),
			Title:         "Bài tháng 12",
			FunnelStage:   domain.StageAwareness,
			ScheduledDate: time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC),
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/calendar/2025/12", nil)
	rec := httptest.NewRecorder()
	newCalendarRouter(store).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response struct {
		Success bool              `json:"success"`
		Data    service.MonthView `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !response.Success {
		t.Error("expected success to be true")
	}
	if response.Data.Year != 2025 || response.Data.Month != 12 {
		t.Errorf("expected 2025-12, got %d-%d", response.Data.Year, response.Data.Month)
	}
	if len(response.Data.Cells)%7 != 0 {
		t.Errorf("expected a whole number of weeks, got %d cells", len(response.Data.Cells))
	}
	if len(response.Data.ItemsByDate["2025-12-05"]) != 1 {
		t.Error("expected the scheduled item bucketed under its date")
	}
	if len(response.Data.Holidays) == 0 {
		t.Error("expected December holidays in the view")
	}
}

func TestCalendarHandler_Month_InvalidParams(t *testing.T) {
	router := newCalendarRouter(&stubContentStore{})

	tests := []struct {
		name string
		path string
	}{
		{"non-numeric month", "/calendar/2025/abc"},
		{"month out of range", "/calendar/2025/13"},
		{"year out of range", "/calendar/1900/5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}
