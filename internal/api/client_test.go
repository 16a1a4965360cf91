package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pvernier/macrolog/internal/domain"
	"github.com/pvernier/macrolog/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, logger.New(logger.LevelOff, nil))
}

func TestToday(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/logs/today" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.DailyLog{
			Date:          "2024-01-01",
			TotalCalories: 1850,
			Meals: []domain.Meal{
				{Name: "breakfast", Items: []domain.FoodItem{
					{DataID: "a1", Name: "greek yogurt", Weight: 100, Calories: 120},
				}},
			},
		})
	})

	log, err := c.Today(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Date != "2024-01-01" {
		t.Fatalf("date = %q", log.Date)
	}
	if log.ItemCount() != 1 {
		t.Fatalf("item count = %d, want 1", log.ItemCount())
	}
	if log.Meals[0].Items[0].DataID != "a1" {
		t.Fatalf("data id = %q", log.Meals[0].Items[0].DataID)
	}
}

func TestTodayNull(t *testing.T) {
	// The backend returns JSON null when nothing is logged today; the
	// client must hand back an empty log for the current date, not nil.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	log, err := c.Today(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log == nil {
		t.Fatal("got nil log")
	}
	if !log.Empty() {
		t.Fatal("expected empty log")
	}
	if log.Date != domain.Today() {
		t.Fatalf("date = %q, want today", log.Date)
	}
}

func TestAll(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logs/all" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]domain.DailyLog{
			{Date: "2024-01-01"}, {Date: "2024-01-02"},
		})
	})

	logs, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("len = %d, want 2", len(logs))
	}
}

func TestSubmit(t *testing.T) {
	var got domain.NewEntry
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/logs/new_entry" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"message":"ok"}`))
	})

	entry := domain.NewEntry{Meal: "lunch", Date: "2024-01-02", FoodName: "rice", Weight: 180}
	if err := c.Submit(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != entry {
		t.Fatalf("server saw %+v, want %+v", got, entry)
	}
}

func TestSubmitFieldAlias(t *testing.T) {
	// The backend expects the food name under "food-name".
	var raw map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		w.Write([]byte(`{}`))
	})

	c.Submit(context.Background(), domain.NewEntry{FoodName: "rice"})
	if raw["food-name"] != "rice" {
		t.Fatalf(`body lacks "food-name": %v`, raw)
	}
}

func TestSubmitValidationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"no match found for query dragonfruit pizza"}`))
	})

	err := c.Submit(context.Background(), domain.NewEntry{FoodName: "dragonfruit pizza"})
	ve := domain.AsValidation(err)
	if ve == nil {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Detail != "no match found for query dragonfruit pizza" {
		t.Fatalf("detail = %q", ve.Detail)
	}
}

func TestDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/logs/delete_entry/a1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := c.Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServerErrorWithoutDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	err := c.Delete(context.Background(), "a1")
	if err == nil {
		t.Fatal("expected error")
	}
	if domain.AsValidation(err) != nil {
		t.Fatal("plain 500 must not be a ValidationError")
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	c := NewClient(url, logger.New(logger.LevelOff, nil))
	if _, err := c.Today(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestDecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := c.All(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		t.Fatal("decode failure must not be a ValidationError")
	}
}
