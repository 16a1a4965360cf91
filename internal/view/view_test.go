package view

import (
	"reflect"
	"testing"

	"github.com/pvernier/macrolog/internal/domain"
)

func TestSummary(t *testing.T) {
	log := &domain.DailyLog{
		Date:          "2024-01-01",
		TotalCalories: 1850,
		TotalProtein:  90.4,
		TotalCarbs:    210.6,
		TotalFat:      55.5,
		Meals: []domain.Meal{
			{Name: "breakfast", Items: []domain.FoodItem{
				{DataID: "a1", Name: "greek yogurt", Weight: 100, Calories: 120},
			}},
		},
	}

	want := []SummaryRow{
		{Label: "calories (kcal)", Value: "1850"},
		{Label: "protein", Value: "90g"},
		{Label: "carbs", Value: "211g"},
		{Label: "fat", Value: "56g"},
	}
	if got := Summary(log); !reflect.DeepEqual(got, want) {
		t.Fatalf("Summary() = %v, want %v", got, want)
	}
}

func TestSummaryEmptyLog(t *testing.T) {
	tests := []struct {
		name string
		log  *domain.DailyLog
	}{
		{"no meals", domain.EmptyLog("2024-01-01")},
		// Totals may be stale on the wire; zero items still means empty.
		{"meals without items", &domain.DailyLog{
			TotalCalories: 500,
			Meals:         []domain.Meal{{Name: "lunch"}, {Name: "dinner"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rows := Summary(tt.log); rows != nil {
				t.Fatalf("expected nil rows, got %v", rows)
			}
			if rows := Detail(tt.log); rows != nil {
				t.Fatalf("expected nil detail rows, got %v", rows)
			}
		})
	}
}

func TestDetailGrouping(t *testing.T) {
	log := &domain.DailyLog{
		Date: "2024-01-01",
		Meals: []domain.Meal{
			{Name: "breakfast", Items: []domain.FoodItem{
				{DataID: "a1", Name: "greek yogurt", Weight: 100, Calories: 120},
				{DataID: "a2", Name: "banana", Weight: 118, Calories: 105},
			}},
			{Name: "lunch"}, // zero items: no rows at all
			{Name: "dinner", Items: []domain.FoodItem{
				{DataID: "c1", Name: "salmon", Weight: 150.4, Calories: 312.6},
			}},
		},
	}

	want := []DetailRow{
		{Meal: "breakfast", Food: "greek yogurt", Weight: "100", Calories: "120", DataID: "a1"},
		{Meal: "", Food: "banana", Weight: "118", Calories: "105", DataID: "a2"},
		{Meal: "dinner", Food: "salmon", Weight: "150", Calories: "313", DataID: "c1"},
	}
	got := Detail(log)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Detail() = %v, want %v", got, want)
	}

	// The meal name must appear exactly once per group.
	seen := map[string]int{}
	for _, r := range got {
		if r.Meal != "" {
			seen[r.Meal]++
		}
	}
	for meal, n := range seen {
		if n != 1 {
			t.Fatalf("meal %q named on %d rows", meal, n)
		}
	}
}

func TestDetailPreservesOrder(t *testing.T) {
	// Order comes from the backend and is never re-sorted, even when
	// it differs from the canonical meal order.
	log := &domain.DailyLog{
		Meals: []domain.Meal{
			{Name: "dinner", Items: []domain.FoodItem{{DataID: "d1", Name: "steak"}}},
			{Name: "breakfast", Items: []domain.FoodItem{{DataID: "b1", Name: "oats"}}},
		},
	}

	rows := Detail(log)
	if rows[0].Meal != "dinner" || rows[1].Meal != "breakfast" {
		t.Fatalf("meal order changed: %v", rows)
	}
}
