package domain

import "testing"

func sampleLog() *DailyLog {
	return &DailyLog{
		Date:          "2024-01-01",
		TotalCalories: 1850,
		TotalProtein:  90.4,
		Meals: []Meal{
			{Name: "breakfast", Items: []FoodItem{
				{DataID: "a1", Name: "greek yogurt", Weight: 100, Calories: 120},
			}},
			{Name: "lunch", Items: []FoodItem{
				{DataID: "b1", Name: "chicken breast", Weight: 150, Calories: 240},
				{DataID: "b2", Name: "rice", Weight: 180, Calories: 230},
			}},
		},
	}
}

func TestItemCount(t *testing.T) {
	tests := []struct {
		name string
		log  *DailyLog
		want int
	}{
		{"two meals", sampleLog(), 3},
		{"no meals", EmptyLog("2024-01-01"), 0},
		{"meal with no items", &DailyLog{Meals: []Meal{{Name: "dinner"}}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.ItemCount(); got != tt.want {
				t.Fatalf("ItemCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	if sampleLog().Empty() {
		t.Fatal("log with items reported empty")
	}
	if !EmptyLog("2024-01-01").Empty() {
		t.Fatal("empty log not reported empty")
	}
	var nilLog *DailyLog
	if !nilLog.Empty() {
		t.Fatal("nil log not reported empty")
	}
}
