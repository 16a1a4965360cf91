// Package domain defines the core types and interfaces for the nutrition
// log front end. All other packages depend on domain; domain depends on
// nothing.
package domain

import "time"

// DateLayout is the calendar-date format used on the wire and in memory.
const DateLayout = "2006-01-02"

// Meal names accepted by the backend, in display order.
var MealNames = []string{"breakfast", "lunch", "dinner", "snack"}

// DailyLog aggregates all food entries for one calendar date. The total
// fields are computed by the backend from the constituent items and are
// trusted as-is; the front end never recomputes them.
type DailyLog struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	Meals         []Meal  `json:"meals"`
}

// Meal is a named grouping of food items within a day.
type Meal struct {
	Name  string     `json:"name"`
	Items []FoodItem `json:"items"`
}

// FoodItem is a single logged food with weight and nutrient values.
// DataID is opaque and server-assigned; it is the only handle for
// targeting a delete.
type FoodItem struct {
	DataID   string  `json:"data_id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NewEntry is the request body for logging a food. The backend resolves
// the food name against its nutrition database and rejects unknown
// foods with a validation error.
type NewEntry struct {
	Meal     string  `json:"meal"`
	Date     string  `json:"date"`
	FoodName string  `json:"food-name"`
	Weight   float64 `json:"weight"`
}

// ItemCount returns the number of items across all meals.
func (l *DailyLog) ItemCount() int {
	n := 0
	for _, m := range l.Meals {
		n += len(m.Items)
	}
	return n
}

// Empty reports whether the log has zero items across all meals.
// Renderers use this to decide between a table and the placeholder.
func (l *DailyLog) Empty() bool {
	return l == nil || l.ItemCount() == 0
}

// EmptyLog returns a DailyLog for the given date with no meals. Used
// when the backend reports nothing logged yet (JSON null).
func EmptyLog(date string) *DailyLog {
	return &DailyLog{Date: date}
}

// Today returns the current calendar date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}
