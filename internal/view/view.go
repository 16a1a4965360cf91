// Package view builds terminal-agnostic row models from daily logs.
// Everything here is a pure function of its input so the rendering
// rules (rounding, units, meal grouping, placeholders) stay testable
// without a terminal.
package view

import (
	"fmt"
	"math"

	"github.com/pvernier/macrolog/internal/domain"
)

// NoEntries is the placeholder shown when a day has nothing logged.
const NoEntries = "no entries yet"

// SummaryRow is one nutrient line of the daily summary.
type SummaryRow struct {
	Label string
	Value string
}

// DetailRow is one food item line of the itemized log. Meal is filled
// only on the first row of each meal group. DataID targets the delete
// affordance for the row.
type DetailRow struct {
	Meal     string
	Food     string
	Weight   string
	Calories string
	DataID   string
}

// Summary returns the four-nutrient summary for a day, or nil when the
// log is empty (callers must show the NoEntries placeholder instead of
// an empty table). Values are rounded to whole numbers at render time
// only; the log keeps full precision. Calories are unit-less, the
// other nutrients carry a "g" suffix.
func Summary(log *domain.DailyLog) []SummaryRow {
	if log.Empty() {
		return nil
	}
	return []SummaryRow{
		{Label: "calories (kcal)", Value: whole(log.TotalCalories)},
		{Label: "protein", Value: whole(log.TotalProtein) + "g"},
		{Label: "carbs", Value: whole(log.TotalCarbs) + "g"},
		{Label: "fat", Value: whole(log.TotalFat) + "g"},
	}
}

// Detail returns one row per food item, preserving meal order and item
// order exactly as the backend sent them. The meal name appears on the
// first row of its group and is blank afterwards; meals with zero
// items contribute nothing. Nil means empty day.
func Detail(log *domain.DailyLog) []DetailRow {
	if log.Empty() {
		return nil
	}

	var rows []DetailRow
	for _, meal := range log.Meals {
		for i, item := range meal.Items {
			name := ""
			if i == 0 {
				name = meal.Name
			}
			rows = append(rows, DetailRow{
				Meal:     name,
				Food:     item.Name,
				Weight:   whole(item.Weight),
				Calories: whole(item.Calories),
				DataID:   item.DataID,
			})
		}
	}
	return rows
}

func whole(v float64) string {
	return fmt.Sprintf("%d", int(math.Round(v)))
}
