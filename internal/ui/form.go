package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvernier/macrolog/internal/domain"
)

// Form field order.
const (
	fieldMeal = iota
	fieldDate
	fieldFood
	fieldWeight
	fieldCount
)

// entryForm is the new-entry panel: a meal cycler plus date, food name
// and weight inputs. A backend validation error is pinned under the
// food-name field and cleared on the next submit attempt; the field
// values themselves survive a rejection untouched.
type entryForm struct {
	mealIdx int
	date    textinput.Model
	food    textinput.Model
	weight  textinput.Model
	focus   int
	errMsg  string
}

func newEntryForm() *entryForm {
	date := textinput.New()
	date.Placeholder = domain.DateLayout
	date.SetValue(domain.Today())
	date.CharLimit = 10
	date.Width = 12
	date.Prompt = ""

	food := textinput.New()
	food.Placeholder = "greek yogurt"
	food.CharLimit = 80
	food.Width = 24
	food.Prompt = ""

	weight := textinput.New()
	weight.Placeholder = "100"
	weight.CharLimit = 6
	weight.Width = 8
	weight.Prompt = ""

	return &entryForm{date: date, food: food, weight: weight}
}

// Focus activates the form, starting on the meal field.
func (f *entryForm) Focus() {
	f.focus = fieldMeal
	f.syncFocus()
}

// Blur deactivates every field.
func (f *entryForm) Blur() {
	f.date.Blur()
	f.food.Blur()
	f.weight.Blur()
}

func (f *entryForm) next() {
	f.focus = (f.focus + 1) % fieldCount
	f.syncFocus()
}

func (f *entryForm) prev() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
	f.syncFocus()
}

func (f *entryForm) syncFocus() {
	f.Blur()
	switch f.focus {
	case fieldDate:
		f.date.Focus()
	case fieldFood:
		f.food.Focus()
	case fieldWeight:
		f.weight.Focus()
	}
}

// Update routes a message to the focused field. The meal field is a
// cycler: left/right (or space) walk the fixed meal names.
func (f *entryForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && f.focus == fieldMeal {
		switch key.String() {
		case "left":
			f.mealIdx = (f.mealIdx + len(domain.MealNames) - 1) % len(domain.MealNames)
			return nil
		case "right", " ":
			f.mealIdx = (f.mealIdx + 1) % len(domain.MealNames)
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	case fieldFood:
		f.food, cmd = f.food.Update(msg)
	case fieldWeight:
		f.weight, cmd = f.weight.Update(msg)
	}
	return cmd
}

// Entry assembles the request body from the current field values. A
// locally invalid field returns an error message for inline display
// without touching any field.
func (f *entryForm) Entry() (domain.NewEntry, error) {
	food := strings.TrimSpace(f.food.Value())
	if food == "" {
		return domain.NewEntry{}, fmt.Errorf("food name is required")
	}

	date := strings.TrimSpace(f.date.Value())
	if date == "" {
		date = domain.Today()
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(f.weight.Value()), 64)
	if err != nil || weight <= 0 {
		return domain.NewEntry{}, fmt.Errorf("weight must be a positive number of grams")
	}

	return domain.NewEntry{
		Meal:     domain.MealNames[f.mealIdx],
		Date:     date,
		FoodName: food,
		Weight:   weight,
	}, nil
}

// SetError pins a validation message under the food-name field.
func (f *entryForm) SetError(msg string) { f.errMsg = msg }

// ClearError removes the pinned message. Called at the start of every
// submit attempt.
func (f *entryForm) ClearError() { f.errMsg = "" }

// CompleteEntry clears the food and weight fields after an accepted
// submit. Meal and date stick around: logging several foods for the
// same meal in a row is the common case.
func (f *entryForm) CompleteEntry() {
	f.food.Reset()
	f.weight.Reset()
	f.focus = fieldFood
	f.syncFocus()
}

// View renders the form. active marks whether the form owns keyboard
// focus.
func (f *entryForm) View(st styles, active bool) string {
	label := func(focused bool, text string) string {
		if active && focused {
			return st.selected.Render(text)
		}
		return st.muted.Render(text)
	}

	meal := domain.MealNames[f.mealIdx]
	if active && f.focus == fieldMeal {
		meal = "< " + meal + " >"
	}

	var b strings.Builder
	b.WriteString(label(f.focus == fieldMeal, "meal   ") + st.text.Render(meal) + "\n")
	b.WriteString(label(f.focus == fieldDate, "date   ") + f.date.View() + "\n")
	b.WriteString(label(f.focus == fieldFood, "food   ") + f.food.View() + "\n")
	if f.errMsg != "" {
		b.WriteString(st.errText.Render("  ! "+f.errMsg) + "\n")
	}
	b.WriteString(label(f.focus == fieldWeight, "weight ") + f.weight.View() + st.muted.Render(" g"))
	if active {
		b.WriteString("\n" + st.muted.Render("enter submit · tab next field · esc close"))
	}
	return b.String()
}
