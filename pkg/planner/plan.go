// Package planner stores per-day meal and workout assignments keyed by
// daykey.Key. Assignments reference catalog entries by name and cache the
// ingredient list at assignment time, so grocery aggregation does not
// depend on the catalog's current contents.
package planner

import (
	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
)

// MealPlan is one day's meal assignments. The JSON field names match the
// stored payload format, including the ingredients_<Category> caches.
type MealPlan struct {
	Breakfast string `json:"Breakfast,omitempty"`
	Lunch     string `json:"Lunch,omitempty"`
	Dinner    string `json:"Dinner,omitempty"`

	IngredientsBreakfast []string `json:"ingredients_Breakfast,omitempty"`
	IngredientsLunch     []string `json:"ingredients_Lunch,omitempty"`
	IngredientsDinner    []string `json:"ingredients_Dinner,omitempty"`
}

// Meal returns the assigned meal name for the category, or "".
func (p MealPlan) Meal(c catalog.Category) string {
	switch c {
	case catalog.Breakfast:
		return p.Breakfast
	case catalog.Lunch:
		return p.Lunch
	case catalog.Dinner:
		return p.Dinner
	}
	return ""
}

// Ingredients returns the cached ingredient list for the category.
func (p MealPlan) Ingredients(c catalog.Category) []string {
	switch c {
	case catalog.Breakfast:
		return p.IngredientsBreakfast
	case catalog.Lunch:
		return p.IngredientsLunch
	case catalog.Dinner:
		return p.IngredientsDinner
	}
	return nil
}

func (p *MealPlan) set(c catalog.Category, name string, ingredients []string) {
	switch c {
	case catalog.Breakfast:
		p.Breakfast = name
		p.IngredientsBreakfast = ingredients
	case catalog.Lunch:
		p.Lunch = name
		p.IngredientsLunch = ingredients
	case catalog.Dinner:
		p.Dinner = name
		p.IngredientsDinner = ingredients
	}
}

// HasMeal reports whether any category has a meal assigned.
func (p MealPlan) HasMeal() bool {
	return p.Breakfast != "" || p.Lunch != "" || p.Dinner != ""
}

// Empty reports whether the record holds no names and no cached
// ingredients at all.
func (p MealPlan) Empty() bool {
	return !p.HasMeal() &&
		len(p.IngredientsBreakfast) == 0 &&
		len(p.IngredientsLunch) == 0 &&
		len(p.IngredientsDinner) == 0
}

// Clone copies the record, including the cached ingredient slices, so the
// copy never aliases the original.
func (p MealPlan) Clone() MealPlan {
	c := p
	c.IngredientsBreakfast = cloneStrings(p.IngredientsBreakfast)
	c.IngredientsLunch = cloneStrings(p.IngredientsLunch)
	c.IngredientsDinner = cloneStrings(p.IngredientsDinner)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// DayMeals maps each planned date to its meal assignments. Entries are
// created lazily on first assignment.
type DayMeals map[daykey.Key]MealPlan

// AssignMeal sets the category's meal name and caches its ingredients for
// the keyed day. Other categories on the same day are untouched.
func (dm DayMeals) AssignMeal(k daykey.Key, c catalog.Category, name string, ingredients []string) {
	p := dm[k]
	p.set(c, name, cloneStrings(ingredients))
	dm[k] = p
}

// ClearMeal removes the category's name and cached ingredients. The day
// entry persists while sibling categories remain populated; a fully empty
// entry is dropped.
func (dm DayMeals) ClearMeal(k daykey.Key, c catalog.Category) {
	p, ok := dm[k]
	if !ok {
		return
	}
	p.set(c, "", nil)
	if p.Empty() {
		delete(dm, k)
		return
	}
	dm[k] = p
}

// DayWorkouts maps a date to at most one workout name.
type DayWorkouts map[daykey.Key]string

// Assign sets the day's workout.
func (dw DayWorkouts) Assign(k daykey.Key, name string) {
	dw[k] = name
}

// Clear unsets the day's workout.
func (dw DayWorkouts) Clear(k daykey.Key) {
	delete(dw, k)
}

// Planned reports whether the keyed day has any meal or workout assigned.
// Used to mark prepped days on the calendar.
func Planned(k daykey.Key, dm DayMeals, dw DayWorkouts) bool {
	if dm[k].HasMeal() {
		return true
	}
	return dw[k] != ""
}
