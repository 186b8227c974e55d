// Package catalog holds the meal and workout catalogs. Day plans reference
// catalog entries by name; renaming an entry orphans any day that already
// points at the old name.
package catalog

import (
	"errors"
	"sort"
	"strings"
)

// Category is a meal slot in a day plan.
type Category string

const (
	Breakfast Category = "Breakfast"
	Lunch     Category = "Lunch"
	Dinner    Category = "Dinner"
)

// Categories returns the meal categories in display order.
func Categories() []Category {
	return []Category{Breakfast, Lunch, Dinner}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// Meal is a catalog recipe.
type Meal struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Ingredients []string `json:"ingredients"`
	Favorite    bool     `json:"favorite"`
}

// Validate checks a meal before it enters the catalog.
func (m Meal) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("catalog: meal name required")
	}
	if !m.Category.Valid() {
		return errors.New("catalog: meal category must be Breakfast, Lunch, or Dinner")
	}
	if len(m.Ingredients) == 0 {
		return errors.New("catalog: meal needs at least one ingredient")
	}
	return nil
}

// Workout is a catalog workout.
type Workout struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Activities []string `json:"activities"`
	Favorite   bool     `json:"favorite"`
}

// Validate checks a workout before it enters the catalog.
func (w Workout) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return errors.New("catalog: workout name required")
	}
	if len(w.Activities) == 0 {
		return errors.New("catalog: workout needs at least one activity")
	}
	return nil
}

// FindMeal looks a meal up by name.
func FindMeal(meals []Meal, name string) (Meal, bool) {
	for _, m := range meals {
		if m.Name == name {
			return m, true
		}
	}
	return Meal{}, false
}

// FindWorkout looks a workout up by name.
func FindWorkout(workouts []Workout, name string) (Workout, bool) {
	for _, w := range workouts {
		if w.Name == name {
			return w, true
		}
	}
	return Workout{}, false
}

// DeleteMeal removes the named meal, reporting whether it was present.
func DeleteMeal(meals []Meal, name string) ([]Meal, bool) {
	for i, m := range meals {
		if m.Name == name {
			return append(meals[:i:i], meals[i+1:]...), true
		}
	}
	return meals, false
}

// DeleteWorkout removes the named workout, reporting whether it was present.
func DeleteWorkout(workouts []Workout, name string) ([]Workout, bool) {
	for i, w := range workouts {
		if w.Name == name {
			return append(workouts[:i:i], workouts[i+1:]...), true
		}
	}
	return workouts, false
}

// ToggleMealFavorite flips the favorite flag on the named meal.
func ToggleMealFavorite(meals []Meal, name string) bool {
	for i := range meals {
		if meals[i].Name == name {
			meals[i].Favorite = !meals[i].Favorite
			return true
		}
	}
	return false
}

// ToggleWorkoutFavorite flips the favorite flag on the named workout.
func ToggleWorkoutFavorite(workouts []Workout, name string) bool {
	for i := range workouts {
		if workouts[i].Name == name {
			workouts[i].Favorite = !workouts[i].Favorite
			return true
		}
	}
	return false
}

// SortMeals orders favorites first, keeping catalog order otherwise.
func SortMeals(meals []Meal) {
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].Favorite && !meals[j].Favorite
	})
}

// SortWorkouts orders favorites first, keeping catalog order otherwise.
func SortWorkouts(workouts []Workout) {
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Favorite && !workouts[j].Favorite
	})
}
