package catalog

import (
	"testing"
)

func TestMealValidate(t *testing.T) {
	m := Meal{Name: "Oats", Category: Breakfast, Ingredients: []string{"oats"}}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid meal rejected: %v", err)
	}

	if err := (Meal{Category: Breakfast, Ingredients: []string{"oats"}}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := (Meal{Name: "x", Category: "Brunch", Ingredients: []string{"oats"}}).Validate(); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if err := (Meal{Name: "x", Category: Lunch}).Validate(); err == nil {
		t.Fatalf("expected error for empty ingredients")
	}
}

func TestWorkoutValidate(t *testing.T) {
	w := Workout{Name: "Leg Day", Type: "strength", Activities: []string{"squats"}}
	if err := w.Validate(); err != nil {
		t.Fatalf("valid workout rejected: %v", err)
	}
	if err := (Workout{Activities: []string{"squats"}}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := (Workout{Name: "x"}).Validate(); err == nil {
		t.Fatalf("expected error for empty activities")
	}
}

func TestSortMealsFavoritesFirstStable(t *testing.T) {
	meals := []Meal{
		{Name: "A"},
		{Name: "B", Favorite: true},
		{Name: "C"},
		{Name: "D", Favorite: true},
	}
	SortMeals(meals)

	got := []string{meals[0].Name, meals[1].Name, meals[2].Name, meals[3].Name}
	want := []string{"B", "D", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}

func TestDeleteMeal(t *testing.T) {
	meals := []Meal{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	meals, ok := DeleteMeal(meals, "B")
	if !ok || len(meals) != 2 {
		t.Fatalf("delete failed: %#v", meals)
	}
	if meals[0].Name != "A" || meals[1].Name != "C" {
		t.Fatalf("unexpected remainder: %#v", meals)
	}

	if _, ok := DeleteMeal(meals, "missing"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestToggleMealFavorite(t *testing.T) {
	meals := []Meal{{Name: "A"}}
	if !ToggleMealFavorite(meals, "A") || !meals[0].Favorite {
		t.Fatalf("favorite not set")
	}
	if !ToggleMealFavorite(meals, "A") || meals[0].Favorite {
		t.Fatalf("favorite not unset")
	}
	if ToggleMealFavorite(meals, "missing") {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestFindWorkout(t *testing.T) {
	workouts := []Workout{{Name: "Run"}, {Name: "Leg Day"}}
	w, ok := FindWorkout(workouts, "Leg Day")
	if !ok || w.Name != "Leg Day" {
		t.Fatalf("lookup failed: %#v", w)
	}
	if _, ok := FindWorkout(workouts, "Swim"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}
