package planner

import (
	"testing"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
)

var day = daykey.Key{Year: 2024, Month: 2, Day: 14}

func TestAssignThenClearRestoresCategory(t *testing.T) {
	dm := DayMeals{}
	dm.AssignMeal(day, catalog.Lunch, "Soup", []string{"Broth", "Onion"})
	dm.AssignMeal(day, catalog.Breakfast, "Oats", []string{"Oats", "Milk"})

	dm.ClearMeal(day, catalog.Breakfast)

	p := dm[day]
	if p.Breakfast != "" || p.IngredientsBreakfast != nil {
		t.Fatalf("breakfast not cleared: %#v", p)
	}
	if p.Lunch != "Soup" || len(p.IngredientsLunch) != 2 {
		t.Fatalf("sibling category disturbed: %#v", p)
	}
}

func TestClearLastCategoryDropsEntry(t *testing.T) {
	dm := DayMeals{}
	dm.AssignMeal(day, catalog.Dinner, "Curry", []string{"Chicken"})
	dm.ClearMeal(day, catalog.Dinner)

	if _, ok := dm[day]; ok {
		t.Fatalf("expected empty entry to be dropped")
	}
}

func TestClearMissingEntryIsNoop(t *testing.T) {
	dm := DayMeals{}
	dm.ClearMeal(day, catalog.Lunch)
	if len(dm) != 0 {
		t.Fatalf("clear created an entry: %#v", dm)
	}
}

func TestAssignCopiesIngredients(t *testing.T) {
	dm := DayMeals{}
	ingredients := []string{"Oats", "Milk"}
	dm.AssignMeal(day, catalog.Breakfast, "Oats", ingredients)

	ingredients[0] = "changed"
	if dm[day].IngredientsBreakfast[0] != "Oats" {
		t.Fatalf("cached ingredients alias the caller's slice")
	}
}

func TestAssignPreservesUnrelatedKeys(t *testing.T) {
	other := daykey.Key{Year: 2024, Month: 2, Day: 15}
	dm := DayMeals{}
	dm.AssignMeal(other, catalog.Dinner, "Curry", []string{"Chicken"})
	dm.AssignMeal(day, catalog.Dinner, "Pasta", []string{"Flour"})

	if dm[other].Dinner != "Curry" {
		t.Fatalf("unrelated key disturbed: %#v", dm[other])
	}
}

func TestWorkoutAssignClear(t *testing.T) {
	dw := DayWorkouts{}
	dw.Assign(day, "Leg Day")
	if dw[day] != "Leg Day" {
		t.Fatalf("workout not assigned")
	}
	dw.Clear(day)
	if _, ok := dw[day]; ok {
		t.Fatalf("workout not cleared")
	}
}

func TestPlanned(t *testing.T) {
	dm := DayMeals{}
	dw := DayWorkouts{}

	if Planned(day, dm, dw) {
		t.Fatalf("empty day reported planned")
	}

	dm.AssignMeal(day, catalog.Lunch, "Soup", nil)
	if !Planned(day, dm, dw) {
		t.Fatalf("day with meal not reported planned")
	}

	dm.ClearMeal(day, catalog.Lunch)
	dw.Assign(day, "Run")
	if !Planned(day, dm, dw) {
		t.Fatalf("day with workout not reported planned")
	}
}
