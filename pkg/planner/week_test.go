package planner

import (
	"testing"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
)

// Wednesday February 14, 2024; its week runs Sunday the 11th through
// Saturday the 17th.
var wednesday = daykey.Key{Year: 2024, Month: 2, Day: 14}

func TestWeekKeys(t *testing.T) {
	keys := WeekKeys(wednesday)
	if len(keys) != 7 {
		t.Fatalf("expected 7 keys, got %d", len(keys))
	}
	if (keys[0] != daykey.Key{Year: 2024, Month: 2, Day: 11}) {
		t.Fatalf("unexpected Sunday: %s", keys[0])
	}
	if (keys[6] != daykey.Key{Year: 2024, Month: 2, Day: 17}) {
		t.Fatalf("unexpected Saturday: %s", keys[6])
	}
}

func TestWeekKeysCrossMonth(t *testing.T) {
	// Wednesday January 31, 2024: week spans January and February.
	keys := WeekKeys(daykey.Key{Year: 2024, Month: 1, Day: 31})
	if (keys[0] != daykey.Key{Year: 2024, Month: 1, Day: 28}) {
		t.Fatalf("unexpected Sunday: %s", keys[0])
	}
	if (keys[6] != daykey.Key{Year: 2024, Month: 2, Day: 3}) {
		t.Fatalf("unexpected Saturday: %s", keys[6])
	}
}

func TestPlanOverwriteCleanWeek(t *testing.T) {
	dm := DayMeals{}
	dm.AssignMeal(wednesday, catalog.Breakfast, "Oats", []string{"Oats"})

	// The source day itself counts as an existing assignment.
	will, targets := PlanOverwrite(wednesday, dm)
	if !will {
		t.Fatalf("expected overwrite risk from the source day")
	}
	if len(targets) != 7 {
		t.Fatalf("expected 7 targets, got %d", len(targets))
	}

	empty := DayMeals{}
	if will, _ := PlanOverwrite(wednesday, empty); will {
		t.Fatalf("empty week reported overwrite risk")
	}
}

func TestPlanOverwriteSiblingDay(t *testing.T) {
	source := daykey.Key{Year: 2024, Month: 2, Day: 11} // Sunday
	dm := DayMeals{}
	dm.AssignMeal(source, catalog.Breakfast, "Oats", []string{"Oats"})
	dm.ClearMeal(source, catalog.Breakfast)
	dm.AssignMeal(wednesday, catalog.Lunch, "Soup", []string{"Broth"})

	will, _ := PlanOverwrite(source, dm)
	if !will {
		t.Fatalf("expected overwrite risk from Wednesday's existing lunch")
	}
}

func TestCopyWeekReplacesWholeRecords(t *testing.T) {
	source := daykey.Key{Year: 2024, Month: 2, Day: 11} // Sunday
	dm := DayMeals{}
	dm.AssignMeal(source, catalog.Breakfast, "Oats", []string{"Oats", "Milk"})
	dm.AssignMeal(wednesday, catalog.Lunch, "Soup", []string{"Broth"})

	targets := dm.CopyWeek(source)
	if len(targets) != 7 {
		t.Fatalf("expected 7 targets, got %d", len(targets))
	}

	// Wednesday's whole record is replaced; Soup is gone by design.
	p := dm[wednesday]
	if p.Lunch != "" {
		t.Fatalf("expected Wednesday's lunch replaced, got %q", p.Lunch)
	}
	if p.Breakfast != "Oats" || len(p.IngredientsBreakfast) != 2 {
		t.Fatalf("source record not copied: %#v", p)
	}

	for _, k := range targets {
		if dm[k].Breakfast != "Oats" {
			t.Fatalf("day %s missing copied record", k)
		}
	}
}

func TestCopyWeekDoesNotAliasIngredients(t *testing.T) {
	source := daykey.Key{Year: 2024, Month: 2, Day: 11}
	dm := DayMeals{}
	dm.AssignMeal(source, catalog.Dinner, "Curry", []string{"Chicken"})
	dm.CopyWeek(source)

	monday := daykey.Key{Year: 2024, Month: 2, Day: 12}
	p := dm[monday]
	p.IngredientsDinner[0] = "changed"
	if dm[source].IngredientsDinner[0] != "Chicken" {
		t.Fatalf("copied records share ingredient slices")
	}
}

func TestCopyWeekEmptySourceClearsWeek(t *testing.T) {
	dm := DayMeals{}
	dm.AssignMeal(wednesday, catalog.Lunch, "Soup", []string{"Broth"})

	// Copying from a day with nothing planned empties the week.
	source := daykey.Key{Year: 2024, Month: 2, Day: 12}
	dm.CopyWeek(source)
	if len(dm) != 0 {
		t.Fatalf("expected cleared week, got %#v", dm)
	}
}

func TestCopyWeekLeavesWorkoutsAlone(t *testing.T) {
	source := daykey.Key{Year: 2024, Month: 2, Day: 11}
	dm := DayMeals{}
	dw := DayWorkouts{}
	dm.AssignMeal(source, catalog.Breakfast, "Oats", []string{"Oats"})
	dw.Assign(wednesday, "Leg Day")

	dm.CopyWeek(source)
	if dw[wednesday] != "Leg Day" {
		t.Fatalf("workout assignment disturbed by meal copy")
	}
}
