package grocery

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/planner"
)

// Wednesday February 14, 2024; its week runs Sunday the 11th through
// Saturday the 17th.
var ref = time.Date(2024, time.February, 14, 0, 0, 0, 0, time.Local)

func TestListNormalizesAndDeduplicates(t *testing.T) {
	dm := planner.DayMeals{}
	sunday := daykey.Key{Year: 2024, Month: 2, Day: 11}
	dm.AssignMeal(sunday, catalog.Breakfast, "Rice Bowl", []string{"Rice", " rice ", "Onion"})

	got := List(ref, dm)
	want := []string{"onion", "rice"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListSpansTheWholeWeekOnly(t *testing.T) {
	dm := planner.DayMeals{}
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 11}, catalog.Breakfast, "Oats", []string{"Oats"})
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 17}, catalog.Dinner, "Curry", []string{"Chicken"})
	// The Sunday after this week must not contribute.
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 18}, catalog.Lunch, "Soup", []string{"Broth"})

	got := List(ref, dm)
	want := []string{"chicken", "oats"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListCrossMonthWeek(t *testing.T) {
	// The week of January 31, 2024 includes February 3.
	dm := planner.DayMeals{}
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 3}, catalog.Lunch, "Toast", []string{"Bread"})

	got := List(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local), dm)
	if !reflect.DeepEqual(got, []string{"bread"}) {
		t.Fatalf("expected [bread], got %v", got)
	}
}

func TestListIgnoresBlankIngredients(t *testing.T) {
	dm := planner.DayMeals{}
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 14}, catalog.Dinner, "Mystery", []string{"  ", "salt"})

	got := List(ref, dm)
	if !reflect.DeepEqual(got, []string{"salt"}) {
		t.Fatalf("expected [salt], got %v", got)
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]string{
		"1 lb beef":         "Meat",
		"rice":              "Grains",
		"red onion":         "Produce",
		"whole milk":        "Dairy",
		"honey":             "Sauces/Condiments",
		"mystery seasoning": "Other",
	}
	for ingredient, want := range cases {
		if got := Classify(ingredient); got != want {
			t.Fatalf("%q classified as %q, want %q", ingredient, got, want)
		}
	}
}

func TestGroupedOrderAndOmission(t *testing.T) {
	dm := planner.DayMeals{}
	sunday := daykey.Key{Year: 2024, Month: 2, Day: 11}
	dm.AssignMeal(sunday, catalog.Dinner, "Beef Rice", []string{"1 lb Beef", "Rice", "mystery seasoning"})

	groups := Grouped(ref, dm)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d: %#v", len(groups), groups)
	}
	// Category table order, empty categories omitted.
	if groups[0].Name != "Meat" || groups[1].Name != "Grains" || groups[2].Name != "Other" {
		t.Fatalf("unexpected group order: %#v", groups)
	}
	if !reflect.DeepEqual(groups[0].Items, []string{"1 lb beef"}) {
		t.Fatalf("unexpected Meat items: %v", groups[0].Items)
	}
	if !reflect.DeepEqual(groups[2].Items, []string{"mystery seasoning"}) {
		t.Fatalf("unexpected Other items: %v", groups[2].Items)
	}
}

func TestDeterministicOutput(t *testing.T) {
	dm := planner.DayMeals{}
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 11}, catalog.Breakfast, "A", []string{"rice", "beef", "onion"})
	dm.AssignMeal(daykey.Key{Year: 2024, Month: 2, Day: 12}, catalog.Lunch, "B", []string{"onion", "milk"})

	first := Grouped(ref, dm)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(Grouped(ref, dm), first) {
			t.Fatalf("grouped output not deterministic")
		}
	}
}
