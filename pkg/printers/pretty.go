package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/grocery"
	"tableflip.dev/prep/pkg/planner"
	"tableflip.dev/prep/pkg/progress"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Day prints one day's full plan: each meal slot, the workout, and the
// completion mark.
func (pp *PrettyPrint) Day(k daykey.Key, plan planner.MealPlan, workout string, completed bool) {
	t := color.New()
	f := color.New(color.Faint, color.Italic)
	g := color.New(color.FgGreen)

	title := k.String()
	if completed {
		pp.Title(title + " ✓")
	} else {
		pp.Title(title)
	}

	for _, c := range catalog.Categories() {
		name := plan.Meal(c)
		if name == "" {
			_, _ = f.Printf("%-10s none\n", c)
			continue
		}
		_, _ = t.Printf("%-10s %s\n", c, name)
	}
	if workout == "" {
		_, _ = f.Printf("%-10s none\n", "Workout")
	} else {
		_, _ = g.Printf("%-10s %s\n", "Workout", workout)
	}
	_, _ = t.Println("")
}

// Meals prints the meal catalog as a table, favorites marked with a star.
func (pp *PrettyPrint) Meals(meals ...catalog.Meal) {
	if len(meals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "CATEGORY", "INGREDIENTS")
	for _, m := range meals {
		tbl.AddRow(favoriteMark(m.Favorite), m.Name, string(m.Category), strings.Join(m.Ingredients, ", "))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Workouts prints the workout catalog as a table.
func (pp *PrettyPrint) Workouts(workouts ...catalog.Workout) {
	if len(workouts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "TYPE", "ACTIVITIES")
	for _, w := range workouts {
		tbl.AddRow(favoriteMark(w.Favorite), w.Name, w.Type, strings.Join(w.Activities, ", "))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func favoriteMark(fav bool) string {
	if fav {
		return "★"
	}
	return " "
}

// Grocery prints a flat shopping list.
func (pp *PrettyPrint) Grocery(items []string) {
	t := color.New()
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing planned this week\n\n")
		return
	}
	for _, item := range items {
		_, _ = t.Printf("  %s\n", item)
	}
	_, _ = t.Println("")
}

// GroceryGrouped prints the shopping list split into store categories.
func (pp *PrettyPrint) GroceryGrouped(groups []grocery.Group) {
	if len(groups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing planned this week\n\n")
		return
	}
	h := color.New(color.Bold)
	t := color.New()
	for _, g := range groups {
		_, _ = h.Println(g.Name)
		for _, item := range g.Items {
			_, _ = t.Printf("  %s\n", item)
		}
	}
	_, _ = t.Println("")
}

const barWidth = 20

// Progress prints a labelled completion bar, value out of goal.
func (pp *PrettyPrint) Progress(label string, value, goal int) {
	pct := progress.Percentage(value, goal)
	filled := pct * barWidth / 100

	t := color.New()
	b := color.New(color.FgHiBlue)
	f := color.New(color.Faint)

	_, _ = t.Printf("%s: %d%% (%d of %d) ", label, pct, value, goal)
	_, _ = b.Print(strings.Repeat("█", filled))
	_, _ = f.Print(strings.Repeat("░", barWidth-filled))
	_, _ = t.Println("")
}
