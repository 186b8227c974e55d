// Package plan provides the runner that assigns meals and workouts to a day.
package plan

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/store"
)

// Plan assigns the named catalog meal to the keyed day's category, or the
// named workout to the day's single workout slot. The meal's current
// ingredient list is cached on the day so later grocery lists do not chase
// catalog edits.
type Plan struct {
	Key      daykey.Key
	Category catalog.Category
	Meal     string
	Workout  string

	Persistence store.Persistence
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not plan, no persistence")
	}
	if n.Meal == "" && n.Workout == "" {
		return errors.New("nothing to plan, name a meal or a workout")
	}

	s := n.Persistence.LoadState()

	if n.Meal != "" {
		m, ok := catalog.FindMeal(s.Meals, n.Meal)
		if !ok {
			return fmt.Errorf("no meal named %q in the catalog", n.Meal)
		}
		c := n.Category
		if c == "" {
			c = m.Category
		}
		if !c.Valid() {
			return fmt.Errorf("unknown category %q", c)
		}
		s.DayMeals.AssignMeal(n.Key, c, m.Name, m.Ingredients)
		if err := n.Persistence.SaveDayMeals(s.DayMeals); err != nil {
			return err
		}
	}

	if n.Workout != "" {
		w, ok := catalog.FindWorkout(s.Workouts, n.Workout)
		if !ok {
			return fmt.Errorf("no workout named %q in the catalog", n.Workout)
		}
		s.DayWorkouts.Assign(n.Key, w.Name)
		if err := n.Persistence.SaveDayWorkouts(s.DayWorkouts); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.Day(n.Key, s.DayMeals[n.Key], s.DayWorkouts[n.Key], s.Completed.Has(n.Key))
	return nil
}
