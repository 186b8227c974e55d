// Package clear provides the runner that unassigns meals and workouts.
package clear

import (
	"context"
	"errors"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/store"
)

// Clear removes the keyed day's assignment for one category, or its
// workout. Sibling categories on the same day are left alone.
type Clear struct {
	Key      daykey.Key
	Category catalog.Category
	Workout  bool

	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}
	if n.Category == "" && !n.Workout {
		return errors.New("nothing to clear, name a category or pass --workout")
	}

	s := n.Persistence.LoadState()

	if n.Category != "" {
		if !n.Category.Valid() {
			return errors.New("unknown category " + string(n.Category))
		}
		s.DayMeals.ClearMeal(n.Key, n.Category)
		if err := n.Persistence.SaveDayMeals(s.DayMeals); err != nil {
			return err
		}
	}

	if n.Workout {
		s.DayWorkouts.Clear(n.Key)
		if err := n.Persistence.SaveDayWorkouts(s.DayWorkouts); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.Day(n.Key, s.DayMeals[n.Key], s.DayWorkouts[n.Key], s.Completed.Has(n.Key))
	return nil
}
