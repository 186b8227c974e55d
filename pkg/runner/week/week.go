// Package week provides the runner that copies one day's meals across its
// week.
package week

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/planner"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/store"
)

// Week copies the source day's meal record, all three categories with
// their cached ingredients, onto every day of its Sunday-to-Saturday
// week. Workouts are never copied. When any target day already has meals
// the copy stops unless Overwrite is set; the overwrite decision belongs
// to the caller, not this runner.
type Week struct {
	Key       daykey.Key
	Overwrite bool

	Persistence store.Persistence
}

func (n *Week) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not copy week, no persistence")
	}

	s := n.Persistence.LoadState()

	willOverwrite, targets := planner.PlanOverwrite(n.Key, s.DayMeals)
	if willOverwrite && !n.Overwrite {
		return fmt.Errorf("days in the week of %s already have meals planned, re-run with --overwrite to replace them", n.Key)
	}

	s.DayMeals.CopyWeek(n.Key)
	if err := n.Persistence.SaveDayMeals(s.DayMeals); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	for _, k := range targets {
		pp.Day(k, s.DayMeals[k], s.DayWorkouts[k], s.Completed.Has(k))
	}
	return nil
}
