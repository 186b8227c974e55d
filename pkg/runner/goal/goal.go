// Package goal provides the runner that shows or sets a monthly goal.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/progress"
	"tableflip.dev/prep/pkg/store"
)

// Goal shows the month's completion goal, or stores a new one when Set is
// true. Goals below 1 are coerced to 1 before they are persisted.
type Goal struct {
	Month daykey.MonthKey
	Set   bool
	Value int

	Persistence store.Persistence
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not track goals, no persistence")
	}

	s := n.Persistence.LoadState()

	if n.Set {
		s.Goals.Set(n.Month, n.Value)
		if err := n.Persistence.SaveGoals(s.Goals); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Goal for %s", n.Month))
	done := progress.CompletedCount(s.Completed, n.Month.Year, time.Month(n.Month.Month))
	pp.Progress("Progress", done, s.Goals.Goal(n.Month))
	return nil
}
