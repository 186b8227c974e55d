// Package done provides the runner that toggles a day's completion mark.
package done

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/progress"
	"tableflip.dev/prep/pkg/store"
)

// Done toggles the keyed day in the completed set and reprints the
// month's completion summary.
type Done struct {
	Key daykey.Key

	Persistence store.Persistence
}

func (n *Done) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	s := n.Persistence.LoadState()
	s.Completed.Toggle(n.Key)
	if err := n.Persistence.SaveCompleted(s.Completed); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	month := time.Month(n.Key.Month)
	pp.CompletedMonth(n.Key.Year, month, s.Completed)

	mk := n.Key.MonthKey()
	pp.Progress("Progress", progress.CompletedCount(s.Completed, n.Key.Year, month), s.Goals.Goal(mk))
	return nil
}
