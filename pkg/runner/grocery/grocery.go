// Package grocery provides the runner that prints the weekly shopping list.
package grocery

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/prep/pkg/calendar"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/grocery"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/store"
)

// Grocery aggregates the cached ingredients for the Sunday-to-Saturday
// week containing Key into a deduplicated list, grouped into store
// categories unless Flat is set.
type Grocery struct {
	Key  daykey.Key
	Flat bool

	Persistence store.Persistence
}

func (n *Grocery) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not build groceries, no persistence")
	}

	s := n.Persistence.LoadState()
	ref := n.Key.Time()
	week := calendar.Week(ref)

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Groceries %s – %s",
		daykey.FromTime(week[0]), daykey.FromTime(week[6])))

	if n.Flat {
		pp.Grocery(grocery.List(ref, s.DayMeals))
		return nil
	}
	pp.GroceryGrouped(grocery.Grouped(ref, s.DayMeals))
	return nil
}
