// Package calendar builds the Sunday-first month grid and week ranges
// used by the planner.
package calendar

import (
	"time"
)

// Cell is one day slot in a rendered month grid. Offset marks cells that
// visually belong to the previous (-1) or next (+1) month.
type Cell struct {
	Day    int
	Offset int
}

// Grid returns the ordered cells needed to render the given month as
// whole Sunday-to-Saturday rows: leading days of the previous month, every
// day of the displayed month, then trailing days of the next month. The
// total is always a multiple of 7.
func Grid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	firstWeekday := int(first.Weekday())
	days := DaysIn(year, month)
	prevDays := first.AddDate(0, 0, -1).Day()

	cells := make([]Cell, 0, 42)
	for i := firstWeekday - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: prevDays - i, Offset: -1})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}
	last := time.Date(year, month, days, 0, 0, 0, 0, time.Local)
	for d := 1; d <= 6-int(last.Weekday()); d++ {
		cells = append(cells, Cell{Day: d, Offset: 1})
	}
	return cells
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekStart returns the Sunday of the week containing t, at midnight in
// t's location.
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Week returns the seven dates Sunday through Saturday of the week
// containing t.
func Week(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
