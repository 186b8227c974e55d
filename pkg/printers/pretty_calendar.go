package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/prep/pkg/calendar"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/planner"
)

const width = len("11 12 13 14 15 16 17") // an example week

// CompletedMonth prints a compact month where completed days are bold,
// matching the calendar coloring used by the full grid view.
func (pp *PrettyPrint) CompletedMonth(year int, month time.Month, completed planner.CompletedDays) {
	days := calendar.DaysIn(year, month)
	marked := make([]bool, days)
	for k := range completed {
		if k.Year == year && k.Month == int(month) && k.Day >= 1 && k.Day <= days {
			marked[k.Day-1] = true
		}
	}
	pp.PrintMonthMarked(year, month, marked)
}

// PreppedMonth prints a compact month where prepped days are bold.
func (pp *PrettyPrint) PreppedMonth(year int, month time.Month, dm planner.DayMeals, dw planner.DayWorkouts) {
	days := calendar.DaysIn(year, month)
	marked := make([]bool, days)
	for d := 1; d <= days; d++ {
		k := daykey.Key{Year: year, Month: int(month), Day: d}
		marked[d-1] = planner.Planned(k, dm, dw)
	}
	pp.PrintMonthMarked(year, month, marked)
}

// PrintMonthMarked prints the month name and a weekday-aligned day grid,
// highlighting marked days.
func (pp *PrettyPrint) PrintMonthMarked(year int, month time.Month, marked []bool) {
	tf := color.New(color.FgWhite, color.Italic)

	m := month.String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	d := first.Weekday()

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := calendar.DaysIn(year, month)
	for i := 0; i < days; i++ {
		if i < len(marked) && marked[i] {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
