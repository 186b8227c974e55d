// Package cal provides the runner that renders the month view.
package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/prep/pkg/calendar"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/planner"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/progress"
	"tableflip.dev/prep/pkg/store"
	uical "tableflip.dev/prep/pkg/ui/calendar"
)

// Cal renders one month: the Sunday-first grid with prepped and completed
// days highlighted, followed by the month's goal progress.
type Cal struct {
	Year  int
	Month time.Month

	// Selected optionally highlights one day key in the grid.
	Selected *daykey.Key

	Persistence store.Persistence
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}

	s := n.Persistence.LoadState()
	today := daykey.FromTime(time.Now())

	cells := calendar.Grid(n.Year, n.Month)
	days := make([]uical.Day, 0, len(cells))
	for _, c := range cells {
		k := daykey.Resolve(n.Year, n.Month, c.Day, c.Offset)
		days = append(days, uical.Day{
			Day:        c.Day,
			Offset:     c.Offset,
			Prepped:    planner.Planned(k, s.DayMeals, s.DayWorkouts),
			Completed:  s.Completed.Has(k),
			IsToday:    k == today,
			IsSelected: n.Selected != nil && *n.Selected == k,
		})
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%s %d", n.Month, n.Year))

	month := time.Date(n.Year, n.Month, 1, 0, 0, 0, 0, time.Local)
	fmt.Println(uical.Render(month, days, defaultOptions()))

	mk := daykey.MonthKey{Year: n.Year, Month: int(n.Month)}
	done := progress.CompletedCount(s.Completed, n.Year, n.Month)
	pp.NewLine()
	pp.Progress("Progress", done, s.Goals.Goal(mk))
	return nil
}

func defaultOptions() uical.Options {
	return uical.Options{
		HeaderStyle:    lipgloss.NewStyle().Bold(true).Underline(true),
		EmptyStyle:     lipgloss.NewStyle(),
		OverflowStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		PreppedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		CompletedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		TodayStyle:     lipgloss.NewStyle().Underline(true),
		SelectedStyle:  lipgloss.NewStyle().Reverse(true),
		ShowHeader:     true,
	}
}
