// Package calendar renders the planner month grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	grid "tableflip.dev/prep/pkg/calendar"
)

// Day describes a single cell rendered in the calendar. Offset marks
// cells that belong to the previous or next month.
type Day struct {
	Day        int
	Offset     int
	Prepped    bool
	Completed  bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle    lipgloss.Style
	EmptyStyle     lipgloss.Style
	OverflowStyle  lipgloss.Style
	PreppedStyle   lipgloss.Style
	CompletedStyle lipgloss.Style
	TodayStyle     lipgloss.Style
	SelectedStyle  lipgloss.Style
	ShowHeader     bool
}

// Render produces a multi-line month grid for the given month, including
// the overflow cells of the adjacent months that square off the weeks.
// The days slice carries per-cell state keyed by (Day, Offset).
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	type cellKey struct{ day, offset int }
	byCell := make(map[cellKey]Day, len(days))
	for _, d := range days {
		byCell[cellKey{d.Day, d.Offset}] = d
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	cells := grid.Grid(month.Year(), month.Month())
	var row []string
	for i, c := range cells {
		row = append(row, renderDay(byCell[cellKey{c.Day, c.Offset}], c, opts))
		if (i+1)%7 == 0 {
			lines = append(lines, strings.Join(row, " "))
			row = row[:0]
		}
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, cell grid.Cell, opts Options) string {
	text := fmt.Sprintf("%2d", cell.Day)

	style := opts.EmptyStyle
	if cell.Offset != 0 {
		style = opts.OverflowStyle
	}
	if info.Prepped {
		style = opts.PreppedStyle
	}
	if info.Completed {
		style = opts.CompletedStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
