// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/daykey"
)

// DayOptions selects a single day, defaulting to today. Offset addresses
// the overflow cells of a displayed month grid (-1 previous, +1 next);
// the resolved key always lands on the correct month.
type DayOptions struct {
	Year   int
	Month  int
	Day    int
	Offset int
}

// AddDayArgs wires the day selection flags on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	now := time.Now()
	cmd.Flags().IntVarP(&o.Year, "year", "y", now.Year(),
		"Specify the year.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", int(now.Month()),
		"Specify the month (1-12).")
	cmd.Flags().IntVarP(&o.Day, "day", "d", now.Day(),
		"Specify the day of month.")
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"Month offset of a grid overflow cell (-1 previous, +1 next).")
}

// Validate checks flag ranges before resolving.
func (o *DayOptions) Validate() error {
	if o.Month < 1 || o.Month > 12 {
		return errors.New("month must be 1-12")
	}
	if o.Day < 1 || o.Day > 31 {
		return errors.New("day must be 1-31")
	}
	if o.Offset < -1 || o.Offset > 1 {
		return errors.New("offset must be -1, 0, or +1")
	}
	return nil
}

// Key resolves the selected day, normalizing month/year rollover for
// overflow cells.
func (o *DayOptions) Key() daykey.Key {
	return daykey.Resolve(o.Year, time.Month(o.Month), o.Day, o.Offset)
}

// MonthOptions selects a month, defaulting to the current one.
type MonthOptions struct {
	Year  int
	Month int
}

// AddMonthArgs wires the month selection flags on the provided command.
func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	now := time.Now()
	cmd.Flags().IntVarP(&o.Year, "year", "y", now.Year(),
		"Specify the year.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", int(now.Month()),
		"Specify the month (1-12).")
}

// Validate checks flag ranges.
func (o *MonthOptions) Validate() error {
	if o.Month < 1 || o.Month > 12 {
		return errors.New("month must be 1-12")
	}
	return nil
}

// MonthKey returns the selected month's goal key.
func (o *MonthOptions) MonthKey() daykey.MonthKey {
	return daykey.MonthKey{Year: o.Year, Month: o.Month}
}
