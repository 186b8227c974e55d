package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/cal"
	"tableflip.dev/prep/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	do := &options.DayOptions{}
	selected := false

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar", "month"},
		Short:   "Show the month grid with prepped and completed days",
		Example: `
prep cal
prep cal -m 2 -y 2024
prep cal --select -d 14
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := mo.Validate(); err != nil {
				return err
			}
			if selected {
				do.Year = mo.Year
				do.Month = mo.Month
				return do.Validate()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cal.Cal{
				Year:        mo.Year,
				Month:       time.Month(mo.Month),
				Persistence: p,
			}
			if selected {
				k := do.Key()
				s.Selected = &k
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().IntVarP(&do.Day, "day", "d", time.Now().Day(),
		"Day to highlight with --select.")
	cmd.Flags().IntVar(&do.Offset, "offset", 0,
		"Month offset of the highlighted cell (-1 previous, +1 next).")
	cmd.Flags().BoolVar(&selected, "select", false,
		"Highlight the selected day in the grid.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
