package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/goal"
	"tableflip.dev/prep/pkg/store"
)

func addGoal(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	value := 0
	set := false

	cmd := &cobra.Command{
		Use:   "goal [days]",
		Short: "Show or set the month's completion goal",
		Long: "Without an argument, shows the month's goal and current progress.\n" +
			"With a number of days, stores it as the month's goal; values below\n" +
			"1 are coerced to 1.",
		Example: `
prep goal
prep goal 15
prep goal 25 -m 2 -y 2024
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("expected at most one goal value")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New("goal must be a number of days")
			}
			value = n
			set = true
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return mo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := goal.Goal{
				Month:       mo.MonthKey(),
				Set:         set,
				Value:       value,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
