package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/clear"
	"tableflip.dev/prep/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	co := &options.CategoryOptions{}
	workout := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Unassign a day's meal category or workout",
		Example: `
prep clear -C Lunch
prep clear --workout -d 14
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return do.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clear.Clear{
				Key:         do.Key(),
				Category:    co.Value(),
				Workout:     workout,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddCategoryArgs(cmd, co)
	cmd.Flags().BoolVarP(&workout, "workout", "w", false,
		"Clear the day's workout.")

	topLevel.AddCommand(cmd)
}
