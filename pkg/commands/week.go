package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/week"
	"tableflip.dev/prep/pkg/store"
)

func addWeek(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	overwrite := false

	cmd := &cobra.Command{
		Use:     "week",
		Aliases: []string{"copyweek"},
		Short:   "Copy a day's meals across its whole week",
		Long: "Copies the selected day's meal assignments, all three categories\n" +
			"with their cached ingredients, onto every day of its Sunday-to-\n" +
			"Saturday week. Workouts are not copied. Refuses to replace existing\n" +
			"meals unless --overwrite is given.",
		Example: `
prep week
prep week -d 14 -m 2 --overwrite
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return do.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := week.Week{
				Key:         do.Key(),
				Overwrite:   overwrite,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false,
		"Replace meals already planned on other days of the week.")

	topLevel.AddCommand(cmd)
}
