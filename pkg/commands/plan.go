package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/plan"
	"tableflip.dev/prep/pkg/store"
)

func addPlan(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	co := &options.CategoryOptions{}
	workout := ""

	cmd := &cobra.Command{
		Use:   "plan [meal name]",
		Short: "Assign a catalog meal or workout to a day",
		Long: "Assign a meal to one of the day's categories, or a workout to the\n" +
			"day's single workout slot. The meal's ingredients are cached on the\n" +
			"day at assignment time for the weekly grocery list.",
		Example: `
prep plan Oats -C Breakfast
prep plan "Chicken Curry" -C Dinner -d 14 -m 2
prep plan --workout "Leg Day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && workout == "" {
				return errors.New("requires a meal name or --workout")
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return do.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := plan.Plan{
				Key:         do.Key(),
				Category:    co.Value(),
				Meal:        strings.Join(args, " "),
				Workout:     workout,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddCategoryArgs(cmd, co)
	cmd.Flags().StringVarP(&workout, "workout", "w", "",
		"Assign the named workout instead of (or as well as) a meal.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
