package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/prep/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "prep",
		Short: base.Wrap80("Meal and workout planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCal(topLevel)
	addPlan(topLevel)
	addClear(topLevel)
	addDone(topLevel)
	addGoal(topLevel)
	addGrocery(topLevel)
	addWeek(topLevel)
	addMeal(topLevel)
	addWorkout(topLevel)
	addVersion(topLevel)
}
