package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/grocery"
	"tableflip.dev/prep/pkg/store"
)

func addGrocery(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	flat := false

	cmd := &cobra.Command{
		Use:     "grocery",
		Aliases: []string{"groceries", "shop"},
		Short:   "Build the grocery list for the selected day's week",
		Long: "Collects every ingredient cached on the Sunday-to-Saturday week\n" +
			"containing the selected day, deduplicated and sorted, grouped into\n" +
			"store categories unless --flat is set.",
		Example: `
prep grocery
prep grocery -d 14 -m 2 --flat
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return do.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := grocery.Grocery{
				Key:         do.Key(),
				Flat:        flat,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVar(&flat, "flat", false,
		"Print one flat list instead of store categories.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
