package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/done"
	"tableflip.dev/prep/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete", "completed"},
		Short:   "Toggle a day's completed mark",
		Example: `
prep done
prep done -d 14 -m 2
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return do.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := done.Done{
				Key:         do.Key(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
