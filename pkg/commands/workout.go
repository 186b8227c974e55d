package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/workouts"
	"tableflip.dev/prep/pkg/store"
)

func addWorkout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"workouts"},
		Short:   "Manage the workout catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workouts.List{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addWorkoutAdd(cmd)
	addWorkoutRemove(cmd)
	addWorkoutFavorite(cmd)

	topLevel.AddCommand(cmd)
}

func addWorkoutAdd(topLevel *cobra.Command) {
	wo := &options.WorkoutOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a workout to the catalog",
		Example: `
prep workout add "Leg Day" -t strength -a squats -a lunges
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a workout name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workouts.Add{
				Workout: catalog.Workout{
					Name:       name,
					Type:       wo.Type,
					Activities: wo.Activities,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWorkoutArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}

func addWorkoutRemove(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:     "rm [name]",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a workout from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a workout name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workouts.Remove{Name: name, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addWorkoutFavorite(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:     "fav [name]",
		Aliases: []string{"favorite"},
		Short:   "Toggle a workout's favorite mark",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a workout name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workouts.Favorite{Name: name, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
