package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/commands/options"
	"tableflip.dev/prep/pkg/runner/meals"
	"tableflip.dev/prep/pkg/store"
)

func addMeal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "meal",
		Aliases: []string{"meals"},
		Short:   "Manage the meal catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meals.List{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addMealAdd(cmd)
	addMealRemove(cmd)
	addMealFavorite(cmd)

	topLevel.AddCommand(cmd)
}

func addMealAdd(topLevel *cobra.Command) {
	mo := &options.MealOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a meal to the catalog",
		Example: `
prep meal add Oats -C Breakfast -i oats -i milk -i honey
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a meal name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meals.Add{
				Meal: catalog.Meal{
					Name:        name,
					Category:    catalog.Category(mo.Category),
					Ingredients: mo.Ingredients,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMealArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

func addMealRemove(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:     "rm [name]",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a meal from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a meal name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meals.Remove{Name: name, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addMealFavorite(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:     "fav [name]",
		Aliases: []string{"favorite"},
		Short:   "Toggle a meal's favorite mark",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a meal name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meals.Favorite{Name: name, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
