package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/prep/pkg/catalog"
)

// CategoryOptions selects a meal category.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "C", "",
		"Specify the meal category: Breakfast, Lunch, or Dinner.")
}

// Value returns the selected category.
func (o *CategoryOptions) Value() catalog.Category {
	return catalog.Category(o.Category)
}

// MealOptions captures the fields of a new catalog meal.
type MealOptions struct {
	Category    string
	Ingredients []string
}

// AddMealArgs wires meal editing flags on the provided command.
func AddMealArgs(cmd *cobra.Command, o *MealOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "C", string(catalog.Breakfast),
		"Specify the meal category: Breakfast, Lunch, or Dinner.")
	cmd.Flags().StringArrayVarP(&o.Ingredients, "ingredient", "i", nil,
		"Add an ingredient (repeatable).")
}

// WorkoutOptions captures the fields of a new catalog workout.
type WorkoutOptions struct {
	Type       string
	Activities []string
}

// AddWorkoutArgs wires workout editing flags on the provided command.
func AddWorkoutArgs(cmd *cobra.Command, o *WorkoutOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Specify the workout type, e.g. strength or cardio.")
	cmd.Flags().StringArrayVarP(&o.Activities, "activity", "a", nil,
		"Add an activity (repeatable).")
}
