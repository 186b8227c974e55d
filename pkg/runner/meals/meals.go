// Package meals provides runners for the meal catalog.
package meals

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/printers"
	"tableflip.dev/prep/pkg/store"
)

// List prints the catalog, favorites first.
type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list meals, no persistence")
	}
	s := n.Persistence.LoadState()
	catalog.SortMeals(s.Meals)

	pp := printers.PrettyPrint{}
	pp.Title("Meals")
	pp.Meals(s.Meals...)
	return nil
}

// Add appends a meal to the catalog, or replaces the entry with the same
// name. Day plans reference meals by name, so a replaced entry keeps its
// links while a renamed one orphans them.
type Add struct {
	Meal catalog.Meal

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add meal, no persistence")
	}
	if err := n.Meal.Validate(); err != nil {
		return err
	}

	s := n.Persistence.LoadState()
	if existing, ok := catalog.FindMeal(s.Meals, n.Meal.Name); ok {
		n.Meal.Favorite = existing.Favorite
		s.Meals, _ = catalog.DeleteMeal(s.Meals, n.Meal.Name)
	}
	s.Meals = append(s.Meals, n.Meal)
	if err := n.Persistence.SaveMeals(s.Meals); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Meals")
	catalog.SortMeals(s.Meals)
	pp.Meals(s.Meals...)
	return nil
}

// Remove deletes a meal from the catalog. Day plans that reference it
// keep their cached names and ingredients.
type Remove struct {
	Name string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove meal, no persistence")
	}

	s := n.Persistence.LoadState()
	var ok bool
	if s.Meals, ok = catalog.DeleteMeal(s.Meals, n.Name); !ok {
		return fmt.Errorf("no meal named %q in the catalog", n.Name)
	}
	return n.Persistence.SaveMeals(s.Meals)
}

// Favorite toggles a meal's favorite flag.
type Favorite struct {
	Name string

	Persistence store.Persistence
}

func (n *Favorite) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not favorite meal, no persistence")
	}

	s := n.Persistence.LoadState()
	if !catalog.ToggleMealFavorite(s.Meals, n.Name) {
		return fmt.Errorf("no meal named %q in the catalog", n.Name)
	}
	return n.Persistence.SaveMeals(s.Meals)
}
