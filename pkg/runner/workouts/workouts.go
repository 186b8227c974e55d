// Package workouts provides runners for the workout catalog.
package workouts

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
		return errors.New("can not list workouts, no persistence")
	}
	s := n.Persistence.LoadState()
	catalog.SortWorkouts(s.Workouts)

	pp := printers.PrettyPrint{}
	pp.Title("Workouts")
	pp.Workouts(s.Workouts...)
	return nil
}

// Add appends a workout to the catalog, or replaces the entry with the
// same name.
type Add struct {
	Workout catalog.Workout

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add workout, no persistence")
	}
	if err := n.Workout.Validate(); err != nil {
		return err
	}

	s := n.Persistence.LoadState()
	if existing, ok := catalog.FindWorkout(s.Workouts, n.Workout.Name); ok {
		n.Workout.Favorite = existing.Favorite
		s.Workouts, _ = catalog.DeleteWorkout(s.Workouts, n.Workout.Name)
	}
	s.Workouts = append(s.Workouts, n.Workout)
	if err := n.Persistence.SaveWorkouts(s.Workouts); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Workouts")
	catalog.SortWorkouts(s.Workouts)
	pp.Workouts(s.Workouts...)
	return nil
}

// Remove deletes a workout from the catalog.
type Remove struct {
	Name string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove workout, no persistence")
	}

	s := n.Persistence.LoadState()
	var ok bool
	if s.Workouts, ok = catalog.DeleteWorkout(s.Workouts, n.Name); !ok {
		return fmt.Errorf("no workout named %q in the catalog", n.Name)
	}
	return n.Persistence.SaveWorkouts(s.Workouts)
}

// Favorite toggles a workout's favorite flag.
type Favorite struct {
	Name string

	Persistence store.Persistence
}

func (n *Favorite) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not favorite workout, no persistence")
	}

	s := n.Persistence.LoadState()
	if !catalog.ToggleWorkoutFavorite(s.Workouts, n.Name) {
		return fmt.Errorf("no workout named %q in the catalog", n.Name)
	}
	return n.Persistence.SaveWorkouts(s.Workouts)
}
