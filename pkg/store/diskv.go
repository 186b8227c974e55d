package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/planner"
	"tableflip.dev/prep/pkg/progress"
)

// Storage keys. These names are the wire format; changing one orphans the
// data stored under the old name.
const (
	KeyMeals       = "mealsData"
	KeyWorkouts    = "workoutsData"
	KeyDayMeals    = "dayMeals"
	KeyDayWorkouts = "dayWorkouts"
	KeyCompleted   = "completedDays"
	KeyGoals       = "monthlyGoals"
)

// State is the whole-application snapshot, loaded once per invocation.
// Every collection is non-nil after LoadState.
type State struct {
	Meals       []catalog.Meal
	Workouts    []catalog.Workout
	DayMeals    planner.DayMeals
	DayWorkouts planner.DayWorkouts
	Completed   planner.CompletedDays
	Goals       progress.Goals
}

// Persistence defines the persistence contract for planner state. Reads
// degrade to empty defaults on missing or corrupt payloads; they never
// fail the caller.
type Persistence interface {
	LoadState() *State
	SaveMeals([]catalog.Meal) error
	SaveWorkouts([]catalog.Workout) error
	SaveDayMeals(planner.DayMeals) error
	SaveDayWorkouts(planner.DayWorkouts) error
	SaveCompleted(planner.CompletedDays) error
	SaveGoals(progress.Goals) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return nil }, // flat layout, six fixed keys
		CacheSizeMax: 1024 * 1024,                          // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

// load unmarshals the key's payload into out, leaving out untouched when
// the key is absent or the payload does not parse.
func (p *persistence) load(key string, out any) {
	val, err := p.d.Read(key)
	if err != nil {
		return
	}
	if err := json.Unmarshal(val, out); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
	}
}

func (p *persistence) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) LoadState() *State {
	s := &State{
		Meals:       []catalog.Meal{},
		Workouts:    []catalog.Workout{},
		DayMeals:    planner.DayMeals{},
		DayWorkouts: planner.DayWorkouts{},
		Completed:   planner.CompletedDays{},
		Goals:       progress.Goals{},
	}
	p.load(KeyMeals, &s.Meals)
	p.load(KeyWorkouts, &s.Workouts)
	p.load(KeyDayMeals, &s.DayMeals)
	p.load(KeyDayWorkouts, &s.DayWorkouts)
	p.load(KeyCompleted, &s.Completed)
	p.load(KeyGoals, &s.Goals)
	return s
}

func (p *persistence) SaveMeals(meals []catalog.Meal) error {
	return p.save(KeyMeals, meals)
}

func (p *persistence) SaveWorkouts(workouts []catalog.Workout) error {
	return p.save(KeyWorkouts, workouts)
}

func (p *persistence) SaveDayMeals(dm planner.DayMeals) error {
	return p.save(KeyDayMeals, dm)
}

func (p *persistence) SaveDayWorkouts(dw planner.DayWorkouts) error {
	return p.save(KeyDayWorkouts, dw)
}

func (p *persistence) SaveCompleted(c planner.CompletedDays) error {
	return p.save(KeyCompleted, c)
}

func (p *persistence) SaveGoals(g progress.Goals) error {
	return p.save(KeyGoals, g)
}
