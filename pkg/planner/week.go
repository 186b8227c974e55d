package planner

import (
	"tableflip.dev/prep/pkg/calendar"
	"tableflip.dev/prep/pkg/daykey"
)

// WeekKeys returns the seven day keys, Sunday through Saturday, of the
// week containing src.
func WeekKeys(src daykey.Key) []daykey.Key {
	week := calendar.Week(src.Time())
	keys := make([]daykey.Key, len(week))
	for i, d := range week {
		keys[i] = daykey.FromTime(d)
	}
	return keys
}

// PlanOverwrite classifies the overwrite risk of copying src's meals
// across its week: willOverwrite is true when any target day, the source
// included, already has a non-empty meal record. The caller decides
// whether to proceed; CopyWeek itself never asks.
func PlanOverwrite(src daykey.Key, dm DayMeals) (willOverwrite bool, targets []daykey.Key) {
	targets = WeekKeys(src)
	for _, k := range targets {
		if p, ok := dm[k]; ok && !p.Empty() {
			return true, targets
		}
	}
	return false, targets
}

// CopyWeek writes a copy of src's full meal record, all three categories
// with their cached ingredients, to every day of src's week,
// unconditionally replacing whatever was there. Workout assignments are
// never copied. Returns the seven target keys.
func (dm DayMeals) CopyWeek(src daykey.Key) []daykey.Key {
	rec := dm[src]
	targets := WeekKeys(src)
	for _, k := range targets {
		if rec.Empty() {
			delete(dm, k)
			continue
		}
		dm[k] = rec.Clone()
	}
	return targets
}
