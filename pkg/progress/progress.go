// Package progress tracks monthly completion goals.
package progress

import (
	"math"
	"time"

	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/planner"
)

// DefaultGoal is the monthly goal used when none has been set.
const DefaultGoal = 20

// Goals maps a month to its completion goal.
type Goals map[daykey.MonthKey]int

// Goal returns the month's goal, falling back to DefaultGoal.
func (g Goals) Goal(mk daykey.MonthKey) int {
	if v, ok := g[mk]; ok && v > 0 {
		return v
	}
	return DefaultGoal
}

// Set stores the month's goal. Values below 1 are coerced to 1 here, at
// the input boundary, so an invalid goal is never persisted.
func (g Goals) Set(mk daykey.MonthKey, goal int) {
	if goal < 1 {
		goal = 1
	}
	g[mk] = goal
}

// CompletedCount counts completed days falling in the given month.
func CompletedCount(completed planner.CompletedDays, year int, month time.Month) int {
	n := 0
	for k := range completed {
		if k.Year == year && k.Month == int(month) {
			n++
		}
	}
	return n
}

// Percentage returns value/goal as a whole percent, clamped to 0..100.
// A goal below 1 is floored to 1 to avoid dividing by zero.
func Percentage(value, goal int) int {
	if goal < 1 {
		goal = 1
	}
	pct := int(math.Round(float64(value) / float64(goal) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
