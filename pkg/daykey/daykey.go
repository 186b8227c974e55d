// Package daykey defines the canonical identity for a calendar date.
//
// A date is addressed everywhere in the planner by its Key, rendered as
// "{year}-{month}-{day}" with a 1-based month. The same date always
// produces the same key, no matter which displayed month's grid the user
// selected it from.
package daykey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies a single calendar date.
type Key struct {
	Year  int
	Month int // 1-based, January == 1
	Day   int
}

// Resolve maps a grid cell to its Key. The cell belongs to the month at
// offset (-1, 0, or +1) relative to the displayed month; month/year
// rollover is normalized here. The day is assumed valid for the resolved
// month, the grid builder only emits valid days.
func Resolve(year int, month time.Month, day, offset int) Key {
	m := int(month) + offset
	y := year
	if m < 1 {
		m = 12
		y--
	}
	if m > 12 {
		m = 1
		y++
	}
	return Key{Year: y, Month: m, Day: day}
}

// FromTime returns the Key for a concrete date.
func FromTime(t time.Time) Key {
	return Key{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Parse reads a "{year}-{month}-{day}" key.
func Parse(s string) (Key, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("daykey: malformed key %q", s)
	}
	n := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Key{}, fmt.Errorf("daykey: malformed key %q: %w", s, err)
		}
		n[i] = v
	}
	k := Key{Year: n[0], Month: n[1], Day: n[2]}
	if k.Month < 1 || k.Month > 12 || k.Day < 1 || k.Day > 31 {
		return Key{}, fmt.Errorf("daykey: out of range key %q", s)
	}
	return k, nil
}

func (k Key) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, k.Month, k.Day)
}

// Time returns midnight local time on the keyed date.
func (k Key) Time() time.Time {
	return time.Date(k.Year, time.Month(k.Month), k.Day, 0, 0, 0, 0, time.Local)
}

// MonthKey returns the goal key for the month containing k.
func (k Key) MonthKey() MonthKey {
	return MonthKey{Year: k.Year, Month: k.Month}
}

// MarshalText lets Key serve as a JSON map key in the stored wire format.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a stored map key.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MonthKey identifies a calendar month, rendered as "{year}-{month}" with
// a 1-based month. Used to key monthly goals.
type MonthKey struct {
	Year  int
	Month int
}

// ParseMonth reads a "{year}-{month}" key.
func ParseMonth(s string) (MonthKey, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return MonthKey{}, fmt.Errorf("daykey: malformed month key %q", s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthKey{}, fmt.Errorf("daykey: malformed month key %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthKey{}, fmt.Errorf("daykey: malformed month key %q: %w", s, err)
	}
	if m < 1 || m > 12 {
		return MonthKey{}, fmt.Errorf("daykey: out of range month key %q", s)
	}
	return MonthKey{Year: y, Month: m}, nil
}

func (mk MonthKey) String() string {
	return fmt.Sprintf("%d-%d", mk.Year, mk.Month)
}

// MarshalText lets MonthKey serve as a JSON map key.
func (mk MonthKey) MarshalText() ([]byte, error) {
	return []byte(mk.String()), nil
}

// UnmarshalText parses a stored month key.
func (mk *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*mk = parsed
	return nil
}
