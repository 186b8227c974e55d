package planner

import (
	"encoding/json"
	"sort"

	"tableflip.dev/prep/pkg/daykey"
)

// CompletedDays is the set of days the user marked done. Membership is
// independent of whether the day has any plan.
type CompletedDays map[daykey.Key]struct{}

// Has reports membership.
func (c CompletedDays) Has(k daykey.Key) bool {
	_, ok := c[k]
	return ok
}

// Toggle flips membership for k. Toggling twice restores the set.
func (c CompletedDays) Toggle(k daykey.Key) {
	if c.Has(k) {
		delete(c, k)
		return
	}
	c[k] = struct{}{}
}

// MarshalJSON writes the stored format: a sorted array of day keys.
func (c CompletedDays) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return json.Marshal(keys)
}

// UnmarshalJSON reads the stored array format, skipping malformed keys.
func (c *CompletedDays) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	set := make(CompletedDays, len(keys))
	for _, s := range keys {
		k, err := daykey.Parse(s)
		if err != nil {
			continue
		}
		set[k] = struct{}{}
	}
	*c = set
	return nil
}
