package planner

import (
	"encoding/json"
	"testing"

	"tableflip.dev/prep/pkg/daykey"
)

func TestToggleTwiceRestoresSet(t *testing.T) {
	k := daykey.Key{Year: 2024, Month: 2, Day: 14}
	c := CompletedDays{}

	c.Toggle(k)
	if !c.Has(k) {
		t.Fatalf("expected key after first toggle")
	}
	c.Toggle(k)
	if c.Has(k) || len(c) != 0 {
		t.Fatalf("expected original set after second toggle, got %#v", c)
	}
}

func TestCompletedDaysJSONFormat(t *testing.T) {
	c := CompletedDays{}
	c.Toggle(daykey.Key{Year: 2024, Month: 2, Day: 14})
	c.Toggle(daykey.Key{Year: 2024, Month: 1, Day: 3})

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	// Stored format is a sorted string array.
	if string(data) != `["2024-1-3","2024-2-14"]` {
		t.Fatalf("unexpected payload: %s", data)
	}

	var back CompletedDays
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(back) != 2 || !back.Has(daykey.Key{Year: 2024, Month: 2, Day: 14}) {
		t.Fatalf("round trip changed set: %#v", back)
	}
}

func TestCompletedDaysSkipsMalformedKeys(t *testing.T) {
	var c CompletedDays
	if err := json.Unmarshal([]byte(`["2024-2-14","garbage"]`), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected malformed key skipped, got %#v", c)
	}
}
