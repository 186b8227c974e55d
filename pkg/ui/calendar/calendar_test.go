package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestRenderFebruary2024(t *testing.T) {
	month := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	out := Render(month, nil, Options{ShowHeader: true})

	lines := strings.Split(out, "\n")
	// Header plus five whole weeks.
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("missing weekday header: %q", lines[0])
	}
	// The first row starts with January's overflow days.
	if !strings.HasPrefix(lines[1], "28 29 30 31  1") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	// The last row ends with March's overflow days.
	if !strings.HasSuffix(lines[5], "29  1  2") {
		t.Fatalf("unexpected last row: %q", lines[5])
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if out := Render(time.Time{}, nil, Options{}); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}

func TestRenderRowWidth(t *testing.T) {
	month := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.Local)
	out := Render(month, nil, Options{})
	// Seven two-character cells joined by single spaces.
	for _, line := range strings.Split(out, "\n") {
		if got := len([]rune(line)); got != 20 {
			t.Fatalf("unexpected row width %d: %q", got, line)
		}
	}
}
