package planner

import (
	"testing"
	"time"
)

func TestProgressRoundsToNearestInteger(t *testing.T) {
	tests := []struct {
		name     string
		done     int
		total    int
		expected int
	}{
		{name: "empty list", done: 0, total: 0, expected: 0},
		{name: "none done", done: 0, total: 4, expected: 0},
		{name: "one third", done: 1, total: 3, expected: 33},
		{name: "two thirds", done: 2, total: 3, expected: 67},
		{name: "half", done: 1, total: 2, expected: 50},
		{name: "all done", done: 5, total: 5, expected: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			todos := make([]Todo, 0, tc.total)
			for i := 0; i < tc.total; i++ {
				todos = append(todos, Todo{Done: i < tc.done})
			}
			if got := Progress(todos); got != tc.expected {
				t.Fatalf("expected %d%%, got %d%%", tc.expected, got)
			}
		})
	}
}

func TestStageForThresholds(t *testing.T) {
	tests := []struct {
		pct   int
		label string
	}{
		{pct: 0, label: "seed"},
		{pct: 24, label: "seed"},
		{pct: 25, label: "sprout"},
		{pct: 49, label: "sprout"},
		{pct: 50, label: "sapling"},
		{pct: 74, label: "sapling"},
		{pct: 75, label: "blossom"},
		{pct: 99, label: "blossom"},
		{pct: 100, label: "tree"},
	}

	for _, tc := range tests {
		if got := StageFor(tc.pct); got.Label != tc.label {
			t.Fatalf("pct %d: expected stage %s, got %s", tc.pct, tc.label, got.Label)
		}
	}
}

func TestStageForCarriesIconAndMessage(t *testing.T) {
	stage := StageFor(100)
	if stage.Icon != "🌳" {
		t.Fatalf("unexpected icon for full completion: %q", stage.Icon)
	}
	if stage.Message == "" {
		t.Fatalf("every stage must carry a message")
	}
}

func TestDaysUntilUsesCalendarDays(t *testing.T) {
	// Late in the evening, tomorrow is still one whole day away.
	today := time.Date(2026, time.June, 9, 23, 30, 0, 0, time.UTC)

	days, ok := DaysUntil("2026-06-10", today)
	if !ok || days != 1 {
		t.Fatalf("expected 1 day, got %d (ok=%v)", days, ok)
	}

	days, ok = DaysUntil("2026-06-09", today)
	if !ok || days != 0 {
		t.Fatalf("expected 0 days for the same date, got %d (ok=%v)", days, ok)
	}

	days, ok = DaysUntil("2026-06-07", today)
	if !ok || days != -2 {
		t.Fatalf("expected -2 days for a past date, got %d (ok=%v)", days, ok)
	}
}

func TestDaysUntilReportsUnknownForBadInput(t *testing.T) {
	today := time.Date(2026, time.June, 9, 12, 0, 0, 0, time.UTC)

	if _, ok := DaysUntil("", today); ok {
		t.Fatalf("empty date must report unknown")
	}
	if _, ok := DaysUntil("someday", today); ok {
		t.Fatalf("unparseable date must report unknown")
	}
}

func TestCountdownFormatting(t *testing.T) {
	if got := Countdown(3, true); got != "3 days remaining" {
		t.Fatalf("unexpected future countdown: %q", got)
	}
	if got := Countdown(0, true); got != "today!" {
		t.Fatalf("unexpected same-day countdown: %q", got)
	}
	if got := Countdown(-2, true); got != "2 days ago" {
		t.Fatalf("unexpected past countdown: %q", got)
	}
	if got := Countdown(5, false); got != "" {
		t.Fatalf("unknown date must format empty, got %q", got)
	}
}

func TestPackingProgress(t *testing.T) {
	items := []PackingItem{
		{Checked: true},
		{Checked: false},
		{Checked: true},
	}
	if got := PackingProgress(items); got != 67 {
		t.Fatalf("expected 67%%, got %d%%", got)
	}
	if got := PackingProgress(nil); got != 0 {
		t.Fatalf("empty list must report 0%%, got %d%%", got)
	}
}

func TestPackingByCategoryKeepsStoredOrder(t *testing.T) {
	items := []PackingItem{
		{ID: "1", Name: "Wallet", Category: "valuables"},
		{ID: "2", Name: "Charger", Category: "electronics"},
		{ID: "3", Name: "Phone", Category: "valuables"},
	}

	groups := PackingByCategory(items)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	valuables := groups["valuables"]
	if len(valuables) != 2 || valuables[0].Name != "Wallet" || valuables[1].Name != "Phone" {
		t.Fatalf("groups must keep stored order: %#v", valuables)
	}
}

func TestReminderStatusClassification(t *testing.T) {
	today := time.Date(2026, time.June, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{name: "yesterday is overdue", date: "2026-06-08", expected: ReminderStatusOverdue},
		{name: "today is neither", date: "2026-06-09", expected: ReminderStatusNone},
		{name: "tomorrow is upcoming", date: "2026-06-10", expected: ReminderStatusUpcoming},
		{name: "three days out is upcoming", date: "2026-06-12", expected: ReminderStatusUpcoming},
		{name: "four days out is neither", date: "2026-06-13", expected: ReminderStatusNone},
		{name: "no date is neither", date: "", expected: ReminderStatusNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ReminderStatus(Reminder{Text: "x", Date: tc.date}, today)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
