package planner

import (
	"fmt"
	"math"
	"time"
)

// GrowthStage describes one tier of the progress feedback scale. Stages are
// keyed by the completion percentage threshold at which they begin.
type GrowthStage struct {
	Threshold int    `json:"threshold"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Message   string `json:"message"`
}

var growthStages = []GrowthStage{
	{Threshold: 0, Label: "seed", Icon: "🌱", Message: "Add tasks to start preparing for your trip!"},
	{Threshold: 25, Label: "sprout", Icon: "🌿", Message: "A sprout appeared! Keep it up!"},
	{Threshold: 50, Label: "sapling", Icon: "🌲", Message: "Growing steadily! Halfway there!"},
	{Threshold: 75, Label: "blossom", Icon: "🌸", Message: "The flowers are blooming! Almost there!"},
	{Threshold: 100, Label: "tree", Icon: "🌳", Message: "All set! Have a great trip!"},
}

// Progress returns the completion percentage of a todo list, rounded to the
// nearest integer and defined as 0 for an empty list.
func Progress(todos []Todo) int {
	if len(todos) == 0 {
		return 0
	}
	done := 0
	for _, todo := range todos {
		if todo.Done {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(todos))))
}

// PackingProgress returns the checked percentage of a packing list with the
// same rounding as Progress.
func PackingProgress(items []PackingItem) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	return int(math.Round(100 * float64(checked) / float64(len(items))))
}

// PackingByCategory groups packing items by category for display,
// keeping each group's stored order.
func PackingByCategory(items []PackingItem) map[string][]PackingItem {
	groups := make(map[string][]PackingItem)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// StageFor maps a completion percentage onto the growth scale: the stage
// with the highest threshold not exceeding pct. Thresholds are inclusive at
// the lower bound of each tier.
func StageFor(pct int) GrowthStage {
	stage := growthStages[0]
	for _, candidate := range growthStages {
		if pct >= candidate.Threshold {
			stage = candidate
		}
	}
	return stage
}

// DaysUntil returns the whole calendar days between today's local midnight
// and the target date's local midnight, using ceiling rounding. It reports
// ok=false for empty or unparseable input.
func DaysUntil(dateStr string, today time.Time) (int, bool) {
	if dateStr == "" {
		return 0, false
	}
	target, err := time.ParseInLocation(DateLayout, dateStr, today.Location())
	if err != nil {
		return 0, false
	}
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	days := math.Ceil(target.Sub(todayMidnight).Hours() / 24)
	return int(days), true
}

// Countdown formats a day count for display: days remaining before the
// date, a marker on the day itself, or days elapsed since it. Unknown dates
// format as the empty string.
func Countdown(days int, known bool) string {
	switch {
	case !known:
		return ""
	case days > 0:
		return fmt.Sprintf("%d days remaining", days)
	case days == 0:
		return "today!"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// Reminder statuses derived from the reminder date relative to today.
const (
	ReminderStatusOverdue  = "overdue"
	ReminderStatusUpcoming = "upcoming"
	ReminderStatusNone     = ""
)

// ReminderStatus classifies a reminder as overdue (date passed) or upcoming
// (due within the next three days).
func ReminderStatus(reminder Reminder, today time.Time) string {
	days, ok := DaysUntil(reminder.Date, today)
	if !ok {
		return ReminderStatusNone
	}
	switch {
	case days < 0:
		return ReminderStatusOverdue
	case days > 0 && days <= 3:
		return ReminderStatusUpcoming
	default:
		return ReminderStatusNone
	}
}
