package planner

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DateLayout is the calendar-day format used by every date field in the document.
const DateLayout = "2006-01-02"

// Priority enumerates todo urgency levels.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var (
	// ErrValidation is the base error for rejected operations; callers can
	// match it with errors.Is regardless of the specific field at fault.
	ErrValidation = errors.New("planner: validation failed")

	ErrEmptyTripName     = fmt.Errorf("%w: trip name must not be empty", ErrValidation)
	ErrEndDateBeforeDate = fmt.Errorf("%w: end date must not precede start date", ErrValidation)
	ErrEmptyTodoText     = fmt.Errorf("%w: todo text must not be empty", ErrValidation)
	ErrEmptyPlaceName    = fmt.Errorf("%w: place name must not be empty", ErrValidation)
	ErrEmptyDiaryTitle   = fmt.Errorf("%w: diary title must not be empty", ErrValidation)
	ErrEmptyScheduleText = fmt.Errorf("%w: schedule text must not be empty", ErrValidation)
	ErrEmptyTicketTitle  = fmt.Errorf("%w: ticket title must not be empty", ErrValidation)
	ErrEmptyPackingName  = fmt.Errorf("%w: packing item name must not be empty", ErrValidation)
	ErrEmptyExpenseTitle = fmt.Errorf("%w: expense title must not be empty", ErrValidation)
	ErrNegativeAmount    = fmt.Errorf("%w: expense amount must not be negative", ErrValidation)
	ErrEmptyPollQuestion = fmt.Errorf("%w: poll question must not be empty", ErrValidation)
	ErrEmptyPollOptions  = fmt.Errorf("%w: poll needs at least one option", ErrValidation)
	ErrEmptyReminderText = fmt.Errorf("%w: reminder text must not be empty", ErrValidation)
	ErrEmptyMemoText     = fmt.Errorf("%w: memo text must not be empty", ErrValidation)
	ErrUnknownTemplate   = fmt.Errorf("%w: unknown packing template", ErrValidation)
)

// AppData is the root persisted document. Trips and memos keep insertion
// order; nothing reorders them implicitly.
type AppData struct {
	Trips      []Trip       `json:"trips"`
	Memos      []StickyMemo `json:"memos"`
	SearchMemo string       `json:"searchMemo"`
	DarkMode   bool         `json:"darkMode"`
}

// DefaultAppData returns the empty document substituted on first run and
// whenever the stored payload cannot be read.
func DefaultAppData() AppData {
	return AppData{
		Trips:      []Trip{},
		Memos:      []StickyMemo{},
		SearchMemo: "",
		DarkMode:   false,
	}
}

// Trip is the top-level planning unit. Every sub-collection is owned
// exclusively by its trip; sub-entities carry no back-reference.
type Trip struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Date      string         `json:"date,omitempty"`
	EndDate   string         `json:"endDate,omitempty"`
	Members   string         `json:"members,omitempty"`
	Budget    string         `json:"budget,omitempty"`
	CreatedAt string         `json:"createdAt"`
	Todos     []Todo         `json:"todos"`
	Places    []Place        `json:"places"`
	Diary     []DiaryEntry   `json:"diary"`
	Schedule  []ScheduleItem `json:"schedule"`
	Tickets   []Ticket       `json:"tickets"`
	Packing   []PackingItem  `json:"packing"`
	Expenses  []Expense      `json:"expenses"`
	Polls     []Poll         `json:"polls"`
	Reminders []Reminder     `json:"reminders"`
}

type Todo struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Deadline string   `json:"deadline,omitempty"`
	Priority Priority `json:"priority"`
	Done     bool     `json:"done"`
}

type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Memo     string   `json:"memo,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Fav      bool     `json:"fav"`
}

type DiaryEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Photo   string `json:"photo,omitempty"`
}

type ScheduleItem struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Memo      string `json:"memo,omitempty"`
}

type Ticket struct {
	ID    string `json:"id"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title"`
	Code  string `json:"code,omitempty"`
	Date  string `json:"date,omitempty"`
	Memo  string `json:"memo,omitempty"`
	Image string `json:"image,omitempty"`
}

type PackingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Checked  bool   `json:"checked"`
}

type Expense struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   int    `json:"amount"`
	Category string `json:"category,omitempty"`
	Payer    string `json:"payer,omitempty"`
	Date     string `json:"date,omitempty"`
}

type Poll struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

type PollOption struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type Reminder struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date,omitempty"`
}

// StickyMemo is a global board note, independent of any trip.
type StickyMemo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ParseRoster splits the free-text members field into trimmed non-empty
// names. Both the ASCII comma and the ideographic comma act as separators.
func ParseRoster(members string) []string {
	if strings.TrimSpace(members) == "" {
		return nil
	}
	fields := strings.FieldsFunc(members, func(r rune) bool {
		return r == ',' || r == '、'
	})
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.TrimSpace(field)
		if trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// ParseBudget reads the free-text budget field as an integer amount,
// treating anything unparseable as zero.
func ParseBudget(budget string) int {
	value, err := strconv.Atoi(strings.TrimSpace(budget))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// SortedTodos returns a display-ordered copy: undone before done, then by
// priority high > medium > low. The stored order is left untouched.
func SortedTodos(todos []Todo) []Todo {
	sorted := make([]Todo, len(todos))
	copy(sorted, todos)
	rank := map[Priority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Done != sorted[j].Done {
			return !sorted[i].Done
		}
		ri, ok := rank[sorted[i].Priority]
		if !ok {
			ri = 1
		}
		rj, ok := rank[sorted[j].Priority]
		if !ok {
			rj = 1
		}
		return ri < rj
	})
	return sorted
}

// SortedDiary returns a copy ordered newest date first.
func SortedDiary(entries []DiaryEntry) []DiaryEntry {
	sorted := make([]DiaryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// SortedExpenses returns a copy ordered newest date first.
func SortedExpenses(expenses []Expense) []Expense {
	sorted := make([]Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// SortedReminders returns a copy ordered earliest date first.
func SortedReminders(reminders []Reminder) []Reminder {
	sorted := make([]Reminder, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
