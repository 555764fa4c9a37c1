package planner

import "time"

// CalendarCell is one day slot in a month grid. Other-month padding cells
// carry no markers.
type CalendarCell struct {
	Day         int  `json:"day"`
	OtherMonth  bool `json:"otherMonth"`
	IsToday     bool `json:"isToday"`
	InTripRange bool `json:"inTripRange"`
	HasDeadline bool `json:"hasDeadline"`
}

// MonthGrid is a row-major month projection: cells start at the Sunday
// column of the month's first day and are padded so the total count is
// always a multiple of seven.
type MonthGrid struct {
	Year  int            `json:"year"`
	Month time.Month     `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// BuildMonthGrid projects a trip's date range and todo deadlines onto the
// given month. The caller supplies today so the projection stays a pure
// function of its inputs.
func BuildMonthGrid(year int, month time.Month, trip Trip, today time.Time) MonthGrid {
	location := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, location)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	daysInPrevMonth := first.AddDate(0, 0, -1).Day()
	leading := int(first.Weekday())

	tripStart, hasStart := parseDay(trip.Date, location)
	tripEnd, hasEnd := parseDay(trip.EndDate, location)

	deadlines := make(map[string]struct{})
	for _, todo := range trip.Todos {
		if day, ok := parseDay(todo.Deadline, location); ok {
			deadlines[day.Format(DateLayout)] = struct{}{}
		}
	}

	grid := MonthGrid{Year: year, Month: month}
	for i := leading - 1; i >= 0; i-- {
		grid.Cells = append(grid.Cells, CalendarCell{Day: daysInPrevMonth - i, OtherMonth: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, location)
		cell := CalendarCell{Day: day}
		cell.IsToday = sameDay(date, today)
		if hasStart && hasEnd {
			cell.InTripRange = !date.Before(tripStart) && !date.After(tripEnd)
		} else if hasStart {
			cell.InTripRange = date.Equal(tripStart)
		}
		if _, ok := deadlines[date.Format(DateLayout)]; ok {
			cell.HasDeadline = true
		}
		grid.Cells = append(grid.Cells, cell)
	}

	trailing := (7 - len(grid.Cells)%7) % 7
	for day := 1; day <= trailing; day++ {
		grid.Cells = append(grid.Cells, CalendarCell{Day: day, OtherMonth: true})
	}

	return grid
}

func parseDay(dateStr string, location *time.Location) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(DateLayout, dateStr, location)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
