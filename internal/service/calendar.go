package service

import (
	"time"

	"leave-planner-bot/internal/models"
)

// CalendarDay is one cell of a month grid. Day 0 marks a leading blank cell
// before the first of the month; Periods lists the indices of the base
// periods covering the day.
type CalendarDay struct {
	Day     int
	Periods []int
}

// CalendarMonth is one month of the generated grid, Monday-first.
type CalendarMonth struct {
	Name  string
	Year  int
	Month time.Month
	Days  []CalendarDay
}

var polishMonths = [...]string{
	"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
	"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
}

// GenerateCalendarData builds the month grid covering every complete base
// period, from the month of the earliest start to the month of the latest
// end. Returns false when no period has both bounds set.
func GenerateCalendarData(periods []models.Period) ([]CalendarMonth, bool) {
	var minDate, maxDate time.Time
	hasValid := false

	for i := range periods {
		start, end, ok := periods[i].Bounds()
		if !ok {
			continue
		}
		if !hasValid || start.Before(minDate) {
			minDate = start
		}
		if !hasValid || end.After(maxDate) {
			maxDate = end
		}
		hasValid = true
	}
	if !hasValid {
		return nil, false
	}

	first := time.Date(minDate.Year(), minDate.Month(), 1, 0, 0, 0, 0, time.Local)
	last := time.Date(maxDate.Year(), maxDate.Month(), 1, 0, 0, 0, 0, time.Local)

	var months []CalendarMonth
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 1, 0) {
		months = append(months, buildMonth(cur, periods))
	}
	return months, true
}

func buildMonth(firstOfMonth time.Time, periods []models.Period) CalendarMonth {
	year, month := firstOfMonth.Year(), firstOfMonth.Month()
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	// Monday-first offset for the leading blanks.
	lead := int(firstOfMonth.Weekday())
	if lead == 0 {
		lead = 7
	}
	lead--

	days := make([]CalendarDay, 0, lead+daysInMonth)
	for i := 0; i < lead; i++ {
		days = append(days, CalendarDay{})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		var covering []int
		for i := range periods {
			if IsDateInBasePeriod(date, periods, i) {
				covering = append(covering, i)
			}
		}
		days = append(days, CalendarDay{Day: day, Periods: covering})
	}

	return CalendarMonth{
		Name:  polishMonths[month-1],
		Year:  year,
		Month: month,
		Days:  days,
	}
}

// GroupMonthsByPeriod splits the generated months into one block per base
// period, preserving month order. A month belongs to every period that
// covers at least one of its days.
func GroupMonthsByPeriod(months []CalendarMonth) map[int][]CalendarMonth {
	groups := make(map[int][]CalendarMonth)
	for _, m := range months {
		seen := make(map[int]bool)
		for _, d := range m.Days {
			for _, p := range d.Periods {
				if !seen[p] {
					seen[p] = true
					groups[p] = append(groups[p], m)
				}
			}
		}
	}
	return groups
}
