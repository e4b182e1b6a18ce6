package workdays

import (
	"math"
	"time"

	"leave-planner-bot/pkg/dates"
	"leave-planner-bot/pkg/holidays"

	"github.com/sirupsen/logrus"
)

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CalendarDaysInRange returns the inclusive number of calendar days between
// the two inputs (strings in any accepted format or time.Time values).
// Order does not matter. Invalid input yields 0 and a warning.
func CalendarDaysInRange(start, end interface{}) int {
	s, e, ok := dates.NormalizedRange(start, end)
	if !ok {
		logrus.Warnf("invalid date input for calendar day count: %v - %v", start, end)
		return 0
	}
	// Adjacent local midnights are not always 24h apart (DST), so round
	// instead of truncating.
	return int(math.Round(e.Sub(s).Hours()/24)) + 1
}

// WorkingDaysInRange counts days between start and end (inclusive) that are
// neither weekends nor Polish public holidays. An optional predicate narrows
// the count further, e.g. to days inside a base period. Invalid input yields 0.
func WorkingDaysInRange(start, end interface{}, pred ...func(time.Time) bool) int {
	s, e, ok := dates.NormalizedRange(start, end)
	if !ok {
		logrus.Warnf("invalid date input for working day count: %v - %v", start, end)
		return 0
	}

	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) || holidays.IsPolishHoliday(d) {
			continue
		}
		if len(pred) > 0 && pred[0] != nil && !pred[0](d) {
			continue
		}
		count++
	}
	return count
}
