package service

import (
	"time"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/pkg/dates"
)

// IsDateInRange tests inclusive membership of a date in a colored range.
// Comparison happens on normalized calendar dates, never raw timestamps,
// so an hour or timezone skew on the input cannot shift the day.
func IsDateInRange(date time.Time, r models.ColoredRange) bool {
	start, sok := r.StartDate()
	end, eok := r.EndDate()
	if !sok || !eok {
		return false
	}
	d := dates.Normalize(date)
	return !d.Before(start) && !d.After(end)
}

// IsDateInBasePeriod tests whether the date falls inside the base period at
// the given index. Out-of-bounds indices and periods with unset or invalid
// bounds yield false.
func IsDateInBasePeriod(date time.Time, periods []models.Period, index int) bool {
	if index < 0 || index >= len(periods) {
		return false
	}
	start, end, ok := periods[index].Bounds()
	if !ok {
		return false
	}
	d := dates.Normalize(date)
	return !d.Before(start) && !d.After(end)
}
