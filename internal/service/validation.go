package service

import (
	"fmt"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/pkg/dates"

	"github.com/sirupsen/logrus"
)

// ValidatePeriods checks a list of base periods for internal consistency:
// parseable YYYY-MM-DD bounds, start strictly before end, and pairwise
// non-overlap. It returns the first violation found, scanning periods in
// index order and comparing each against all earlier ones. Periods with an
// empty bound are treated as not yet defined and skipped.
func ValidatePeriods(periods []models.Period) models.ValidationResult {
	for i := range periods {
		start, end := periods[i].Start, periods[i].End

		if start != "" && !dates.IsValidISODate(start) {
			logrus.Warnf("invalid period start date: %q", start)
			return models.ValidationResult{
				ErrorMessage: fmt.Sprintf("Błędna data początkowa (Rok %d)", i+1),
				ErrorIndex:   i,
				ErrorField:   "start",
			}
		}
		if end != "" && !dates.IsValidISODate(end) {
			logrus.Warnf("invalid period end date: %q", end)
			return models.ValidationResult{
				ErrorMessage: fmt.Sprintf("Błędna data końcowa (Rok %d)", i+1),
				ErrorIndex:   i,
				ErrorField:   "end",
			}
		}

		if start == "" || end == "" {
			continue
		}

		iStart, _ := dates.Parse(start)
		iEnd, _ := dates.Parse(end)

		if !iStart.Before(iEnd) {
			return models.ValidationResult{
				ErrorMessage: fmt.Sprintf("Błąd: Data początkowa musi być wcześniejsza niż końcowa (Rok %d)", i+1),
				ErrorIndex:   i,
				ErrorField:   "end",
			}
		}

		for j := 0; j < i; j++ {
			if !periods[j].IsComplete() {
				continue
			}
			jStart, jok := dates.Parse(periods[j].Start)
			jEnd, eok := dates.Parse(periods[j].End)
			if !jok || !eok {
				continue
			}

			if !iStart.After(jEnd) && !iEnd.Before(jStart) {
				return models.ValidationResult{
					ErrorMessage: fmt.Sprintf("Błąd: Okresy nie mogą się nakładać (Rok %d i Rok %d)", i+1, j+1),
					ErrorIndex:   i,
				}
			}
		}
	}

	return models.ValidResult()
}
