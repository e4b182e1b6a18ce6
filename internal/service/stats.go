package service

import (
	"fmt"
	"sort"
	"strings"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/pkg/dates"
	"leave-planner-bot/pkg/workdays"
)

// GroupAndSummarizeRanges aggregates the colored ranges that intersect the
// base period [periodStart, periodEnd]. Ranges are grouped by category in
// first-seen order. Special (duty) ranges appear in their group but are
// excluded from the colored working-day total, which only counts painted
// working days. Invariant: BasicPeriodDays + ColoredRangeDays == TotalWorkingDays.
func GroupAndSummarizeRanges(ranges []models.ColoredRange, periodStart, periodEnd string) models.GroupedRangeResult {
	pStart, pEnd, ok := dates.NormalizedRange(periodStart, periodEnd)

	var filtered []models.ColoredRange
	if ok {
		for _, r := range ranges {
			rStart, sok := r.StartDate()
			rEnd, eok := r.EndDate()
			if !sok || !eok {
				continue
			}
			if !rStart.After(pEnd) && !rEnd.Before(pStart) {
				filtered = append(filtered, r)
			}
		}
	}

	var grouped []models.RangeGroup
	index := make(map[string]int)
	for _, r := range filtered {
		i, seen := index[r.Type]
		if !seen {
			index[r.Type] = len(grouped)
			grouped = append(grouped, models.RangeGroup{Type: r.Type})
			i = len(grouped) - 1
		}
		grouped[i].Ranges = append(grouped[i].Ranges, r)
	}

	totalWorkingDays := workdays.WorkingDaysInRange(periodStart, periodEnd)
	coloredRangeDays := 0
	for _, r := range filtered {
		if r.Special {
			continue
		}
		coloredRangeDays += workdays.WorkingDaysInRange(r.Start, r.End)
	}

	return models.GroupedRangeResult{
		Grouped:          grouped,
		TotalWorkingDays: totalWorkingDays,
		ColoredRangeDays: coloredRangeDays,
		BasicPeriodDays:  totalWorkingDays - coloredRangeDays,
	}
}

// WorkingDaysByType tallies working days per category, skipping special
// ranges. Returns the per-type map and the grand total.
func WorkingDaysByType(ranges []models.ColoredRange) (map[string]int, int) {
	byType := make(map[string]int)
	total := 0
	for _, r := range ranges {
		if r.Special {
			continue
		}
		days := workdays.WorkingDaysInRange(r.Start, r.End)
		byType[r.Type] += days
		total += days
	}
	return byType, total
}

// FormatStatsText renders the aggregation as deterministic plain text for
// the clipboard/report: the base-period summary line followed by one line
// per category with its ranges in chronological order and the working-day
// subtotal.
func FormatStatsText(grouped []models.RangeGroup, totalWorkingDays, coloredRangeDays int) string {
	basicPeriodDays := totalWorkingDays - coloredRangeDays

	var b strings.Builder
	fmt.Fprintf(&b, "Okres podstawowy ilość dni: %d - %d = %d", totalWorkingDays, coloredRangeDays, basicPeriodDays)

	for _, group := range grouped {
		sorted := SortRangesChronologically(group.Ranges)

		totalDays := 0
		parts := make([]string, 0, len(sorted))
		for _, r := range sorted {
			if !r.Special {
				totalDays += workdays.WorkingDaysInRange(r.Start, r.End)
			}
			if r.Start == r.End {
				parts = append(parts, r.Start)
			} else {
				parts = append(parts, fmt.Sprintf("%s-%s", r.Start, r.End))
			}
		}

		fmt.Fprintf(&b, "\n%s: %s = %d dni roboczych", group.Type, strings.Join(parts, ", "), totalDays)
	}

	return b.String()
}

// SortRangesChronologically returns a copy of the ranges ordered by start
// date. Ranges with unparseable starts sort last, in input order.
func SortRangesChronologically(ranges []models.ColoredRange) []models.ColoredRange {
	sorted := append([]models.ColoredRange{}, ranges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, iok := sorted[i].StartDate()
		dj, jok := sorted[j].StartDate()
		if !iok || !jok {
			return iok
		}
		return di.Before(dj)
	})
	return sorted
}
