package service

import (
	"time"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/pkg/dates"
	"leave-planner-bot/pkg/holidays"
	"leave-planner-bot/pkg/workdays"
)

// ClickOutcome is the result of resolving one day click. Ranges is the full
// new range set (unchanged slice when nothing happened), Selection the new
// pending-selection state, ActiveType the category that stays active.
// Message carries a user-facing rejection (cross-period selection). A non-nil
// LabelRequest suspends the commit until the caller supplies a label.
type ClickOutcome struct {
	Ranges       []models.ColoredRange
	Selection    models.RangeSelection
	ActiveType   string
	Message      string
	LabelRequest *LabelRequest
	Changed      bool
}

// LabelRequest is a suspended commit for categories that ask for a label
// (Staże, Kursy). Commit applies the same split the immediate path would,
// stamping the label on every emitted segment.
type LabelRequest struct {
	ChatID int64
	Start  time.Time
	End    time.Time
	Item   models.LegendItem

	ranges []models.ColoredRange
}

// Commit finalizes the suspended gesture. The label may be empty.
func (lr *LabelRequest) Commit(label string) []models.ColoredRange {
	return appendSplitRanges(lr.ChatID, lr.ranges, lr.Start, lr.End, lr.Item, label)
}

// HandleDayClick resolves a single day click against the current range set.
// The transition logic, in order:
//  1. weekend/holiday clicks are ignored unless the active category is special;
//  2. a special category toggles a one-day range for the clicked date;
//  3. with no pending selection, a click inside an existing range deletes it;
//  4. with no active category, nothing happens;
//  5. the first click records a pending start;
//  6. the second click commits the ordered selection, unless its endpoints
//     straddle the base-period boundary.
//
// The function never mutates its inputs; callers persist Outcome.Ranges when
// Changed is set.
func HandleDayClick(
	chatID int64,
	date time.Time,
	ranges []models.ColoredRange,
	activeType string,
	sel models.RangeSelection,
	inBasePeriod func(time.Time) bool,
) ClickOutcome {
	date = dates.Normalize(date)
	item, hasItem := models.FindLegendItem(activeType)
	special := hasItem && item.Special

	if (workdays.IsWeekend(date) || holidays.IsPolishHoliday(date)) && !special {
		return ClickOutcome{Ranges: ranges, Selection: sel, ActiveType: activeType}
	}

	if special {
		return toggleSpecialRange(chatID, date, ranges, item, sel, activeType)
	}

	if !sel.Pending() {
		if idx := findRangeAt(date, ranges, activeType); idx >= 0 {
			newRanges := make([]models.ColoredRange, 0, len(ranges)-1)
			newRanges = append(newRanges, ranges[:idx]...)
			newRanges = append(newRanges, ranges[idx+1:]...)
			return ClickOutcome{Ranges: newRanges, Selection: sel, ActiveType: activeType, Changed: true}
		}
	}

	if !hasItem {
		return ClickOutcome{Ranges: ranges, Selection: sel, ActiveType: activeType}
	}

	if !sel.Pending() {
		start := date
		return ClickOutcome{
			Ranges:     ranges,
			Selection:  models.RangeSelection{Start: &start},
			ActiveType: activeType,
		}
	}

	finalStart, finalEnd := *sel.Start, date
	if finalEnd.Before(finalStart) {
		finalStart, finalEnd = finalEnd, finalStart
	}

	// A colored range must not straddle a base-period boundary.
	if inBasePeriod != nil && inBasePeriod(finalStart) != inBasePeriod(finalEnd) {
		return ClickOutcome{
			Ranges:  ranges,
			Message: "Nie można zaznaczyć zakresu, który przekracza granicę okresów podstawowych.",
		}
	}

	if item.AskLabel {
		return ClickOutcome{
			Ranges: ranges,
			LabelRequest: &LabelRequest{
				ChatID: chatID,
				Start:  finalStart,
				End:    finalEnd,
				Item:   item,
				ranges: ranges,
			},
		}
	}

	newRanges := appendSplitRanges(chatID, ranges, finalStart, finalEnd, item, "")
	return ClickOutcome{Ranges: newRanges, Changed: true}
}

// toggleSpecialRange inserts or removes a one-day special range for the
// clicked date. The selection state is never touched and overlap with
// non-special ranges is never checked.
func toggleSpecialRange(
	chatID int64,
	date time.Time,
	ranges []models.ColoredRange,
	item models.LegendItem,
	sel models.RangeSelection,
	activeType string,
) ClickOutcome {
	for i, r := range ranges {
		if !r.Special || r.Type != item.Label {
			continue
		}
		start, ok := r.StartDate()
		if !ok || !dates.SameDay(start, date) {
			continue
		}
		newRanges := make([]models.ColoredRange, 0, len(ranges)-1)
		newRanges = append(newRanges, ranges[:i]...)
		newRanges = append(newRanges, ranges[i+1:]...)
		return ClickOutcome{Ranges: newRanges, Selection: sel, ActiveType: activeType, Changed: true}
	}

	newRanges := append(append([]models.ColoredRange{}, ranges...),
		models.NewColoredRange(chatID, date, date, item, ""))
	return ClickOutcome{Ranges: newRanges, Selection: sel, ActiveType: activeType, Changed: true}
}

// findRangeAt returns the index of the first range containing the date.
// Special ranges match only when their category equals the active one.
func findRangeAt(date time.Time, ranges []models.ColoredRange, activeType string) int {
	for i, r := range ranges {
		if r.Special && r.Type != activeType {
			continue
		}
		if IsDateInRange(date, r) {
			return i
		}
	}
	return -1
}

// appendSplitRanges commits the selection [start, end], splitting it into
// maximal segments of days not already covered by any existing range.
// Existing ranges always win; the new category only fills the gaps. The
// gesture may emit zero ranges (fully absorbed) or one per free segment.
func appendSplitRanges(
	chatID int64,
	ranges []models.ColoredRange,
	start, end time.Time,
	item models.LegendItem,
	label string,
) []models.ColoredRange {
	newRanges := append([]models.ColoredRange{}, ranges...)

	var segStart *time.Time
	prev := start
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		occupied := false
		for _, r := range ranges {
			if IsDateInRange(d, r) {
				occupied = true
				break
			}
		}

		if !occupied {
			if segStart == nil {
				s := d
				segStart = &s
			}
		} else if segStart != nil {
			newRanges = append(newRanges, models.NewColoredRange(chatID, *segStart, prev, item, label))
			segStart = nil
		}
		prev = d
	}
	if segStart != nil {
		newRanges = append(newRanges, models.NewColoredRange(chatID, *segStart, end, item, label))
	}

	return newRanges
}
