package service

import (
	"testing"
	"time"

	"leave-planner-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChatID int64 = 42

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func pending(d time.Time) models.RangeSelection {
	return models.RangeSelection{Start: &d}
}

func alwaysInPeriod(time.Time) bool { return true }

func paintedRange(start, end time.Time, typ string) models.ColoredRange {
	item, _ := models.FindLegendItem(typ)
	return models.NewColoredRange(testChatID, start, end, item, "")
}

func TestHandleDayClick_IgnoresWeekendsAndHolidays(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"Saturday", day(2024, time.June, 22)},
		{"Sunday", day(2024, time.June, 23)},
		{"New Year holiday", day(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := HandleDayClick(testChatID, tt.date, nil, "Urlop", models.RangeSelection{}, alwaysInPeriod)
			assert.False(t, out.Changed)
			assert.False(t, out.Selection.Pending())
			assert.Equal(t, "Urlop", out.ActiveType)
			assert.Empty(t, out.Ranges)
		})
	}
}

func TestHandleDayClick_TwoClickCommit(t *testing.T) {
	// Click day A, then day B > A, no pre-existing ranges: exactly one
	// range [A, B]. Both clicks land on weekdays.
	a := day(2024, time.June, 3)
	b := day(2024, time.June, 7)

	out := HandleDayClick(testChatID, a, nil, "Urlop", models.RangeSelection{}, alwaysInPeriod)
	require.True(t, out.Selection.Pending())
	assert.False(t, out.Changed)

	out = HandleDayClick(testChatID, b, out.Ranges, "Urlop", out.Selection, alwaysInPeriod)
	require.True(t, out.Changed)
	require.Len(t, out.Ranges, 1)
	assert.Equal(t, "03.06.2024", out.Ranges[0].Start)
	assert.Equal(t, "07.06.2024", out.Ranges[0].End)
	assert.Equal(t, "Urlop", out.Ranges[0].Type)
	assert.False(t, out.Selection.Pending())
}

func TestHandleDayClick_BackwardsSelection(t *testing.T) {
	// Second click before the first: the engine orders the endpoints.
	out := HandleDayClick(testChatID, day(2024, time.June, 7), nil, "Urlop", models.RangeSelection{}, alwaysInPeriod)
	out = HandleDayClick(testChatID, day(2024, time.June, 3), out.Ranges, "Urlop", out.Selection, alwaysInPeriod)

	require.Len(t, out.Ranges, 1)
	assert.Equal(t, "03.06.2024", out.Ranges[0].Start)
	assert.Equal(t, "07.06.2024", out.Ranges[0].End)
}

func TestHandleDayClick_SplitsAroundExistingRange(t *testing.T) {
	// Existing range covers days 3-5 of a 1-9 selection: the commit emits
	// the two gap ranges 1-2 and 6-9 and leaves the existing one untouched.
	// The second gap spans a weekend; the commit walk covers calendar days,
	// only the clicks themselves are weekend-filtered.
	existing := []models.ColoredRange{
		paintedRange(day(2024, time.July, 3), day(2024, time.July, 5), "L4"),
	}

	sel := pending(day(2024, time.July, 1))
	out := HandleDayClick(testChatID, day(2024, time.July, 9), existing, "Urlop", sel, alwaysInPeriod)

	require.True(t, out.Changed)
	require.Len(t, out.Ranges, 3)
	assert.Equal(t, "03.07.2024", out.Ranges[0].Start) // untouched original
	assert.Equal(t, "01.07.2024", out.Ranges[1].Start)
	assert.Equal(t, "02.07.2024", out.Ranges[1].End)
	assert.Equal(t, "06.07.2024", out.Ranges[2].Start)
	assert.Equal(t, "09.07.2024", out.Ranges[2].End)
}

func TestHandleDayClick_FullyAbsorbedSelection(t *testing.T) {
	existing := []models.ColoredRange{
		paintedRange(day(2024, time.July, 1), day(2024, time.July, 7), "L4"),
	}

	sel := pending(day(2024, time.July, 2))
	out := HandleDayClick(testChatID, day(2024, time.July, 4), existing, "Urlop", sel, alwaysInPeriod)

	require.True(t, out.Changed)
	assert.Len(t, out.Ranges, 1) // nothing new emitted
	assert.False(t, out.Selection.Pending())
}

func TestHandleDayClick_ClickToRemove(t *testing.T) {
	existing := []models.ColoredRange{
		paintedRange(day(2024, time.July, 1), day(2024, time.July, 5), "Urlop"),
		paintedRange(day(2024, time.July, 10), day(2024, time.July, 12), "L4"),
	}

	out := HandleDayClick(testChatID, day(2024, time.July, 3), existing, "Urlop", models.RangeSelection{}, alwaysInPeriod)

	require.True(t, out.Changed)
	require.Len(t, out.Ranges, 1)
	assert.Equal(t, "L4", out.Ranges[0].Type)
}

func TestHandleDayClick_NoRemoveWhilePending(t *testing.T) {
	// With a pending selection the click is the second endpoint, not a
	// delete: the existing range survives and the gaps get painted.
	existing := []models.ColoredRange{
		paintedRange(day(2024, time.July, 3), day(2024, time.July, 4), "Urlop"),
	}

	sel := pending(day(2024, time.July, 1))
	out := HandleDayClick(testChatID, day(2024, time.July, 4), existing, "Urlop", sel, alwaysInPeriod)

	require.True(t, out.Changed)
	assert.Len(t, out.Ranges, 2)
}

func TestHandleDayClick_NoCategoryNoOp(t *testing.T) {
	out := HandleDayClick(testChatID, day(2024, time.July, 3), nil, "", models.RangeSelection{}, alwaysInPeriod)
	assert.False(t, out.Changed)
	assert.False(t, out.Selection.Pending())
	assert.Empty(t, out.Ranges)
}

func TestHandleDayClick_CrossPeriodRejected(t *testing.T) {
	inPeriod := func(d time.Time) bool {
		return d.Before(day(2024, time.July, 5))
	}

	sel := pending(day(2024, time.July, 1))
	out := HandleDayClick(testChatID, day(2024, time.July, 10), nil, "Urlop", sel, inPeriod)

	assert.False(t, out.Changed)
	assert.NotEmpty(t, out.Message)
	assert.False(t, out.Selection.Pending())
	assert.Empty(t, out.Ranges)
}

func TestHandleDayClick_SpecialToggle(t *testing.T) {
	date := day(2024, time.July, 6) // Saturday: special bypasses the weekend filter

	out := HandleDayClick(testChatID, date, nil, "Dyżur", models.RangeSelection{}, alwaysInPeriod)
	require.True(t, out.Changed)
	require.Len(t, out.Ranges, 1)
	assert.True(t, out.Ranges[0].Special)
	assert.Equal(t, out.Ranges[0].Start, out.Ranges[0].End)

	// Second click on the same date removes it.
	out = HandleDayClick(testChatID, date, out.Ranges, "Dyżur", models.RangeSelection{}, alwaysInPeriod)
	require.True(t, out.Changed)
	assert.Empty(t, out.Ranges)
}

func TestHandleDayClick_SpecialCoexistsWithRanges(t *testing.T) {
	existing := []models.ColoredRange{
		paintedRange(day(2024, time.July, 1), day(2024, time.July, 5), "Urlop"),
	}

	out := HandleDayClick(testChatID, day(2024, time.July, 3), existing, "Dyżur", models.RangeSelection{}, alwaysInPeriod)

	require.True(t, out.Changed)
	require.Len(t, out.Ranges, 2)
	assert.True(t, out.Ranges[1].Special)
}

func TestHandleDayClick_SpecialRemovableOnlyByOwnCategory(t *testing.T) {
	item, _ := models.FindLegendItem("Dyżur")
	duty := models.NewColoredRange(testChatID, day(2024, time.July, 3), day(2024, time.July, 3), item, "")

	// Urlop active: the duty marker is invisible to click-to-remove, so the
	// click starts a selection instead.
	out := HandleDayClick(testChatID, day(2024, time.July, 3), []models.ColoredRange{duty}, "Urlop", models.RangeSelection{}, alwaysInPeriod)
	assert.False(t, out.Changed)
	assert.True(t, out.Selection.Pending())
}

func TestHandleDayClick_LabelRequestSuspendsCommit(t *testing.T) {
	sel := pending(day(2024, time.July, 1))
	out := HandleDayClick(testChatID, day(2024, time.July, 3), nil, "Staże", sel, alwaysInPeriod)

	assert.False(t, out.Changed)
	require.NotNil(t, out.LabelRequest)
	assert.False(t, out.Selection.Pending())

	ranges := out.LabelRequest.Commit("oddział chirurgii")
	require.Len(t, ranges, 1)
	assert.Equal(t, "oddział chirurgii", ranges[0].Label)
	assert.Equal(t, "Staże", ranges[0].Type)
}

func TestHandleDayClick_NonOverlapInvariant(t *testing.T) {
	// After an arbitrary sequence of commits, no two non-special ranges
	// may share a day.
	var ranges []models.ColoredRange
	gestures := []struct {
		a, b time.Time
		typ  string
	}{
		{day(2024, time.July, 1), day(2024, time.July, 10), "Urlop"},
		{day(2024, time.July, 5), day(2024, time.July, 15), "L4"},
		{day(2024, time.July, 12), day(2024, time.July, 25), "Kwarantanna"},
		{day(2024, time.July, 1), day(2024, time.July, 31), "Samokształcenie"},
	}

	for _, g := range gestures {
		out := HandleDayClick(testChatID, g.a, ranges, g.typ, models.RangeSelection{}, alwaysInPeriod)
		out = HandleDayClick(testChatID, g.b, out.Ranges, g.typ, out.Selection, alwaysInPeriod)
		ranges = out.Ranges
	}

	for d := day(2024, time.July, 1); !d.After(day(2024, time.July, 31)); d = d.AddDate(0, 0, 1) {
		covering := 0
		for _, r := range ranges {
			if !r.Special && IsDateInRange(d, r) {
				covering++
			}
		}
		assert.LessOrEqual(t, covering, 1, "day %v covered by %d ranges", d, covering)
	}
}
