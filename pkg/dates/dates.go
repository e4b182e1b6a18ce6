package dates

import (
	"strconv"
	"strings"
	"time"
)

// Display format used across the planner (DD.MM.YYYY).
const DisplayLayout = "02.01.2006"

// ISOLayout is the storage format for base period bounds (YYYY-MM-DD).
const ISOLayout = "2006-01-02"

// Parse converts a date string into a midnight-local time.Time.
// Accepted formats: "YYYY-MM-DD", "DD/MM/YYYY" and "DD.MM.YYYY".
// The second return value is false for empty or malformed input.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	var year, month, day int
	var ok bool

	if strings.Contains(s, "-") {
		// ISO: year-month-day
		year, month, day, ok = splitDate(s, "-", 0, 1, 2)
	} else {
		// DD/MM/YYYY or DD.MM.YYYY: day-month-year
		sep := "/"
		if strings.Contains(s, ".") {
			sep = "."
		}
		day, month, year, ok = splitDate(s, sep, 0, 1, 2)
	}
	if !ok {
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// Reject dates that rolled over (e.g. 30.02).
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

func splitDate(s, sep string, ai, bi, ci int) (a, b, c int, ok bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[ai], nums[bi], nums[ci], true
}

// Normalize strips the time-of-day component, keeping the local calendar date.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay compares two dates on year, month and day only.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// NextDay returns the following calendar day.
func NextDay(t time.Time) time.Time {
	return Normalize(t).AddDate(0, 0, 1)
}

// Format renders a date in the planner's display format (DD.MM.YYYY).
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// FormatISO renders a date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseAny accepts either an already-parsed time.Time or a date string.
func ParseAny(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return Normalize(d), true
	case string:
		return Parse(d)
	default:
		return time.Time{}, false
	}
}

// NormalizedRange parses both inputs and orders them chronologically,
// so a backwards selection (end before start) is tolerated.
// Returns false if either input is invalid.
func NormalizedRange(start, end interface{}) (time.Time, time.Time, bool) {
	s, ok := ParseAny(start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	e, ok := ParseAny(end)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if e.Before(s) {
		s, e = e, s
	}
	return s, e, true
}

// IsValidISODate reports whether the string is a strict YYYY-MM-DD date
// that refers to a real calendar day (rejects e.g. 2024-02-30).
func IsValidISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	_, ok := Parse(s)
	return ok
}
