package models

// ValidationResult describes the first violation found when validating base
// periods. ErrorIndex is -1 when the result is valid; ErrorField names the
// offending bound ("start" or "end") for field-level errors.
type ValidationResult struct {
	IsValid      bool   `json:"is_valid"`
	ErrorMessage string `json:"error_message"`
	ErrorIndex   int    `json:"error_index"`
	ErrorField   string `json:"error_field,omitempty"`
}

// ValidResult is the zero-violation validation result.
func ValidResult() ValidationResult {
	return ValidationResult{IsValid: true, ErrorIndex: -1}
}

// RangeGroup is one legend category with its ranges, in insertion order.
type RangeGroup struct {
	Type   string
	Ranges []ColoredRange
}

// GroupedRangeResult is the derived per-period aggregation: ranges grouped by
// category plus the working-day totals. Recomputed on demand, never stored.
// Invariant: BasicPeriodDays == TotalWorkingDays - ColoredRangeDays.
type GroupedRangeResult struct {
	Grouped          []RangeGroup
	TotalWorkingDays int
	ColoredRangeDays int
	BasicPeriodDays  int
}

// Group returns the ranges of one category, or nil if the category is absent.
func (g *GroupedRangeResult) Group(typ string) []ColoredRange {
	for _, grp := range g.Grouped {
		if grp.Type == typ {
			return grp.Ranges
		}
	}
	return nil
}
