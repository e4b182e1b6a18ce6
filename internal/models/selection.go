package models

import "time"

// RangeSelection is the transient first endpoint of a two-click range
// gesture. Nil Start means no selection is pending. Never persisted.
type RangeSelection struct {
	Start *time.Time
}

// Pending reports whether a first endpoint has been chosen.
func (s RangeSelection) Pending() bool {
	return s.Start != nil
}

// Reset clears the pending selection.
func (s *RangeSelection) Reset() {
	s.Start = nil
}
