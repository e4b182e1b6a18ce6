package models

import (
	"time"

	"leave-planner-bot/pkg/dates"
)

// ColoredRange is a painted sub-range of a base period. Start/End are stored
// in the display format (DD.MM.YYYY), matching how the user sees them in
// statistics and exports. StartYear is denormalized for the period deletion
// cascade, which removes ranges by start year.
type ColoredRange struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    int64     `gorm:"not null;index" json:"chat_id"`
	Start     string    `gorm:"type:varchar(10);not null" json:"start"`
	End       string    `gorm:"type:varchar(10);not null" json:"end"`
	Type      string    `gorm:"type:varchar(40);not null" json:"type"`
	Color     string    `gorm:"type:varchar(20);not null" json:"color"`
	Label     string    `gorm:"type:varchar(100)" json:"label,omitempty"`
	Special   bool      `gorm:"not null;default:false" json:"special,omitempty"`
	StartYear int       `gorm:"index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ColoredRange) TableName() string {
	return "colored_ranges"
}

// StartDate parses the range start.
func (r *ColoredRange) StartDate() (time.Time, bool) {
	return dates.Parse(r.Start)
}

// EndDate parses the range end.
func (r *ColoredRange) EndDate() (time.Time, bool) {
	return dates.Parse(r.End)
}

// NewColoredRange builds a range from parsed dates, filling the stored
// string form and the denormalized start year.
func NewColoredRange(chatID int64, start, end time.Time, item LegendItem, label string) ColoredRange {
	return ColoredRange{
		ChatID:    chatID,
		Start:     dates.Format(start),
		End:       dates.Format(end),
		Type:      item.Label,
		Color:     item.Color,
		Label:     label,
		Special:   item.Special,
		StartYear: start.Year(),
	}
}
