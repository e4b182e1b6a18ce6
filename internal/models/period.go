package models

import (
	"time"

	"leave-planner-bot/pkg/dates"
)

// Period is a user-defined base period (one training year). Bounds are kept
// as raw YYYY-MM-DD strings so partially typed input survives a round-trip;
// an empty string means the bound is not set yet.
type Period struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    int64     `gorm:"not null;index" json:"chat_id"`
	Position  int       `gorm:"not null;index" json:"position"`
	Start     string    `gorm:"type:varchar(10)" json:"start"`
	End       string    `gorm:"type:varchar(10)" json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Period) TableName() string {
	return "periods"
}

// IsComplete reports whether both bounds are filled in.
func (p *Period) IsComplete() bool {
	return p.Start != "" && p.End != ""
}

// Bounds parses both period bounds. ok is false when either bound is
// missing or unparseable.
func (p *Period) Bounds() (start, end time.Time, ok bool) {
	if !p.IsComplete() {
		return time.Time{}, time.Time{}, false
	}
	start, sok := dates.Parse(p.Start)
	end, eok := dates.Parse(p.End)
	if !sok || !eok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
