package models

import "time"

// PersonalInfo holds the planner owner's name, used in export headers and
// generated file names. Opaque to the computation core.
type PersonalInfo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    int64     `gorm:"not null;uniqueIndex" json:"chat_id"`
	FirstName string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(50)" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PersonalInfo) TableName() string {
	return "personal_info"
}
