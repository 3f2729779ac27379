package models

import "time"

// StepSummary is one day's step total. One row per (user, date); the
// steps endpoint upserts by date so re-syncs overwrite instead of append.
type StepSummary struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Date      time.Time `gorm:"index;not null" json:"date"` // truncate to YYYY-MM-DD
	StepCount int       `gorm:"not null;default:0" json:"step_count"`
	Source    string    `gorm:"default:manual" json:"source"` // e.g. "apple_healthkit", "manual"
}
