package models

import "time"

// Vital is a typed point measurement. Type is a free-form key such as
// "heart_rate", "blood_glucose" or "sleep_duration".
type Vital struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Type       string    `gorm:"index;not null" json:"type"`
	Value      float64   `gorm:"not null" json:"value"`
	Unit       string    `gorm:"not null" json:"unit"` // e.g. "bpm", "mg/dL", "hours"
	RecordedAt time.Time `gorm:"index;not null" json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}
