package models

import "time"

type ActivityType string

const (
	ActivityRun   ActivityType = "run"
	ActivityWalk  ActivityType = "walk"
	ActivityCycle ActivityType = "cycle"
	ActivityGym   ActivityType = "gym"
	ActivitySwim  ActivityType = "swim"
	ActivityYoga  ActivityType = "yoga"
	ActivityOther ActivityType = "other"
)

type Activity struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	UserID          uint         `gorm:"index;not null" json:"user_id"`
	Type            ActivityType `gorm:"size:20;not null" json:"type"`
	DurationMinutes float64      `gorm:"not null" json:"duration_minutes"`
	DistanceKM      *float64     `json:"distance_km,omitempty"`
	CaloriesBurned  *float64     `json:"calories_burned,omitempty"`
	Datetime        time.Time    `gorm:"index;not null" json:"datetime"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}
