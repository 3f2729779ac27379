package models

import "time"

type InsightCategory string

const (
	InsightMovement InsightCategory = "movement"
	InsightDiet     InsightCategory = "diet"
	InsightSleep    InsightCategory = "sleep"
	InsightOutdoor  InsightCategory = "outdoor"
	InsightGeneral  InsightCategory = "general"
)

// Insight is a generated suggestion. Rows are written only by the insights
// engine; the only mutation afterwards is the one-way dismiss flag. Stale
// undismissed rows are hard-deleted by the engine's expiry sweep.
type Insight struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Category    InsightCategory `gorm:"size:20;not null" json:"category"`
	Message     string          `gorm:"type:text;not null" json:"message"`
	IsDismissed bool            `gorm:"not null;default:false" json:"is_dismissed"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}
