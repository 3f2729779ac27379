package models

// Goal holds each user's daily health targets. Exactly one row per user,
// created lazily with defaults the first time goals are read or insights
// are generated.
type Goal struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	DailyStepGoal    int     `json:"daily_step_goal"`    // steps
	DailyCalorieGoal float64 `json:"daily_calorie_goal"` // kcal
	DailyProteinGoal float64 `json:"daily_protein_goal"` // g
	DailyCarbsGoal   float64 `json:"daily_carbs_goal"`   // g
	DailyFatGoal     float64 `json:"daily_fat_goal"`     // g
	SleepHoursGoal   float64 `json:"sleep_hours_goal"`   // hours

	// Connected services (flags)
	AppleHealthConnected  bool `json:"apple_health_connected"`
	NutritionAPIConnected bool `json:"nutrition_api_connected"`
}

// DefaultGoal returns a Goal populated with the default targets.
func DefaultGoal(userID uint) Goal {
	return Goal{
		UserID:                userID,
		DailyStepGoal:         10000,
		DailyCalorieGoal:      2000,
		DailyProteinGoal:      50,
		DailyCarbsGoal:        250,
		DailyFatGoal:          70,
		SleepHoursGoal:        8,
		NutritionAPIConnected: true,
	}
}
