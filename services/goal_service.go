package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MehmoodAhmad21/Trackme/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GoalUpdateInput carries a partial update; nil fields are left unchanged.
type GoalUpdateInput struct {
	DailyStepGoal    *int     `json:"daily_step_goal"`
	DailyCalorieGoal *float64 `json:"daily_calorie_goal"`
	DailyProteinGoal *float64 `json:"daily_protein_goal"`
	DailyCarbsGoal   *float64 `json:"daily_carbs_goal"`
	DailyFatGoal     *float64 `json:"daily_fat_goal"`
	SleepHoursGoal   *float64 `json:"sleep_hours_goal"`
}

type ConnectionUpdateInput struct {
	AppleHealthConnected  *bool `json:"apple_health_connected"`
	NutritionAPIConnected *bool `json:"nutrition_api_connected"`
}

// GetOrCreate returns the user's goals, creating the default set on first
// access.
func (s *GoalService) GetOrCreate(ctx context.Context, userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DefaultGoal(userID)
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, fmt.Errorf("creating default goals: %w", err)
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Update(ctx context.Context, userID uint, input GoalUpdateInput) (*models.Goal, error) {
	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DailyStepGoal != nil {
		goal.DailyStepGoal = *input.DailyStepGoal
	}
	if input.DailyCalorieGoal != nil {
		goal.DailyCalorieGoal = *input.DailyCalorieGoal
	}
	if input.DailyProteinGoal != nil {
		goal.DailyProteinGoal = *input.DailyProteinGoal
	}
	if input.DailyCarbsGoal != nil {
		goal.DailyCarbsGoal = *input.DailyCarbsGoal
	}
	if input.DailyFatGoal != nil {
		goal.DailyFatGoal = *input.DailyFatGoal
	}
	if input.SleepHoursGoal != nil {
		goal.SleepHoursGoal = *input.SleepHoursGoal
	}

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) UpdateConnections(ctx context.Context, userID uint, input ConnectionUpdateInput) (*models.Goal, error) {
	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.AppleHealthConnected != nil {
		goal.AppleHealthConnected = *input.AppleHealthConnected
	}
	if input.NutritionAPIConnected != nil {
		goal.NutritionAPIConnected = *input.NutritionAPIConnected
	}

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}
