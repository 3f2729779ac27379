package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MehmoodAhmad21/Trackme/models"

	"gorm.io/gorm"
)

// InsightsService is the rule-based suggestions engine. Each generation pass
// compares the last week of health data against the user's goals and stores
// the resulting advisory messages as Insight rows.
type InsightsService struct{ db *gorm.DB }

func NewInsightsService(db *gorm.DB) *InsightsService { return &InsightsService{db: db} }

const (
	insightLookbackDays = 7
	insightMaxAge       = 24 * time.Hour

	lowStepDayThreshold = 5000 // steps; below this a day counts as inactive
	elevatedHeartRate   = 80   // bpm; fixed threshold, not goal-derived
)

// Generate runs all analyzers for the user and persists their output.
// Stale undismissed insights are swept first; dismissed rows are left alone.
// Repeated calls may accumulate duplicate messages within the 24h window.
func (s *InsightsService) Generate(ctx context.Context, userID uint, now time.Time) ([]models.Insight, error) {
	goal, err := s.getOrCreateGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-insightMaxAge)
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_dismissed = ? AND created_at < ?", userID, false, cutoff).
		Delete(&models.Insight{}).Error; err != nil {
		return nil, fmt.Errorf("expiring stale insights: %w", err)
	}

	var insights []models.Insight
	for _, analyze := range []func(context.Context, uint, *models.Goal, time.Time) ([]models.Insight, error){
		s.analyzeSteps,
		s.analyzeDiet,
		s.analyzeActivity,
		s.analyzeVitals,
	} {
		out, err := analyze(ctx, userID, goal, now)
		if err != nil {
			return nil, err
		}
		insights = append(insights, out...)
	}

	if len(insights) > 0 {
		if err := s.db.WithContext(ctx).Create(&insights).Error; err != nil {
			return nil, fmt.Errorf("saving insights: %w", err)
		}
	}

	return insights, nil
}

// Current returns the user's undismissed insights, newest first.
func (s *InsightsService) Current(ctx context.Context, userID uint) ([]models.Insight, error) {
	var insights []models.Insight
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_dismissed = ?", userID, false).
		Order("created_at DESC").
		Find(&insights).Error
	return insights, err
}

// Dismiss marks an insight as dismissed. The lookup is scoped to the user so
// a foreign-owned id looks the same as a nonexistent one: found=false.
func (s *InsightsService) Dismiss(ctx context.Context, userID, insightID uint) (bool, error) {
	var insight models.Insight
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", insightID, userID).
		First(&insight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	insight.IsDismissed = true
	if err := s.db.WithContext(ctx).Save(&insight).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *InsightsService) getOrCreateGoal(ctx context.Context, userID uint) (*models.Goal, error) {
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

// analyzeSteps emits movement insights from the last week of step summaries.
func (s *InsightsService) analyzeSteps(ctx context.Context, userID uint, goal *models.Goal, now time.Time) ([]models.Insight, error) {
	today := dayStart(now)
	windowStart := today.AddDate(0, 0, -insightLookbackDays)

	var steps []models.StepSummary
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, windowStart, today).
		Find(&steps).Error; err != nil {
		return nil, err
	}

	if len(steps) == 0 {
		return []models.Insight{{
			UserID:   userID,
			Category: models.InsightMovement,
			Message:  "Start tracking your daily steps to get personalized movement insights!",
		}}, nil
	}

	var insights []models.Insight

	// Average over days that have data, not over the full window.
	total := 0
	for _, st := range steps {
		total += st.StepCount
	}
	avgSteps := float64(total) / float64(len(steps))

	if avgSteps < float64(goal.DailyStepGoal)*0.8 {
		shortfall := goal.DailyStepGoal - int(avgSteps)
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightMovement,
			Message: fmt.Sprintf("You're averaging %d steps/day, %d below your goal. Try a 10-minute walk!",
				int(avgSteps), shortfall),
		})
	} else if avgSteps >= float64(goal.DailyStepGoal)*0.9 {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightMovement,
			Message: fmt.Sprintf("Great job! You're close to your step goal with %d steps/day. Keep it up!",
				int(avgSteps)),
		})
	}

	// Inactivity check over the last 3 days, independent of the average.
	recentCutoff := today.AddDate(0, 0, -3)
	recent := 0
	allLow := true
	for _, st := range steps {
		if st.Date.Before(recentCutoff) {
			continue
		}
		recent++
		if st.StepCount >= lowStepDayThreshold {
			allLow = false
		}
	}
	if recent > 0 && allLow {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightOutdoor,
			Message:  "You've been less active the past 3 days. Consider going outside for a walk!",
		})
	}

	return insights, nil
}

// analyzeDiet emits nutrition insights from the last week of meals.
func (s *InsightsService) analyzeDiet(ctx context.Context, userID uint, goal *models.Goal, now time.Time) ([]models.Insight, error) {
	windowStart := now.AddDate(0, 0, -insightLookbackDays)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND datetime >= ?", userID, windowStart).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	if len(meals) == 0 {
		return []models.Insight{{
			UserID:   userID,
			Category: models.InsightDiet,
			Message:  "Start logging your meals to get personalized nutrition insights!",
		}}, nil
	}

	// Averages are per day with logged meals, so sparse logging is not
	// diluted across the whole window.
	days := map[string]struct{}{}
	var totalCalories, totalCarbs, totalProtein float64
	for _, m := range meals {
		days[m.Datetime.Format("2006-01-02")] = struct{}{}
		totalCalories += m.Calories
		totalCarbs += m.Carbs
		totalProtein += m.Protein
	}
	daysWithData := len(days)
	if daysWithData == 0 {
		return nil, nil
	}

	avgCalories := totalCalories / float64(daysWithData)
	avgCarbs := totalCarbs / float64(daysWithData)
	avgProtein := totalProtein / float64(daysWithData)

	var insights []models.Insight

	if avgCalories > goal.DailyCalorieGoal*1.15 {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightDiet,
			Message: fmt.Sprintf("You're averaging %d calories/day, above your %d goal. Consider lighter meals.",
				int(avgCalories), int(goal.DailyCalorieGoal)),
		})
	}

	if avgCarbs > goal.DailyCarbsGoal*1.2 {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightDiet,
			Message:  "Your carb intake has been high lately. Try adding more protein and vegetables.",
		})
	}

	if avgProtein < goal.DailyProteinGoal*0.7 {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightDiet,
			Message: fmt.Sprintf("You're low on protein (avg %dg/day). Consider adding lean meats, fish, or legumes.",
				int(avgProtein)),
		})
	}

	return insights, nil
}

// analyzeActivity checks workout frequency over the last week.
func (s *InsightsService) analyzeActivity(ctx context.Context, userID uint, _ *models.Goal, now time.Time) ([]models.Insight, error) {
	windowStart := now.AddDate(0, 0, -insightLookbackDays)

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("user_id = ? AND datetime >= ?", userID, windowStart).
		Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		// A user with step data but no logged workouts is tracking passively;
		// nudge them to log sessions. A user with neither gets nothing here.
		var hasSteps int64
		if err := s.db.WithContext(ctx).
			Model(&models.StepSummary{}).
			Where("user_id = ?", userID).
			Count(&hasSteps).Error; err != nil {
			return nil, err
		}
		if hasSteps > 0 {
			return []models.Insight{{
				UserID:   userID,
				Category: models.InsightMovement,
				Message:  "Log your workouts to get better activity insights and track your fitness progress!",
			}}, nil
		}
		return nil, nil
	}

	if count < 3 {
		return []models.Insight{{
			UserID:   userID,
			Category: models.InsightMovement,
			Message:  "You've only logged a few workouts this week. Aim for at least 3-4 sessions for better health!",
		}}, nil
	}

	return nil, nil
}

// analyzeVitals checks sleep duration against the goal and flags an elevated
// average heart rate. Other vital types are ignored.
func (s *InsightsService) analyzeVitals(ctx context.Context, userID uint, goal *models.Goal, now time.Time) ([]models.Insight, error) {
	windowStart := now.AddDate(0, 0, -insightLookbackDays)

	var insights []models.Insight

	avgSleep, n, err := s.vitalAverage(ctx, userID, "sleep_duration", windowStart)
	if err != nil {
		return nil, err
	}
	if n > 0 && avgSleep < goal.SleepHoursGoal*0.85 {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightSleep,
			Message: fmt.Sprintf("You're averaging %.1f hours of sleep. Try to get at least %g hours for optimal health.",
				avgSleep, goal.SleepHoursGoal),
		})
	}

	avgHR, n, err := s.vitalAverage(ctx, userID, "heart_rate", windowStart)
	if err != nil {
		return nil, err
	}
	if n > 0 && avgHR > elevatedHeartRate {
		insights = append(insights, models.Insight{
			UserID:   userID,
			Category: models.InsightGeneral,
			Message:  "Your average heart rate is a bit elevated. Consider stress management and regular exercise.",
		})
	}

	return insights, nil
}

func (s *InsightsService) vitalAverage(ctx context.Context, userID uint, vitalType string, from time.Time) (avg float64, n int, err error) {
	var vitals []models.Vital
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND recorded_at >= ?", userID, vitalType, from).
		Find(&vitals).Error; err != nil {
		return 0, 0, err
	}
	if len(vitals) == 0 {
		return 0, 0, nil
	}
	var sum float64
	for _, v := range vitals {
		sum += v.Value
	}
	return sum / float64(len(vitals)), len(vitals), nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
