package services

import (
	"context"
	"testing"
	"time"

	"github.com/MehmoodAhmad21/Trackme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var insightsNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func insightMessages(insights []models.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, in := range insights {
		out = append(out, in.Message)
	}
	return out
}

func TestGenerateNoDataPromptsTracking(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	msgs := insightMessages(insights)
	assert.Contains(t, msgs, "Start tracking your daily steps to get personalized movement insights!")
	assert.Contains(t, msgs, "Start logging your meals to get personalized nutrition insights!")
	assert.Len(t, insights, 2) // no steps logged, so no workout nudge either
}

func TestGenerateCreatesDefaultGoals(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	_, err := svc.Generate(context.Background(), 7, insightsNow)
	require.NoError(t, err)

	var goal models.Goal
	require.NoError(t, db.Where("user_id = ?", 7).First(&goal).Error)
	assert.Equal(t, 10000, goal.DailyStepGoal)
	assert.Equal(t, float64(2000), goal.DailyCalorieGoal)
}

func TestStepAverageThresholds(t *testing.T) {
	today := dayStart(insightsNow)

	cases := []struct {
		name       string
		dailySteps int
		wantMsg    string
	}{
		// 79% of the 10000 default goal: below the 80% line.
		{"shortfall", 7900, "You're averaging 7900 steps/day, 2100 below your goal. Try a 10-minute walk!"},
		// 85%: between the thresholds, no average-based message.
		{"dead zone", 8500, ""},
		// 90% exactly: congratulation fires.
		{"congrats", 9000, "Great job! You're close to your step goal with 9000 steps/day. Keep it up!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewInsightsService(db)

			counts := map[time.Time]int{}
			for i := 1; i <= 7; i++ {
				counts[today.AddDate(0, 0, -i)] = tc.dailySteps
			}
			seedSteps(t, db, 1, counts)

			insights, err := svc.Generate(context.Background(), 1, insightsNow)
			require.NoError(t, err)

			msgs := insightMessages(insights)
			if tc.wantMsg != "" {
				assert.Contains(t, msgs, tc.wantMsg)
			}
			for _, m := range msgs {
				if tc.wantMsg == "" {
					assert.NotContains(t, m, "averaging")
					assert.NotContains(t, m, "Great job")
				}
			}
		})
	}
}

func TestLowRecentStepsSuggestsOutdoor(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	today := dayStart(insightsNow)

	seedSteps(t, db, 1, map[time.Time]int{
		today.AddDate(0, 0, -1): 2000,
		today.AddDate(0, 0, -2): 2000,
		today.AddDate(0, 0, -3): 2000,
	})

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	msgs := insightMessages(insights)
	assert.Contains(t, msgs, "You've been less active the past 3 days. Consider going outside for a walk!")
	// Shortfall fires as well: averages and recent inactivity are independent.
	assert.Contains(t, msgs, "You're averaging 2000 steps/day, 8000 below your goal. Try a 10-minute walk!")
}

func TestOutdoorNotSuggestedWhenOneRecentDayIsActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	today := dayStart(insightsNow)

	seedSteps(t, db, 1, map[time.Time]int{
		today.AddDate(0, 0, -1): 2000,
		today.AddDate(0, 0, -2): 6000, // one active day breaks the streak
		today.AddDate(0, 0, -3): 2000,
	})

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	assert.NotContains(t, insightMessages(insights),
		"You've been less active the past 3 days. Consider going outside for a walk!")
}

func TestExpirySweep(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	stale := models.Insight{
		UserID: 1, Category: models.InsightGeneral, Message: "stale",
		CreatedAt: insightsNow.Add(-25 * time.Hour),
	}
	fresh := models.Insight{
		UserID: 1, Category: models.InsightGeneral, Message: "fresh",
		CreatedAt: insightsNow.Add(-23 * time.Hour),
	}
	dismissed := models.Insight{
		UserID: 1, Category: models.InsightGeneral, Message: "dismissed",
		IsDismissed: true, CreatedAt: insightsNow.Add(-48 * time.Hour),
	}
	otherUser := models.Insight{
		UserID: 2, Category: models.InsightGeneral, Message: "other",
		CreatedAt: insightsNow.Add(-25 * time.Hour),
	}
	for _, in := range []*models.Insight{&stale, &fresh, &dismissed, &otherUser} {
		require.NoError(t, db.Create(in).Error)
	}

	_, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	var remaining []models.Insight
	require.NoError(t, db.Where("message IN ?", []string{"stale", "fresh", "dismissed", "other"}).
		Find(&remaining).Error)

	msgs := insightMessages(remaining)
	assert.NotContains(t, msgs, "stale") // hard-deleted, not flagged
	assert.Contains(t, msgs, "fresh")
	assert.Contains(t, msgs, "dismissed")
	assert.Contains(t, msgs, "other") // sweep is per user
}

func TestDismiss(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	ctx := context.Background()

	insight := models.Insight{UserID: 1, Category: models.InsightDiet, Message: "eat greens"}
	require.NoError(t, db.Create(&insight).Error)

	found, err := svc.Dismiss(ctx, 1, insight.ID)
	require.NoError(t, err)
	assert.True(t, found)

	var stored models.Insight
	require.NoError(t, db.First(&stored, insight.ID).Error)
	assert.True(t, stored.IsDismissed)

	// Dismissing twice is a no-op, not an error.
	found, err = svc.Dismiss(ctx, 1, insight.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// Unknown id and foreign-owned id are indistinguishable.
	found, err = svc.Dismiss(ctx, 1, 9999)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = svc.Dismiss(ctx, 2, insight.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDismissedInsightsExcludedFromCurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	ctx := context.Background()

	keep := models.Insight{UserID: 1, Category: models.InsightSleep, Message: "sleep more"}
	gone := models.Insight{UserID: 1, Category: models.InsightDiet, Message: "dismissed one", IsDismissed: true}
	require.NoError(t, db.Create(&keep).Error)
	require.NoError(t, db.Create(&gone).Error)

	current, err := svc.Current(ctx, 1)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "sleep more", current[0].Message)
}

func TestDietAveragesUseDaysWithData(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	// 4000 kcal over 2 logged days is exactly the 2000 kcal goal per day,
	// even though the lookback window spans 7 days.
	for _, day := range []time.Time{insightsNow.Add(-24 * time.Hour), insightsNow.Add(-48 * time.Hour)} {
		require.NoError(t, db.Create(&models.Meal{
			UserID:   1,
			Name:     "big meal",
			MealType: models.MealDinner,
			Datetime: day,
			Calories: 2000,
			Carbs:    100,
			Protein:  60,
			Fat:      50,
		}).Error)
	}

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	for _, m := range insightMessages(insights) {
		assert.NotContains(t, m, "calories/day")
	}
}

func TestDietOverAndUnderConsumption(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	// One logged day: 2400 kcal (>115% of 2000), 350g carbs (>120% of 250),
	// 20g protein (<70% of 50).
	require.NoError(t, db.Create(&models.Meal{
		UserID:   1,
		Name:     "feast",
		MealType: models.MealDinner,
		Datetime: insightsNow.Add(-2 * time.Hour),
		Calories: 2400,
		Carbs:    350,
		Protein:  20,
		Fat:      80,
	}).Error)

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	msgs := insightMessages(insights)
	assert.Contains(t, msgs, "You're averaging 2400 calories/day, above your 2000 goal. Consider lighter meals.")
	assert.Contains(t, msgs, "Your carb intake has been high lately. Try adding more protein and vegetables.")
	assert.Contains(t, msgs, "You're low on protein (avg 20g/day). Consider adding lean meats, fish, or legumes.")
}

func TestActivityFrequency(t *testing.T) {
	ctx := context.Background()
	logMsg := "Log your workouts to get better activity insights and track your fitness progress!"
	fewMsg := "You've only logged a few workouts this week. Aim for at least 3-4 sessions for better health!"

	t.Run("no workouts but steps tracked", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewInsightsService(db)
		seedSteps(t, db, 1, map[time.Time]int{dayStart(insightsNow).AddDate(0, 0, -1): 9500})

		insights, err := svc.Generate(ctx, 1, insightsNow)
		require.NoError(t, err)
		assert.Contains(t, insightMessages(insights), logMsg)
	})

	t.Run("no workouts and no steps", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewInsightsService(db)

		insights, err := svc.Generate(ctx, 1, insightsNow)
		require.NoError(t, err)
		msgs := insightMessages(insights)
		assert.NotContains(t, msgs, logMsg)
		assert.NotContains(t, msgs, fewMsg)
	})

	t.Run("two workouts", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewInsightsService(db)
		for i := 0; i < 2; i++ {
			require.NoError(t, db.Create(&models.Activity{
				UserID: 1, Type: models.ActivityRun, DurationMinutes: 30,
				Datetime: insightsNow.AddDate(0, 0, -i-1),
			}).Error)
		}

		insights, err := svc.Generate(ctx, 1, insightsNow)
		require.NoError(t, err)
		assert.Contains(t, insightMessages(insights), fewMsg)
	})

	t.Run("three workouts", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewInsightsService(db)
		for i := 0; i < 3; i++ {
			require.NoError(t, db.Create(&models.Activity{
				UserID: 1, Type: models.ActivityGym, DurationMinutes: 45,
				Datetime: insightsNow.AddDate(0, 0, -i-1),
			}).Error)
		}

		insights, err := svc.Generate(ctx, 1, insightsNow)
		require.NoError(t, err)
		msgs := insightMessages(insights)
		assert.NotContains(t, msgs, logMsg)
		assert.NotContains(t, msgs, fewMsg)
	})
}

func TestVitalsSleepAndHeartRate(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	// Avg sleep 6h, below 85% of the 8h goal.
	seedVital(t, db, 1, "sleep_duration", 5.5, insightsNow.Add(-20*time.Hour))
	seedVital(t, db, 1, "sleep_duration", 6.5, insightsNow.Add(-44*time.Hour))
	// Avg heart rate 85, above the fixed 80 bpm threshold.
	seedVital(t, db, 1, "heart_rate", 82, insightsNow.Add(-3*time.Hour))
	seedVital(t, db, 1, "heart_rate", 88, insightsNow.Add(-5*time.Hour))

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	msgs := insightMessages(insights)
	assert.Contains(t, msgs, "You're averaging 6.0 hours of sleep. Try to get at least 8 hours for optimal health.")
	assert.Contains(t, msgs, "Your average heart rate is a bit elevated. Consider stress management and regular exercise.")
}

func TestVitalsWithinRangeEmitNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)

	seedVital(t, db, 1, "sleep_duration", 7.5, insightsNow.Add(-20*time.Hour))
	seedVital(t, db, 1, "heart_rate", 65, insightsNow.Add(-3*time.Hour))

	insights, err := svc.Generate(context.Background(), 1, insightsNow)
	require.NoError(t, err)

	for _, in := range insights {
		assert.NotEqual(t, models.InsightSleep, in.Category)
		assert.NotEqual(t, models.InsightGeneral, in.Category)
	}
}

func TestRepeatedGenerationAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightsService(db)
	ctx := context.Background()

	_, err := svc.Generate(ctx, 1, insightsNow)
	require.NoError(t, err)
	_, err = svc.Generate(ctx, 1, insightsNow.Add(time.Hour))
	require.NoError(t, err)

	current, err := svc.Current(ctx, 1)
	require.NoError(t, err)
	// Both passes emit the same two tracking prompts; there is no dedup
	// inside the 24h window.
	assert.Len(t, current, 4)
}
