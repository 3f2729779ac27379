package services

import (
	"testing"
	"time"

	"github.com/MehmoodAhmad21/Trackme/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Insight{},
		&models.StepSummary{},
		&models.Meal{},
		&models.Activity{},
		&models.Vital{},
		&models.Task{},
		&models.Event{},
	))

	return db
}

func seedSteps(t *testing.T, db *gorm.DB, userID uint, counts map[time.Time]int) {
	t.Helper()
	for date, n := range counts {
		require.NoError(t, db.Create(&models.StepSummary{
			UserID:    userID,
			Date:      date,
			StepCount: n,
		}).Error)
	}
}

func seedVital(t *testing.T, db *gorm.DB, userID uint, vitalType string, value float64, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Vital{
		UserID:     userID,
		Type:       vitalType,
		Value:      value,
		Unit:       "n/a",
		RecordedAt: at,
	}).Error)
}
