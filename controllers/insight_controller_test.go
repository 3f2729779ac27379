package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MehmoodAhmad21/Trackme/models"
	"github.com/MehmoodAhmad21/Trackme/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newInsightTestRouter(t *testing.T, userID uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Goal{}, &models.Insight{},
		&models.StepSummary{}, &models.Meal{}, &models.Activity{}, &models.Vital{}))

	ctl := NewInsightController(services.NewInsightsService(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.GET("/insights/today", ctl.GetToday)
	r.POST("/insights/generate", ctl.Generate)
	r.GET("/insights/current", ctl.GetCurrent)
	r.POST("/insights/:id/dismiss", ctl.Dismiss)

	return r, db
}

func TestInsightsTodayEndpoint(t *testing.T) {
	r, _ := newInsightTestRouter(t, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/insights/today", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var insights []models.Insight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &insights))
	// A fresh user gets the two tracking prompts.
	require.Len(t, insights, 2)
	for _, in := range insights {
		assert.Equal(t, uint(1), in.UserID)
		assert.False(t, in.IsDismissed)
	}
}

func TestInsightsGenerateReturnsCreated(t *testing.T) {
	r, _ := newInsightTestRouter(t, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/insights/generate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestInsightsDismissEndpoint(t *testing.T) {
	r, db := newInsightTestRouter(t, 1)

	insight := models.Insight{UserID: 1, Category: models.InsightDiet, Message: "test"}
	require.NoError(t, db.Create(&insight).Error)
	foreign := models.Insight{UserID: 2, Category: models.InsightDiet, Message: "foreign"}
	require.NoError(t, db.Create(&foreign).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/insights/%d/dismiss", insight.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var stored models.Insight
	require.NoError(t, db.First(&stored, insight.ID).Error)
	assert.True(t, stored.IsDismissed)

	// Someone else's insight 404s the same way a nonexistent id does.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/insights/%d/dismiss", foreign.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/insights/not-a-number/dismiss", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInsightsCurrentSkipsDismissed(t *testing.T) {
	r, db := newInsightTestRouter(t, 1)

	require.NoError(t, db.Create(&models.Insight{UserID: 1, Category: models.InsightSleep, Message: "keep"}).Error)
	require.NoError(t, db.Create(&models.Insight{UserID: 1, Category: models.InsightDiet, Message: "hidden", IsDismissed: true}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/insights/current", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var insights []models.Insight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &insights))
	require.Len(t, insights, 1)
	assert.Equal(t, "keep", insights[0].Message)
}
