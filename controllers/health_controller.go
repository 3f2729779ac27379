package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MehmoodAhmad21/Trackme/config"
	"github.com/MehmoodAhmad21/Trackme/models"

	"github.com/gin-gonic/gin"
)

type StepInput struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StepCount int    `json:"step_count" binding:"required"`
	Source    string `json:"source"`
}

// UpsertSteps records a day's step total. One row per (user, date): a
// re-sync for the same day overwrites instead of appending.
func UpsertSteps(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input StepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	source := input.Source
	if source == "" {
		source = "manual"
	}

	summary := models.StepSummary{
		UserID:    userID,
		Date:      date,
		StepCount: input.StepCount,
		Source:    source,
	}
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(summary).
		FirstOrCreate(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func GetStepSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	q := config.DB.Where("user_id = ?", userID)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date format"})
			return
		}
		q = q.Where("date >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.ParseInLocation("2006-01-02", toStr, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date format"})
			return
		}
		q = q.Where("date <= ?", to)
	}

	var steps []models.StepSummary
	if err := q.Order("date ASC").Find(&steps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, steps)
}

type VitalInput struct {
	Type       string    `json:"type" binding:"required"`
	Value      float64   `json:"value" binding:"required"`
	Unit       string    `json:"unit" binding:"required"`
	RecordedAt time.Time `json:"recorded_at" binding:"required"`
}

func CreateVital(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input VitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vital := models.Vital{
		UserID:     userID,
		Type:       input.Type,
		Value:      input.Value,
		Unit:       input.Unit,
		RecordedAt: input.RecordedAt,
	}
	if err := config.DB.Create(&vital).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vital)
}

func GetVitalsByType(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	q := config.DB.Where("user_id = ? AND type = ?", userID, c.Param("type"))

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date format"})
			return
		}
		q = q.Where("recorded_at >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date format"})
			return
		}
		q = q.Where("recorded_at <= ?", to)
	}

	var vitals []models.Vital
	if err := q.Order("recorded_at ASC").Find(&vitals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vitals)
}

type ActivityInput struct {
	Type            models.ActivityType `json:"type" binding:"required"`
	DurationMinutes float64             `json:"duration_minutes" binding:"required"`
	DistanceKM      *float64            `json:"distance_km"`
	CaloriesBurned  *float64            `json:"calories_burned"`
	Datetime        time.Time           `json:"datetime" binding:"required"`
	Notes           string              `json:"notes"`
}

func CreateActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.Activity{
		UserID:          userID,
		Type:            input.Type,
		DurationMinutes: input.DurationMinutes,
		DistanceKM:      input.DistanceKM,
		CaloriesBurned:  input.CaloriesBurned,
		Datetime:        input.Datetime,
		Notes:           input.Notes,
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func ListActivities(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	q := config.DB.Where("user_id = ?", userID)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date format"})
			return
		}
		q = q.Where("datetime >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date format"})
			return
		}
		q = q.Where("datetime <= ?", to)
	}

	var activities []models.Activity
	if err := q.Order("datetime DESC").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func DeleteActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	var activity models.Activity
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&activity).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if err := config.DB.Delete(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
