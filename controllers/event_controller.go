package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MehmoodAhmad21/Trackme/config"
	"github.com/MehmoodAhmad21/Trackme/models"

	"github.com/gin-gonic/gin"
)

type EventInput struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
	EndDatetime   time.Time `json:"end_datetime" binding:"required"`
	Location      string    `json:"location"`
}

type EventUpdateInput struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Location      *string    `json:"location"`
}

func ListEvents(c *gin.Context) {
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
		q = q.Where("start_datetime >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date format"})
			return
		}
		q = q.Where("end_datetime <= ?", to)
	}

	var events []models.Event
	if err := q.Order("start_datetime ASC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.StartDatetime.Before(input.EndDatetime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start datetime must be before end datetime"})
		return
	}

	event := models.Event{
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		StartDatetime: input.StartDatetime,
		EndDatetime:   input.EndDatetime,
		Location:      input.Location,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func GetEvent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	event, ok := findEvent(c, userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

func UpdateEvent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	event, ok := findEvent(c, userID)
	if !ok {
		return
	}

	var input EventUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartDatetime != nil {
		event.StartDatetime = *input.StartDatetime
	}
	if input.EndDatetime != nil {
		event.EndDatetime = *input.EndDatetime
	}
	if input.Location != nil {
		event.Location = *input.Location
	}

	if !event.StartDatetime.Before(event.EndDatetime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start datetime must be before end datetime"})
		return
	}

	if err := config.DB.Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	event, ok := findEvent(c, userID)
	if !ok {
		return
	}

	if err := config.DB.Delete(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func findEvent(c *gin.Context, userID uint) (*models.Event, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	var event models.Event
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}
	return &event, true
}
