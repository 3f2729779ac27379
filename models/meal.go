package models

import (
	"time"

	"gorm.io/datatypes"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type Meal struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Name     string    `gorm:"not null" json:"name"`
	MealType MealType  `gorm:"size:20;not null" json:"meal_type"`
	Datetime time.Time `gorm:"index;not null" json:"datetime"`

	Calories float64 `json:"calories"` // kcal
	Carbs    float64 `json:"carbs"`    // g
	Protein  float64 `json:"protein"`  // g
	Fat      float64 `json:"fat"`      // g

	// Raw provider response for the nutrition lookup, kept for debugging.
	RawNutritionData datatypes.JSON `json:"raw_nutrition_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
