package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MehmoodAhmad21/Trackme/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealService struct {
	db        *gorm.DB
	nutrition NutritionLookup
}

func NewMealService(db *gorm.DB, nutrition NutritionLookup) *MealService {
	return &MealService{db: db, nutrition: nutrition}
}

type MealInput struct {
	Name     string          `json:"name" binding:"required"`
	MealType models.MealType `json:"meal_type" binding:"required"`
	Datetime time.Time       `json:"datetime" binding:"required"`
	Quantity string          `json:"quantity"` // free text, e.g. "2 slices"

	// Manual macros; when Calories is omitted the nutrition provider is
	// asked to estimate all four from the meal name.
	Calories *float64 `json:"calories"`
	Carbs    *float64 `json:"carbs"`
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
}

type MealUpdateInput struct {
	Name     *string          `json:"name"`
	MealType *models.MealType `json:"meal_type"`
	Datetime *time.Time       `json:"datetime"`
	Calories *float64         `json:"calories"`
	Carbs    *float64         `json:"carbs"`
	Protein  *float64         `json:"protein"`
	Fat      *float64         `json:"fat"`
}

// DailySummary aggregates one calendar day of meals.
type DailySummary struct {
	Date          string        `json:"date"`
	TotalCalories float64       `json:"total_calories"`
	TotalCarbs    float64       `json:"total_carbs"`
	TotalProtein  float64       `json:"total_protein"`
	TotalFat      float64       `json:"total_fat"`
	Meals         []models.Meal `json:"meals"`
}

func (s *MealService) Create(ctx context.Context, userID uint, input MealInput) (*models.Meal, error) {
	meal := models.Meal{
		UserID:   userID,
		Name:     input.Name,
		MealType: input.MealType,
		Datetime: input.Datetime,
	}

	if input.Calories == nil {
		nut, err := s.nutrition.Lookup(ctx, input.Name, input.Quantity)
		if err != nil {
			return nil, fmt.Errorf("nutrition lookup for %q: %w", input.Name, err)
		}
		meal.Calories = nut.Calories
		meal.Carbs = nut.Carbs
		meal.Protein = nut.Protein
		meal.Fat = nut.Fat
		if len(nut.Raw) > 0 {
			meal.RawNutritionData = datatypes.JSON(nut.Raw)
		}
	} else {
		meal.Calories = *input.Calories
		if input.Carbs != nil {
			meal.Carbs = *input.Carbs
		}
		if input.Protein != nil {
			meal.Protein = *input.Protein
		}
		if input.Fat != nil {
			meal.Fat = *input.Fat
		}
	}

	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// List returns the user's meals newest first, optionally restricted to one
// calendar day.
func (s *MealService) List(ctx context.Context, userID uint, day *time.Time) ([]models.Meal, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if day != nil {
		start := dayStart(*day)
		q = q.Where("datetime >= ? AND datetime < ?", start, start.AddDate(0, 0, 1))
	}

	var meals []models.Meal
	err := q.Order("datetime DESC").Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // may be gorm.ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) Update(ctx context.Context, userID, mealID uint, input MealUpdateInput) (*models.Meal, error) {
	meal, err := s.Get(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		meal.Name = *input.Name
	}
	if input.MealType != nil {
		meal.MealType = *input.MealType
	}
	if input.Datetime != nil {
		meal.Datetime = *input.Datetime
	}
	if input.Calories != nil {
		meal.Calories = *input.Calories
	}
	if input.Carbs != nil {
		meal.Carbs = *input.Carbs
	}
	if input.Protein != nil {
		meal.Protein = *input.Protein
	}
	if input.Fat != nil {
		meal.Fat = *input.Fat
	}

	if err := s.db.WithContext(ctx).Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uint) error {
	meal, err := s.Get(ctx, userID, mealID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(meal).Error
}

// DailySummaries returns one entry per calendar day in [from, to], including
// days without meals, so charts get a continuous series.
func (s *MealService) DailySummaries(ctx context.Context, userID uint, from, to time.Time) ([]DailySummary, error) {
	start := dayStart(from)
	end := dayStart(to)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND datetime >= ? AND datetime < ?", userID, start, end.AddDate(0, 0, 1)).
		Order("datetime ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	byDay := map[string][]models.Meal{}
	for _, m := range meals {
		key := m.Datetime.Format("2006-01-02")
		byDay[key] = append(byDay[key], m)
	}

	var summaries []DailySummary
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		summary := DailySummary{Date: key, Meals: []models.Meal{}}
		for _, m := range byDay[key] {
			summary.TotalCalories += m.Calories
			summary.TotalCarbs += m.Carbs
			summary.TotalProtein += m.Protein
			summary.TotalFat += m.Fat
			summary.Meals = append(summary.Meals, m)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
