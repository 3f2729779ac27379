package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// NutritionData is the normalized result of a nutrition lookup.
type NutritionData struct {
	Calories float64         `json:"calories"`
	Carbs    float64         `json:"carbs"`
	Protein  float64         `json:"protein"`
	Fat      float64         `json:"fat"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

// NutritionLookup resolves free-text food descriptions to macros. The meal
// service depends on this interface only, so tests can stub it and the
// insights engine never sees the provider at all.
type NutritionLookup interface {
	Lookup(ctx context.Context, foodName, quantity string) (*NutritionData, error)
}

// NutritionService talks to a Nutritionix-style natural-language nutrients
// endpoint. Without an API key it serves deterministic keyword-based
// estimates so development and tests work offline.
type NutritionService struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewNutritionService() *NutritionService {
	baseURL := os.Getenv("NUTRITION_API_URL")
	if baseURL == "" {
		baseURL = "https://api.nutritionix.com/v1_1"
	}
	return &NutritionService{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  os.Getenv("NUTRITION_API_KEY"),
		baseURL: baseURL,
	}
}

type nutrientsResponse struct {
	Foods []struct {
		Calories float64 `json:"nf_calories"`
		Carbs    float64 `json:"nf_total_carbohydrate"`
		Protein  float64 `json:"nf_protein"`
		Fat      float64 `json:"nf_total_fat"`
	} `json:"foods"`
}

func (s *NutritionService) Lookup(ctx context.Context, foodName, quantity string) (*NutritionData, error) {
	if s.apiKey == "" {
		return mockNutritionData(foodName, quantity), nil
	}

	query := foodName
	if quantity != "" {
		query = quantity + " " + foodName
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/natural/nutrients", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("x-app-id", s.apiKey)
	req.Header.Set("x-app-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("nutrition API unreachable, serving estimate: %v", err)
		return mockNutritionData(foodName, quantity), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("nutrition API error %d, serving estimate: %s", resp.StatusCode, string(body))
		return mockNutritionData(foodName, quantity), nil
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}
	if len(nr.Foods) == 0 {
		return mockNutritionData(foodName, quantity), nil
	}

	food := nr.Foods[0]
	return &NutritionData{
		Calories: food.Calories,
		Carbs:    food.Carbs,
		Protein:  food.Protein,
		Fat:      food.Fat,
		Raw:      json.RawMessage(body),
	}, nil
}

// mockNutritionData gives rough per-category estimates when no provider is
// configured.
func mockNutritionData(foodName, quantity string) *NutritionData {
	foodLower := strings.ToLower(foodName)

	calories, carbs, protein, fat := 200.0, 30.0, 10.0, 5.0
	switch {
	case containsAny(foodLower, "salad", "vegetable", "lettuce"):
		calories, carbs, protein, fat = 50, 10, 2, 1
	case containsAny(foodLower, "chicken", "beef", "meat", "fish"):
		calories, carbs, protein, fat = 250, 0, 40, 10
	case containsAny(foodLower, "rice", "pasta", "bread", "potato"):
		calories, carbs, protein, fat = 300, 60, 8, 2
	case containsAny(foodLower, "burger", "pizza", "fries"):
		calories, carbs, protein, fat = 500, 50, 20, 25
	case containsAny(foodLower, "fruit", "apple", "banana", "orange"):
		calories, carbs, protein, fat = 80, 20, 1, 0
	case containsAny(foodLower, "yogurt", "milk", "cheese"):
		calories, carbs, protein, fat = 150, 15, 8, 5
	}

	raw, _ := json.Marshal(map[string]string{
		"source":    "mock",
		"food_name": foodName,
		"quantity":  quantity,
		"note":      "Mock data - configure NUTRITION_API_KEY for real data",
	})

	return &NutritionData{
		Calories: calories,
		Carbs:    carbs,
		Protein:  protein,
		Fat:      fat,
		Raw:      raw,
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
