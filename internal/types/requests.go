package types

import (
	"time"

	"github.com/pageza/growplate/backend/internal/mealplan"
)

// NutritionEntryRequest is the body for creating or replacing a nutrition
// entry. Calories and IsHighCalorie are estimated when omitted.
type NutritionEntryRequest struct {
	Date          *time.Time `json:"date"`
	MealType      string     `json:"meal_type"`
	FoodName      string     `json:"food_name"`
	Quantity      float64    `json:"quantity"`
	Unit          string     `json:"unit"`
	Calories      *int       `json:"calories"`
	IsHighCalorie *bool      `json:"is_high_calorie"`
	Notes         string     `json:"notes"`
}

// GrowthEntryRequest is the body for creating or replacing a measurement.
type GrowthEntryRequest struct {
	Date       *time.Time `json:"date"`
	Weight     float64    `json:"weight"`
	WeightUnit string     `json:"weight_unit" binding:"required"`
	Height     float64    `json:"height"`
	HeightUnit string     `json:"height_unit" binding:"required"`
}

// SymptomTriggersRequest mirrors models.SymptomTriggers on the wire.
type SymptomTriggersRequest struct {
	Foods   []string `json:"foods"`
	Stress  bool     `json:"stress"`
	ColdFlu bool     `json:"cold_flu"`
}

// SymptomEntryRequest is the body for creating or replacing a symptom entry.
type SymptomEntryRequest struct {
	Date              *time.Time             `json:"date"`
	HeartburnSeverity int                    `json:"heartburn_severity"`
	Nausea            bool                   `json:"nausea"`
	NauseaSeverity    int                    `json:"nausea_severity"`
	VomitingEpisodes  int                    `json:"vomiting_episodes"`
	VomitingFrequency string                 `json:"vomiting_frequency"`
	VomitColor        string                 `json:"vomit_color"`
	Triggers          SymptomTriggersRequest `json:"triggers"`
	Notes             string                 `json:"notes"`
}

// AcceptSuggestionRequest logs a suggestion the caregiver chose to serve.
type AcceptSuggestionRequest struct {
	MealType   string              `json:"meal_type" binding:"required"`
	Date       *time.Time          `json:"date"`
	Suggestion mealplan.Suggestion `json:"suggestion"`
}

// EstimateCaloriesRequest asks for the calories of a quantity of food.
type EstimateCaloriesRequest struct {
	FoodName string  `json:"food_name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// EstimateCaloriesResponse is the result of a calorie estimate.
type EstimateCaloriesResponse struct {
	Calories      int  `json:"calories"`
	IsHighCalorie bool `json:"is_high_calorie"`
}
