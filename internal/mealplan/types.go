// Package mealplan ranks high-calorie food suggestions for a meal slot and
// assembles them into daily plans.
package mealplan

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MealType is one of the four meal slots used for logging and suggestions.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists the slots in the order a day is planned.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// ParseMealType normalizes s into a MealType.
func ParseMealType(s string) (MealType, error) {
	switch m := MealType(strings.ToLower(strings.TrimSpace(s))); m {
	case Breakfast, Lunch, Dinner, Snack:
		return m, nil
	default:
		return "", &ValidationError{Field: "meal_type", Message: "must be one of breakfast, lunch, dinner, snack"}
	}
}

// Valid reports whether m is a known slot.
func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Category groups catalog foods for slot filtering and variety hints.
type Category string

const (
	Protein    Category = "protein"
	Dairy      Category = "dairy"
	Grains     Category = "grains"
	Fruits     Category = "fruits"
	Vegetables Category = "vegetables"
	Nuts       Category = "nuts"
	Fats       Category = "fats"
)

func (c Category) valid() bool {
	switch c {
	case Protein, Dairy, Grains, Fruits, Vegetables, Nuts, Fats:
		return true
	}
	return false
}

// slotCategories are the catalog categories offered for each slot.
var slotCategories = map[MealType][]Category{
	Breakfast: {Grains, Dairy, Fruits, Protein},
	Lunch:     {Protein, Grains, Vegetables, Dairy},
	Dinner:    {Protein, Grains, Vegetables, Dairy},
	Snack:     {Nuts, Fruits, Dairy},
}

// Allows reports whether foods of category c may be suggested for m.
func (m MealType) Allows(c Category) bool {
	for _, allowed := range slotCategories[m] {
		if allowed == c {
			return true
		}
	}
	return false
}

// Suggestion is a food recommended for a slot, with the quantity and the
// explanation tailored to the user.
type Suggestion struct {
	FoodName            string   `json:"foodName"`
	CaloriesPer100g     float64  `json:"caloriesPer100g"`
	RecommendedQuantity float64  `json:"recommendedQuantity"`
	Unit                string   `json:"unit"`
	Reason              string   `json:"reason"`
	Category            Category `json:"category"`
	Benefits            []string `json:"benefits"`
}

// BaseCalories is the energy of the suggestion at its recommended quantity.
func (s Suggestion) BaseCalories() float64 {
	return s.CaloriesPer100g / 100 * s.RecommendedQuantity
}

// HistoryEntry is the slice of a logged nutrition entry the engine reads.
type HistoryEntry struct {
	FoodName string
	Calories int
	Date     time.Time
	MealType MealType
}

// HistoryReader returns a user's logged entries with Date in [start, end],
// newest first. An empty range is not an error.
type HistoryReader interface {
	EntriesByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]HistoryEntry, error)
}

// Service is the in-process meal planning API.
type Service interface {
	SlotSuggestions(ctx context.Context, userID uuid.UUID, targetCalories, currentCalories int, mealType MealType) ([]Suggestion, error)
	DailyPlan(ctx context.Context, userID uuid.UUID, targetCalories int, date time.Time) (*DailyPlan, error)
}
