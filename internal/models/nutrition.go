package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/growplate/backend/internal/mealplan"
)

// NutritionEntry is one food logged against a meal slot.
type NutritionEntry struct {
	ID            uuid.UUID         `gorm:"type:uuid;primarykey" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_nutrition_user_date,priority:1" json:"userId"`
	Date          time.Time         `gorm:"not null;index:idx_nutrition_user_date,priority:2" json:"date"`
	MealType      mealplan.MealType `gorm:"size:16;not null" json:"mealType"`
	FoodName      string            `gorm:"size:255;not null" json:"foodName"`
	Quantity      float64           `gorm:"not null" json:"quantity"`
	Unit          string            `gorm:"size:32;not null" json:"unit"`
	Calories      int               `gorm:"not null" json:"calories"`
	IsHighCalorie bool              `gorm:"not null;default:false" json:"isHighCalorie"`
	Notes         string            `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

// TableName returns the table name for the NutritionEntry model
func (NutritionEntry) TableName() string {
	return "nutrition_entries"
}

func (e *NutritionEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Normalize trims the free-text fields before the entry is stored.
func (e *NutritionEntry) Normalize() {
	e.FoodName = strings.TrimSpace(e.FoodName)
	e.Unit = strings.TrimSpace(e.Unit)
	e.Notes = strings.TrimSpace(e.Notes)
}

// Validate returns the problems with the entry, or nil.
func (e *NutritionEntry) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.FoodName) == "" {
		errs = append(errs, "Food name is required")
	}
	if e.Quantity <= 0 {
		errs = append(errs, "Quantity must be greater than 0")
	}
	if strings.TrimSpace(e.Unit) == "" {
		errs = append(errs, "Unit is required")
	}
	if e.Calories < 0 {
		errs = append(errs, "Calories cannot be negative")
	}
	if !e.MealType.Valid() {
		errs = append(errs, "Meal type must be breakfast, lunch, dinner or snack")
	}
	return errs
}

// History converts the entry to the view the meal planner reads.
func (e NutritionEntry) History() mealplan.HistoryEntry {
	return mealplan.HistoryEntry{
		FoodName: e.FoodName,
		Calories: e.Calories,
		Date:     e.Date,
		MealType: e.MealType,
	}
}

// DailyCalories sums the calories of entries.
func DailyCalories(entries []NutritionEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	return total
}

// HighCalorieEntries returns the entries flagged as high-calorie, in order.
func HighCalorieEntries(entries []NutritionEntry) []NutritionEntry {
	out := make([]NutritionEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsHighCalorie {
			out = append(out, e)
		}
	}
	return out
}
