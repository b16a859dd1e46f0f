package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/types"
)

// IAuthService defines the interface for bearer token handling
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
}

// INutritionService defines the interface for the nutrition log
type INutritionService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *types.NutritionEntryRequest) (*models.NutritionEntry, error)
	GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.NutritionEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.NutritionEntry, error)
	RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error)
	UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.NutritionEntryRequest) (*models.NutritionEntry, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
	DailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*DailySummary, error)
	AcceptSuggestion(ctx context.Context, userID uuid.UUID, mealType mealplan.MealType, date *time.Time, suggestion mealplan.Suggestion) (*models.NutritionEntry, error)
	EstimateCalories(foodName string, quantity float64, unit string) types.EstimateCaloriesResponse
	SearchFoods(query string) []string
}

// IGrowthService defines the interface for growth measurements
type IGrowthService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *types.GrowthEntryRequest) (*models.GrowthEntry, error)
	GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.GrowthEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.GrowthEntry, error)
	RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.GrowthEntry, error)
	UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.GrowthEntryRequest) (*models.GrowthEntry, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
}

// ISymptomService defines the interface for symptom tracking
type ISymptomService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *types.SymptomEntryRequest) (*models.SymptomEntry, error)
	GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.SymptomEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.SymptomEntry, error)
	RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.SymptomEntry, error)
	UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.SymptomEntryRequest) (*models.SymptomEntry, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
}

var (
	_ IAuthService           = (*AuthService)(nil)
	_ INutritionService      = (*NutritionService)(nil)
	_ IGrowthService         = (*GrowthService)(nil)
	_ ISymptomService        = (*SymptomService)(nil)
	_ mealplan.HistoryReader = (*NutritionService)(nil)
)
