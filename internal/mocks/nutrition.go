package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/types"
)

// MockNutritionService is a mock implementation of the NutritionService interface
type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.NutritionEntryRequest) (*models.NutritionEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.NutritionEntry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionService) ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.NutritionEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.NutritionEntryRequest) (*models.NutritionEntry, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockNutritionService) DailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*service.DailySummary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DailySummary), args.Error(1)
}

func (m *MockNutritionService) AcceptSuggestion(ctx context.Context, userID uuid.UUID, mealType mealplan.MealType, date *time.Time, suggestion mealplan.Suggestion) (*models.NutritionEntry, error) {
	args := m.Called(ctx, userID, mealType, date, suggestion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionService) EstimateCalories(foodName string, quantity float64, unit string) types.EstimateCaloriesResponse {
	args := m.Called(foodName, quantity, unit)
	return args.Get(0).(types.EstimateCaloriesResponse)
}

func (m *MockNutritionService) SearchFoods(query string) []string {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
