package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/growplate/backend/internal/mealplan"
)

// MockMealPlanService is a mock implementation of mealplan.Service
type MockMealPlanService struct {
	mock.Mock
}

func (m *MockMealPlanService) SlotSuggestions(ctx context.Context, userID uuid.UUID, targetCalories, currentCalories int, mealType mealplan.MealType) ([]mealplan.Suggestion, error) {
	args := m.Called(ctx, userID, targetCalories, currentCalories, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealplan.Suggestion), args.Error(1)
}

func (m *MockMealPlanService) DailyPlan(ctx context.Context, userID uuid.UUID, targetCalories int, date time.Time) (*mealplan.DailyPlan, error) {
	args := m.Called(ctx, userID, targetCalories, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealplan.DailyPlan), args.Error(1)
}
