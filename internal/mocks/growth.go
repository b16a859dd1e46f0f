package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/types"
)

// MockGrowthService is a mock implementation of the GrowthService interface
type MockGrowthService struct {
	mock.Mock
}

func (m *MockGrowthService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.GrowthEntryRequest) (*models.GrowthEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GrowthEntry), args.Error(1)
}

func (m *MockGrowthService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.GrowthEntry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GrowthEntry), args.Error(1)
}

func (m *MockGrowthService) ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.GrowthEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GrowthEntry), args.Error(1)
}

func (m *MockGrowthService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.GrowthEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GrowthEntry), args.Error(1)
}

func (m *MockGrowthService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.GrowthEntryRequest) (*models.GrowthEntry, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GrowthEntry), args.Error(1)
}

func (m *MockGrowthService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
