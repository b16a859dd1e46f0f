package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/types"
)

// MockSymptomService is a mock implementation of the SymptomService interface
type MockSymptomService struct {
	mock.Mock
}

func (m *MockSymptomService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.SymptomEntryRequest) (*models.SymptomEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SymptomEntry), args.Error(1)
}

func (m *MockSymptomService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.SymptomEntry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SymptomEntry), args.Error(1)
}

func (m *MockSymptomService) ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.SymptomEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SymptomEntry), args.Error(1)
}

func (m *MockSymptomService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.SymptomEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SymptomEntry), args.Error(1)
}

func (m *MockSymptomService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.SymptomEntryRequest) (*models.SymptomEntry, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SymptomEntry), args.Error(1)
}

func (m *MockSymptomService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
