package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/types"
	"github.com/pageza/growplate/backend/internal/units"
)

type GrowthService struct {
	store  userStore[models.GrowthEntry]
	logger *zap.Logger
	now    func() time.Time
}

func NewGrowthService(db *gorm.DB, logger *zap.Logger) *GrowthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GrowthService{
		store:  userStore[models.GrowthEntry]{db: db, kind: "growth"},
		logger: logger,
		now:    time.Now,
	}
}

func (s *GrowthService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.GrowthEntryRequest) (*models.GrowthEntry, error) {
	entry := &models.GrowthEntry{UserID: userID}
	if err := s.apply(entry, req); err != nil {
		return nil, err
	}
	if err := s.store.create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("growth entry created",
		zap.String("user_id", userID.String()),
		zap.String("entry_id", entry.ID.String()),
		zap.Float64("bmi", entry.BMI),
	)
	return entry, nil
}

func (s *GrowthService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.GrowthEntry, error) {
	return s.store.get(ctx, userID, id)
}

func (s *GrowthService) ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.GrowthEntry, error) {
	return s.store.between(ctx, userID, start.UTC(), end.UTC())
}

func (s *GrowthService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.GrowthEntry, error) {
	return s.store.recent(ctx, userID, limit)
}

// UpdateEntry replaces the measurement and recomputes BMI.
func (s *GrowthService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.GrowthEntryRequest) (*models.GrowthEntry, error) {
	entry, err := s.store.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Date == nil {
		d := entry.Date
		req.Date = &d
	}
	if err := s.apply(entry, req); err != nil {
		return nil, err
	}
	if err := s.store.save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *GrowthService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	return s.store.delete(ctx, userID, id)
}

func (s *GrowthService) apply(entry *models.GrowthEntry, req *types.GrowthEntryRequest) error {
	var msgs []string
	weightUnit, err := units.ParseWeightUnit(req.WeightUnit)
	if err != nil {
		msgs = append(msgs, "Weight unit must be kg or lbs")
	}
	heightUnit, err := units.ParseHeightUnit(req.HeightUnit)
	if err != nil {
		msgs = append(msgs, "Height unit must be cm or inches")
	}
	if len(msgs) > 0 {
		return validationError(msgs)
	}

	entry.Date = s.now().UTC()
	if req.Date != nil {
		entry.Date = req.Date.UTC()
	}
	entry.Weight = req.Weight
	entry.WeightUnit = weightUnit
	entry.Height = req.Height
	entry.HeightUnit = heightUnit

	if err := validationError(entry.Validate()); err != nil {
		return err
	}
	entry.ComputeBMI()
	return nil
}
