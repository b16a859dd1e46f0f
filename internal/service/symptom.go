package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/types"
)

type SymptomService struct {
	store  userStore[models.SymptomEntry]
	logger *zap.Logger
	now    func() time.Time
}

func NewSymptomService(db *gorm.DB, logger *zap.Logger) *SymptomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SymptomService{
		store:  userStore[models.SymptomEntry]{db: db, kind: "symptom"},
		logger: logger,
		now:    time.Now,
	}
}

func (s *SymptomService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.SymptomEntryRequest) (*models.SymptomEntry, error) {
	entry := &models.SymptomEntry{UserID: userID}
	if err := s.apply(entry, req); err != nil {
		return nil, err
	}
	if err := s.store.create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("symptom entry created",
		zap.String("user_id", userID.String()),
		zap.String("entry_id", entry.ID.String()),
	)
	return entry, nil
}

func (s *SymptomService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.SymptomEntry, error) {
	return s.store.get(ctx, userID, id)
}

func (s *SymptomService) ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.SymptomEntry, error) {
	return s.store.between(ctx, userID, start.UTC(), end.UTC())
}

func (s *SymptomService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.SymptomEntry, error) {
	return s.store.recent(ctx, userID, limit)
}

func (s *SymptomService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.SymptomEntryRequest) (*models.SymptomEntry, error) {
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

func (s *SymptomService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	return s.store.delete(ctx, userID, id)
}

func (s *SymptomService) apply(entry *models.SymptomEntry, req *types.SymptomEntryRequest) error {
	entry.Date = s.now().UTC()
	if req.Date != nil {
		entry.Date = req.Date.UTC()
	}
	entry.HeartburnSeverity = req.HeartburnSeverity
	entry.Nausea = req.Nausea
	entry.NauseaSeverity = req.NauseaSeverity
	entry.VomitingEpisodes = req.VomitingEpisodes
	entry.VomitingFrequency = req.VomitingFrequency
	entry.VomitColor = req.VomitColor
	entry.Triggers = models.SymptomTriggers{
		Foods:   req.Triggers.Foods,
		Stress:  req.Triggers.Stress,
		ColdFlu: req.Triggers.ColdFlu,
	}
	entry.Notes = req.Notes
	entry.Normalize()

	return validationError(entry.Validate())
}
