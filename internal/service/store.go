package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userStore holds the queries shared by the per-user tracker tables. Every
// query is scoped to the owning user so one caregiver can never read or
// change another's entries.
type userStore[T any] struct {
	db   *gorm.DB
	kind string
}

func (s userStore[T]) create(ctx context.Context, entry *T) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create %s entry: %w", s.kind, err)
	}
	return nil
}

func (s userStore[T]) get(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var entry T
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get %s entry: %w", s.kind, err)
	}
	return &entry, nil
}

// between returns entries dated in [start, end], newest first.
func (s userStore[T]) between(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]T, error) {
	entries := []T{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", s.kind, err)
	}
	return entries, nil
}

// recent returns the latest limit entries, newest first.
func (s userStore[T]) recent(ctx context.Context, userID uuid.UUID, limit int) ([]T, error) {
	entries := []T{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", s.kind, err)
	}
	return entries, nil
}

func (s userStore[T]) save(ctx context.Context, entry *T) error {
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update %s entry: %w", s.kind, err)
	}
	return nil
}

func (s userStore[T]) delete(ctx context.Context, userID, id uuid.UUID) error {
	var entry T
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entry)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s entry: %w", s.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
