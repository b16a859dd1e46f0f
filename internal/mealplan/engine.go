package mealplan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/growplate/backend/internal/dates"
)

// HistoryDays is the length of the trailing window used to profile a user.
const HistoryDays = 7

// Engine produces ranked suggestions for a single meal slot.
type Engine struct {
	catalog *Catalog
	history HistoryReader
	logger  *zap.Logger
	now     func() time.Time
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over catalog and history. A nil catalog
// selects DefaultCatalog.
func NewEngine(catalog *Catalog, history HistoryReader, logger *zap.Logger, opts ...EngineOption) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		catalog: catalog,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SlotSuggestions ranks catalog foods for mealType against the user's last
// HistoryDays of logged food. Inputs are validated before history is read.
func (e *Engine) SlotSuggestions(ctx context.Context, userID uuid.UUID, targetCalories, currentCalories int, mealType MealType) ([]Suggestion, error) {
	if err := validateCalories(targetCalories, currentCalories); err != nil {
		return nil, err
	}
	if !mealType.Valid() {
		return nil, &ValidationError{Field: "meal_type", Message: fmt.Sprintf("unknown meal type %q", mealType)}
	}

	start, end := dates.TrailingDays(e.now(), HistoryDays)
	history, err := e.history.EntriesByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read history for %s: %w", ErrDataUnavailable, mealType, err)
	}

	p := buildProfile(e.catalog, history)
	caloriesNeeded := targetCalories - currentCalories
	suggestions := rank(e.catalog, p, mealType, caloriesNeeded)

	e.logger.Debug("ranked meal suggestions",
		zap.String("user_id", userID.String()),
		zap.String("meal_type", string(mealType)),
		zap.Int("calories_needed", caloriesNeeded),
		zap.Int("history_entries", len(history)),
		zap.Int("frequent_foods", len(p.frequent)),
		zap.Int("suggestions", len(suggestions)),
	)
	return suggestions, nil
}
