package mealplan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/growplate/backend/internal/dates"
)

// DefaultPlanTimeout bounds a whole daily plan when none is configured.
const DefaultPlanTimeout = 10 * time.Second

// DailyPlan holds independent suggestion menus for each slot of a day. Every
// slot is ranked against the same CurrentCalories. A slot whose computation
// failed has a nil list and an entry in Failures; an empty list means the
// catalog had nothing to offer.
type DailyPlan struct {
	Date            string              `json:"date"`
	TargetCalories  int                 `json:"targetCalories"`
	CurrentCalories int                 `json:"currentCalories"`
	Breakfast       []Suggestion        `json:"breakfast"`
	Lunch           []Suggestion        `json:"lunch"`
	Dinner          []Suggestion        `json:"dinner"`
	Snacks          []Suggestion        `json:"snacks"`
	Failures        map[MealType]string `json:"failures,omitempty"`
}

func (p *DailyPlan) set(m MealType, s []Suggestion) {
	switch m {
	case Breakfast:
		p.Breakfast = s
	case Lunch:
		p.Lunch = s
	case Dinner:
		p.Dinner = s
	case Snack:
		p.Snacks = s
	}
}

// Slot returns the suggestions planned for m.
func (p *DailyPlan) Slot(m MealType) []Suggestion {
	switch m {
	case Breakfast:
		return p.Breakfast
	case Lunch:
		return p.Lunch
	case Dinner:
		return p.Dinner
	case Snack:
		return p.Snacks
	}
	return nil
}

// Planner implements Service on top of an Engine.
type Planner struct {
	engine   *Engine
	history  HistoryReader
	location *time.Location
	timeout  time.Duration
	logger   *zap.Logger
}

var _ Service = (*Planner)(nil)

// PlannerConfig tunes a Planner.
type PlannerConfig struct {
	// Location defines the calendar day used to total consumed calories.
	Location *time.Location
	// Timeout is the shared deadline for all four slots.
	Timeout time.Duration
}

// NewPlanner creates a Planner that reads today's intake from history and
// ranks each slot with engine.
func NewPlanner(engine *Engine, history HistoryReader, cfg PlannerConfig, logger *zap.Logger) *Planner {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultPlanTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		engine:   engine,
		history:  history,
		location: cfg.Location,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

// SlotSuggestions delegates to the engine.
func (p *Planner) SlotSuggestions(ctx context.Context, userID uuid.UUID, targetCalories, currentCalories int, mealType MealType) ([]Suggestion, error) {
	return p.engine.SlotSuggestions(ctx, userID, targetCalories, currentCalories, mealType)
}

// DailyPlan totals the calories logged on date and ranks all four slots
// concurrently. Slots that fail are reported in Failures; if every slot
// fails the first failure is returned instead of a plan.
func (p *Planner) DailyPlan(ctx context.Context, userID uuid.UUID, targetCalories int, date time.Time) (*DailyPlan, error) {
	if err := validateCalories(targetCalories, 0); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := dates.StartOfDay(date, p.location)
	end := dates.EndOfDay(date, p.location)
	today, err := p.history.EntriesByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read entries for %s: %w", ErrDataUnavailable, start.Format(dates.Layout), err)
	}

	current := 0
	for _, entry := range today {
		current += entry.Calories
	}

	plan := &DailyPlan{
		Date:            start.Format(dates.Layout),
		TargetCalories:  targetCalories,
		CurrentCalories: current,
	}

	// Each goroutine writes only its own index.
	results := make([][]Suggestion, len(MealTypes))
	errs := make([]error, len(MealTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range MealTypes {
		g.Go(func() error {
			results[i], errs[i] = p.engine.SlotSuggestions(gctx, userID, targetCalories, current, slot)
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	for i, slot := range MealTypes {
		if errs[i] == nil {
			plan.set(slot, results[i])
			continue
		}
		if plan.Failures == nil {
			plan.Failures = make(map[MealType]string)
		}
		plan.Failures[slot] = errs[i].Error()
		if firstErr == nil {
			firstErr = errs[i]
		}
	}
	if len(plan.Failures) == len(MealTypes) {
		return nil, firstErr
	}
	if len(plan.Failures) > 0 {
		p.logger.Warn("daily plan is partial",
			zap.String("user_id", userID.String()),
			zap.String("date", plan.Date),
			zap.Int("failed_slots", len(plan.Failures)),
		)
	}
	return plan, nil
}

