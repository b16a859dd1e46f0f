package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/growplate/backend/internal/calorie"
	"github.com/pageza/growplate/backend/internal/dates"
	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/types"
)

// DailySummary is the nutrition log of one calendar day.
type DailySummary struct {
	Date               string                  `json:"date"`
	Calories           int                     `json:"calories"`
	Entries            []models.NutritionEntry `json:"entries"`
	HighCalorieEntries []models.NutritionEntry `json:"high_calorie_entries"`
}

type NutritionService struct {
	store     userStore[models.NutritionEntry]
	estimator *calorie.Estimator
	location  *time.Location
	logger    *zap.Logger
	now       func() time.Time
}

func NewNutritionService(db *gorm.DB, estimator *calorie.Estimator, location *time.Location, logger *zap.Logger) *NutritionService {
	if estimator == nil {
		estimator = calorie.NewEstimator(nil)
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NutritionService{
		store:     userStore[models.NutritionEntry]{db: db, kind: "nutrition"},
		estimator: estimator,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *NutritionService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.NutritionEntryRequest) (*models.NutritionEntry, error) {
	entry := &models.NutritionEntry{UserID: userID}
	if err := s.apply(entry, req); err != nil {
		return nil, err
	}
	if err := s.store.create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("nutrition entry created",
		zap.String("user_id", userID.String()),
		zap.String("entry_id", entry.ID.String()),
		zap.String("meal_type", string(entry.MealType)),
		zap.Int("calories", entry.Calories),
	)
	return entry, nil
}

func (s *NutritionService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*models.NutritionEntry, error) {
	return s.store.get(ctx, userID, id)
}

func (s *NutritionService) ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.NutritionEntry, error) {
	return s.store.between(ctx, userID, start.UTC(), end.UTC())
}

func (s *NutritionService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error) {
	return s.store.recent(ctx, userID, limit)
}

func (s *NutritionService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.NutritionEntryRequest) (*models.NutritionEntry, error) {
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

func (s *NutritionService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	return s.store.delete(ctx, userID, id)
}

// DailySummary totals the entries logged on date's local calendar day.
func (s *NutritionService) DailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*DailySummary, error) {
	start := dates.StartOfDay(date, s.location)
	entries, err := s.ListEntries(ctx, userID, start, dates.EndOfDay(date, s.location))
	if err != nil {
		return nil, err
	}
	return &DailySummary{
		Date:               start.Format(dates.Layout),
		Calories:           models.DailyCalories(entries),
		Entries:            entries,
		HighCalorieEntries: models.HighCalorieEntries(entries),
	}, nil
}

// EntriesByDateRange serves the meal planner's view of the log.
func (s *NutritionService) EntriesByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]mealplan.HistoryEntry, error) {
	entries, err := s.ListEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	history := make([]mealplan.HistoryEntry, len(entries))
	for i, e := range entries {
		history[i] = e.History()
	}
	return history, nil
}

// AcceptSuggestion logs a suggested food at its recommended quantity. The
// entry is always flagged high-calorie.
func (s *NutritionService) AcceptSuggestion(ctx context.Context, userID uuid.UUID, mealType mealplan.MealType, date *time.Time, suggestion mealplan.Suggestion) (*models.NutritionEntry, error) {
	calories := int(math.Round(suggestion.CaloriesPer100g / 100 * suggestion.RecommendedQuantity))
	highCalorie := true

	return s.CreateEntry(ctx, userID, &types.NutritionEntryRequest{
		Date:          date,
		MealType:      string(mealType),
		FoodName:      suggestion.FoodName,
		Quantity:      suggestion.RecommendedQuantity,
		Unit:          suggestion.Unit,
		Calories:      &calories,
		IsHighCalorie: &highCalorie,
	})
}

// EstimateCalories exposes the estimator for ad-hoc lookups.
func (s *NutritionService) EstimateCalories(foodName string, quantity float64, unit string) types.EstimateCaloriesResponse {
	return types.EstimateCaloriesResponse{
		Calories:      s.estimator.EstimateCalories(foodName, quantity, unit),
		IsHighCalorie: s.estimator.IsHighCalorie(foodName),
	}
}

func (s *NutritionService) SearchFoods(query string) []string {
	return s.estimator.SearchFoods(query)
}

// apply copies req onto entry, filling calories and the high-calorie flag
// from the estimator when the client left them out.
func (s *NutritionService) apply(entry *models.NutritionEntry, req *types.NutritionEntryRequest) error {
	entry.Date = s.now().UTC()
	if req.Date != nil {
		entry.Date = req.Date.UTC()
	}
	entry.MealType = mealplan.MealType(req.MealType)
	if m, err := mealplan.ParseMealType(req.MealType); err == nil {
		entry.MealType = m
	}
	entry.FoodName = req.FoodName
	entry.Quantity = req.Quantity
	entry.Unit = req.Unit
	entry.Notes = req.Notes
	entry.Normalize()

	if req.Calories != nil {
		entry.Calories = *req.Calories
	} else {
		entry.Calories = s.estimator.EstimateCalories(entry.FoodName, entry.Quantity, entry.Unit)
	}
	if req.IsHighCalorie != nil {
		entry.IsHighCalorie = *req.IsHighCalorie
	} else {
		entry.IsHighCalorie = s.estimator.IsHighCalorie(entry.FoodName)
	}

	return validationError(entry.Validate())
}
