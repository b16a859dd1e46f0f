package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/mocks"
	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/types"
)

const goodToken = "good-token"

type testAPI struct {
	router    *gin.Engine
	userID    uuid.UUID
	auth      *mocks.MockAuthService
	nutrition *mocks.MockNutritionService
	growth    *mocks.MockGrowthService
	symptoms  *mocks.MockSymptomService
	planner   *mocks.MockMealPlanService
}

func newTestAPI(t *testing.T, ping func(context.Context) error) *testAPI {
	gin.SetMode(gin.TestMode)

	a := &testAPI{
		router:    gin.New(),
		userID:    uuid.New(),
		auth:      new(mocks.MockAuthService),
		nutrition: new(mocks.MockNutritionService),
		growth:    new(mocks.MockGrowthService),
		symptoms:  new(mocks.MockSymptomService),
		planner:   new(mocks.MockMealPlanService),
	}
	a.auth.On("ValidateToken", goodToken).Return(&types.TokenClaims{UserID: a.userID, Username: "sam"}, nil).Maybe()
	a.auth.On("ValidateToken", mock.Anything).Return(nil, errors.New("invalid token")).Maybe()

	RegisterRoutes(a.router, Dependencies{
		Auth:                  a.auth,
		Nutrition:             a.nutrition,
		Growth:                a.growth,
		Symptoms:              a.symptoms,
		MealPlan:              a.planner,
		Ping:                  ping,
		Location:              time.UTC,
		DefaultTargetCalories: 2000,
	})

	t.Cleanup(func() {
		a.nutrition.AssertExpectations(t)
		a.growth.AssertExpectations(t)
		a.symptoms.AssertExpectations(t)
		a.planner.AssertExpectations(t)
	})
	return a
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+goodToken)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func sameTime(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func TestHealthCheck(t *testing.T) {
	a := newTestAPI(t, func(context.Context) error { return nil })
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	down := newTestAPI(t, func(context.Context) error { return errors.New("connection refused") })
	w = httptest.NewRecorder()
	down.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutesRequireToken(t *testing.T) {
	a := newTestAPI(t, nil)

	for _, path := range []string{"/api/v1/meal-plan/daily", "/api/v1/nutrition", "/api/v1/growth", "/api/v1/symptoms", "/api/v1/foods/search"} {
		w := httptest.NewRecorder()
		a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer forged")
		w = httptest.NewRecorder()
		a.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestMealPlanSuggestions(t *testing.T) {
	a := newTestAPI(t, nil)
	want := []mealplan.Suggestion{{FoodName: "Cheese", CaloriesPer100g: 402, RecommendedQuantity: 40, Unit: "g", Category: mealplan.Dairy}}
	a.planner.On("SlotSuggestions", mock.Anything, a.userID, 2500, 1200, mealplan.Snack).Return(want, nil).Once()

	w := a.do(http.MethodGet, "/api/v1/meal-plan/suggestions?target_calories=2500&current_calories=1200&meal_type=Snack", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []mealplan.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, want, resp.Suggestions)
}

func TestMealPlanSuggestionsErrors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		planErr  error
		wantCode int
	}{
		{name: "unknown meal type", query: "meal_type=brunch", wantCode: http.StatusBadRequest},
		{name: "non numeric target", query: "meal_type=lunch&target_calories=lots", wantCode: http.StatusBadRequest},
		{name: "rejected target", query: "meal_type=lunch&target_calories=0", planErr: &mealplan.ValidationError{Field: "target_calories", Message: "must be greater than 0"}, wantCode: http.StatusBadRequest},
		{name: "history down", query: "meal_type=lunch", planErr: fmt.Errorf("%w: timeout", mealplan.ErrDataUnavailable), wantCode: http.StatusServiceUnavailable},
		{name: "unexpected", query: "meal_type=lunch", planErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t, nil)
			if tt.planErr != nil {
				a.planner.On("SlotSuggestions", mock.Anything, a.userID, mock.Anything, 0, mealplan.Lunch).Return(nil, tt.planErr).Once()
			}

			w := a.do(http.MethodGet, "/api/v1/meal-plan/suggestions?"+tt.query, nil)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.NotContains(t, w.Body.String(), "boom")
		})
	}
}

func TestMealPlanDaily(t *testing.T) {
	a := newTestAPI(t, nil)
	plan := &mealplan.DailyPlan{Date: "2024-06-12", TargetCalories: 2000, CurrentCalories: 800, Breakfast: []mealplan.Suggestion{}}
	a.planner.On("DailyPlan", mock.Anything, a.userID, 2000, sameTime(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))).Return(plan, nil).Once()

	w := a.do(http.MethodGet, "/api/v1/meal-plan/daily?date=2024-06-12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"currentCalories":800`)

	w = a.do(http.MethodGet, "/api/v1/meal-plan/daily?date=12/06/2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealPlanAccept(t *testing.T) {
	a := newTestAPI(t, nil)
	suggestion := mealplan.Suggestion{FoodName: "Avocado", CaloriesPer100g: 160, RecommendedQuantity: 75, Unit: "g", Category: mealplan.Fats}
	entry := &models.NutritionEntry{ID: uuid.New(), FoodName: "Avocado", Calories: 120, IsHighCalorie: true}
	a.nutrition.On("AcceptSuggestion", mock.Anything, a.userID, mealplan.Dinner, (*time.Time)(nil), suggestion).Return(entry, nil).Once()

	w := a.do(http.MethodPost, "/api/v1/meal-plan/accept", types.AcceptSuggestionRequest{MealType: "dinner", Suggestion: suggestion})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"calories":120`)

	w = a.do(http.MethodPost, "/api/v1/meal-plan/accept", types.AcceptSuggestionRequest{MealType: "supper", Suggestion: suggestion})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/v1/meal-plan/accept", `{"suggestion":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoods(t *testing.T) {
	a := newTestAPI(t, nil)
	a.nutrition.On("SearchFoods", "che").Return([]string{"cheese"}).Once()
	a.nutrition.On("EstimateCalories", "rice", 1.0, "cup").Return(types.EstimateCaloriesResponse{Calories: 312}).Once()

	w := a.do(http.MethodGet, "/api/v1/foods/search?q=che", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"foods":["cheese"]}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/v1/foods/estimate", types.EstimateCaloriesRequest{FoodName: "rice", Quantity: 1, Unit: "cup"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"calories":312,"is_high_calorie":false}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/v1/foods/estimate", types.EstimateCaloriesRequest{FoodName: "rice", Quantity: 0, Unit: "cup"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNutritionCreate(t *testing.T) {
	a := newTestAPI(t, nil)
	entry := &models.NutritionEntry{ID: uuid.New(), FoodName: "Rice", Calories: 312}
	a.nutrition.On("CreateEntry", mock.Anything, a.userID, mock.MatchedBy(func(r *types.NutritionEntryRequest) bool {
		return r.FoodName == "Rice" && r.Calories == nil
	})).Return(entry, nil).Once()
	a.nutrition.On("CreateEntry", mock.Anything, a.userID, mock.MatchedBy(func(r *types.NutritionEntryRequest) bool {
		return r.FoodName == ""
	})).Return(nil, &service.EntryValidationError{Messages: []string{"Food name is required"}}).Once()

	w := a.do(http.MethodPost, "/api/v1/nutrition", types.NutritionEntryRequest{MealType: "lunch", FoodName: "Rice", Quantity: 1, Unit: "cup"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), entry.ID.String())

	w = a.do(http.MethodPost, "/api/v1/nutrition", types.NutritionEntryRequest{MealType: "lunch", Quantity: 1, Unit: "cup"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"validation failed","details":["Food name is required"]}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/v1/nutrition", `{"quantity":"many"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNutritionList(t *testing.T) {
	a := newTestAPI(t, nil)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	a.nutrition.On("ListEntries", mock.Anything, a.userID, sameTime(start), sameTime(end)).Return([]models.NutritionEntry{{FoodName: "Egg"}}, nil).Once()
	a.nutrition.On("RecentEntries", mock.Anything, a.userID, 50).Return([]models.NutritionEntry{}, nil).Once()
	a.nutrition.On("RecentEntries", mock.Anything, a.userID, 5).Return([]models.NutritionEntry{}, nil).Once()

	w := a.do(http.MethodGet, "/api/v1/nutrition?start=2024-06-01&end=2024-06-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"foodName":"Egg"`)

	w = a.do(http.MethodGet, "/api/v1/nutrition", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/nutrition?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, q := range []string{"start=2024-06-01", "start=2024-06-03&end=2024-06-01", "start=June&end=2024-06-01", "limit=0", "limit=x"} {
		w = a.do(http.MethodGet, "/api/v1/nutrition?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestNutritionEntryByID(t *testing.T) {
	a := newTestAPI(t, nil)
	id := uuid.New()
	missing := uuid.New()
	a.nutrition.On("GetEntry", mock.Anything, a.userID, id).Return(&models.NutritionEntry{ID: id}, nil).Once()
	a.nutrition.On("GetEntry", mock.Anything, a.userID, missing).Return(nil, service.ErrEntryNotFound).Once()
	a.nutrition.On("UpdateEntry", mock.Anything, a.userID, id, mock.Anything).Return(&models.NutritionEntry{ID: id, Quantity: 2}, nil).Once()
	a.nutrition.On("DeleteEntry", mock.Anything, a.userID, id).Return(nil).Once()
	a.nutrition.On("DeleteEntry", mock.Anything, a.userID, missing).Return(service.ErrEntryNotFound).Once()

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/v1/nutrition/"+id.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/v1/nutrition/"+missing.String(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/nutrition/not-a-uuid", nil).Code)

	w := a.do(http.MethodPut, "/api/v1/nutrition/"+id.String(), types.NutritionEntryRequest{MealType: "lunch", FoodName: "Egg", Quantity: 2, Unit: "piece"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":2`)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/v1/nutrition/"+id.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/api/v1/nutrition/"+missing.String(), nil).Code)
}

func TestNutritionDaily(t *testing.T) {
	a := newTestAPI(t, nil)
	summary := &service.DailySummary{Date: "2024-06-10", Calories: 337, Entries: []models.NutritionEntry{}, HighCalorieEntries: []models.NutritionEntry{}}
	a.nutrition.On("DailySummary", mock.Anything, a.userID, sameTime(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))).Return(summary, nil).Once()

	w := a.do(http.MethodGet, "/api/v1/nutrition/daily?date=2024-06-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2024-06-10","calories":337,"entries":[],"high_calorie_entries":[]}`, w.Body.String())
}

func TestGrowthRoutes(t *testing.T) {
	a := newTestAPI(t, nil)
	entry := &models.GrowthEntry{ID: uuid.New(), Weight: 70, Height: 170, BMI: 24.22}
	a.growth.On("CreateEntry", mock.Anything, a.userID, mock.Anything).Return(entry, nil).Once()

	w := a.do(http.MethodPost, "/api/v1/growth", types.GrowthEntryRequest{Weight: 70, WeightUnit: "kg", Height: 170, HeightUnit: "cm"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"bmi":24.22`)

	w = a.do(http.MethodPost, "/api/v1/growth", `{"weight":70,"height":170}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSymptomRoutes(t *testing.T) {
	a := newTestAPI(t, nil)
	id := uuid.New()
	a.symptoms.On("UpdateEntry", mock.Anything, a.userID, id, mock.MatchedBy(func(r *types.SymptomEntryRequest) bool {
		return r.VomitingEpisodes == 2 && r.VomitColor == ""
	})).Return(nil, &service.EntryValidationError{Messages: []string{"Please specify vomit color if vomiting occurred"}}).Once()

	w := a.do(http.MethodPut, "/api/v1/symptoms/"+id.String(), types.SymptomEntryRequest{VomitingEpisodes: 2})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please specify vomit color")
}

func TestRateLimitRoutesNeedLimiter(t *testing.T) {
	a := newTestAPI(t, nil)
	w := a.do(http.MethodGet, "/api/v1/rate-limits/meal-plan", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
