package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/middleware"
	"github.com/pageza/growplate/backend/internal/testhelpers"
)

func TestMealPlanRateLimit(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	a := newTestAPI(t, nil)
	a.router = gin.New()

	limiter := middleware.NewMealPlanRateLimiter(client, 2, nil)
	RegisterRoutes(a.router, Dependencies{
		Auth:                  a.auth,
		Nutrition:             a.nutrition,
		MealPlan:              a.planner,
		Limiter:               limiter,
		Location:              time.UTC,
		DefaultTargetCalories: 2000,
	})
	a.planner.On("SlotSuggestions", mock.Anything, a.userID, 2000, 0, mealplan.Breakfast).Return([]mealplan.Suggestion{}, nil).Twice()

	for i := 0; i < 2; i++ {
		w := a.do(http.MethodGet, "/api/v1/meal-plan/suggestions?meal_type=breakfast", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := a.do(http.MethodGet, "/api/v1/meal-plan/suggestions?meal_type=breakfast", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = a.do(http.MethodGet, "/api/v1/rate-limits/meal-plan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quota struct {
		Limit     int `json:"limit"`
		Remaining int `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quota))
	assert.Equal(t, 2, quota.Limit)
	assert.Equal(t, 0, quota.Remaining)

	unauthenticated := httptest.NewRecorder()
	a.router.ServeHTTP(unauthenticated, httptest.NewRequest(http.MethodGet, "/api/v1/rate-limits/meal-plan", nil))
	assert.Equal(t, http.StatusUnauthorized, unauthenticated.Code)
}
