package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/middleware"
	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/types"
)

// Dependencies are the services the HTTP API is built from.
type Dependencies struct {
	Auth      service.IAuthService
	Nutrition service.INutritionService
	Growth    service.IGrowthService
	Symptoms  service.ISymptomService
	MealPlan  mealplan.Service

	// Limiter guards the meal-plan endpoints. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
	// Ping reports storage health for /health. Nil skips the check.
	Ping func(ctx context.Context) error

	Location              *time.Location
	DefaultTargetCalories int
	Logger                *zap.Logger
}

// HealthCheck returns the health status of the API
func HealthCheck(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Growplate API is running",
			"version": "v1.0.0",
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck(deps.Ping))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.Auth))

	var limit gin.HandlerFunc
	if deps.Limiter != nil {
		limit = deps.Limiter.RateLimitMiddleware()
		NewRateLimitHandler(deps.Limiter).RegisterRoutes(v1.Group("/rate-limits"))
	}

	NewMealPlanHandler(deps.MealPlan, deps.Nutrition, deps.Location, deps.DefaultTargetCalories, deps.Logger).
		RegisterRoutes(v1.Group("/meal-plan"), limit)
	NewFoodHandler(deps.Nutrition).RegisterRoutes(v1.Group("/foods"))
	NewNutritionHandler(deps.Nutrition, deps.Location).RegisterRoutes(v1.Group("/nutrition"))
	NewEntryHandler[models.GrowthEntry, types.GrowthEntryRequest](deps.Growth, deps.Location).
		RegisterRoutes(v1.Group("/growth"))
	NewEntryHandler[models.SymptomEntry, types.SymptomEntryRequest](deps.Symptoms, deps.Location).
		RegisterRoutes(v1.Group("/symptoms"))
}
