package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pageza/growplate/backend/config"
	"github.com/pageza/growplate/backend/internal/api"
	"github.com/pageza/growplate/backend/internal/calorie"
	"github.com/pageza/growplate/backend/internal/database"
	"github.com/pageza/growplate/backend/internal/logging"
	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/middleware"
	"github.com/pageza/growplate/backend/internal/server"
	"github.com/pageza/growplate/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if !cfg.Environment.IsProduction() {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	catalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	nutrition := service.NewNutritionService(db, calorie.NewEstimator(nil), cfg.Location, logger.Named("nutrition"))
	engine := mealplan.NewEngine(catalog, nutrition, logger.Named("mealplan"))
	planner := mealplan.NewPlanner(engine, nutrition, mealplan.PlannerConfig{
		Location: cfg.Location,
		Timeout:  cfg.PlanTimeout,
	}, logger.Named("mealplan"))

	deps := api.Dependencies{
		Auth:                  service.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer),
		Nutrition:             nutrition,
		Growth:                service.NewGrowthService(db, logger.Named("growth")),
		Symptoms:              service.NewSymptomService(db, logger.Named("symptoms")),
		MealPlan:              planner,
		Ping:                  func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
		Location:              cfg.Location,
		DefaultTargetCalories: cfg.DefaultTargetCalories,
		Logger:                logger,
	}

	redisClient, err := database.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		logger.Warn("meal plan rate limiting disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		deps.Limiter = middleware.NewMealPlanRateLimiter(redisClient, cfg.RateLimitPerHour, logger.Named("ratelimit"))
	}

	if err := server.New(cfg, deps).Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
