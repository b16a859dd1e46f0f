package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/growplate/backend/config"
	"github.com/pageza/growplate/backend/internal/database"
	"github.com/pageza/growplate/backend/internal/logging"
)

func main() {
	sqlDir := flag.String("sql-dir", "", "Directory of additional .sql migrations to apply after the schema")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}
	logger.Info("schema migrated")

	if *sqlDir != "" {
		if _, err := os.Stat(*sqlDir); err != nil {
			logger.Fatal("sql migrations directory unavailable", zap.String("dir", *sqlDir), zap.Error(err))
		}
		if err := database.ApplySQLMigrations(db, *sqlDir, logger); err != nil {
			logger.Fatal("sql migrations failed", zap.Error(err))
		}
	}
}
