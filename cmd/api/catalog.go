package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/growplate/backend/config"
	"github.com/pageza/growplate/backend/internal/mealplan"
)

// loadCatalog reads the suggestion catalog from S3 when CATALOG_S3_KEY is
// set and falls back to the built-in catalog otherwise.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mealplan.Catalog, error) {
	if cfg.CatalogKey == "" {
		return mealplan.DefaultCatalog(), nil
	}

	s3cfg, err := config.NewS3Config(ctx, cfg.AWSRegion, cfg.CatalogBucket)
	if err != nil {
		return nil, err
	}
	return fetchCatalog(ctx, s3cfg, cfg.CatalogKey, logger)
}

func fetchCatalog(ctx context.Context, s3cfg *config.S3Config, key string, logger *zap.Logger) (*mealplan.Catalog, error) {
	body, err := s3cfg.FetchObject(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	catalog, err := mealplan.LoadCatalog(body)
	if err != nil {
		return nil, fmt.Errorf("catalog s3://%s/%s: %w", s3cfg.BucketName, key, err)
	}

	logger.Info("loaded suggestion catalog",
		zap.String("bucket", s3cfg.BucketName),
		zap.String("key", key),
		zap.Int("items", len(catalog.Items())),
	)
	return catalog, nil
}
