package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every problem found in a configuration.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks cfg against the requirements of its environment and
// reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			add("DB_HOST", "is required")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "is required")
		}
		if cfg.DBUser == "" {
			add("DB_USER", "is required (env or db_user secret)")
		}
		if cfg.DBPassword == "" && cfg.Environment != Development && cfg.Environment != Test {
			add("DB_PASSWORD", "is required (env or db_password secret)")
		}
	case "sqlite":
		if cfg.Environment == Production {
			add("DB_DRIVER", "sqlite is not allowed in production")
		}
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	if cfg.JWTSecret == "" {
		add("JWT_SECRET", "is required (env or jwt_secret secret)")
	}
	if cfg.RedisDB < 0 {
		add("REDIS_DB", "must be a non-negative integer")
	}
	if cfg.RateLimitPerHour <= 0 {
		add("MEAL_PLAN_RATE_LIMIT", "must be a positive integer")
	}
	if cfg.CatalogKey != "" && cfg.CatalogBucket == "" {
		add("CATALOG_S3_BUCKET", "is required when CATALOG_S3_KEY is set")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		add("TIMEZONE", fmt.Sprintf("unknown timezone %q", cfg.Timezone))
	}
	if cfg.PlanTimeout <= 0 {
		add("PLAN_TIMEOUT", "must be a positive duration")
	}
	if cfg.DefaultTargetCalories <= 0 {
		add("DEFAULT_TARGET_CALORIES", "must be a positive integer")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
