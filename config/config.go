package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string
	LogLevel       string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	RedisURL         string
	RateLimitPerHour int

	// JWT configuration
	JWTSecret string
	JWTIssuer string

	// Suggestion catalog override stored in S3
	AWSRegion     string
	CatalogBucket string
	CatalogKey    string

	// Meal planning
	Timezone              string
	Location              *time.Location
	PlanTimeout           time.Duration
	DefaultTargetCalories int
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	switch env {
	case Development, Test:
		// A missing .env is fine; the process environment still applies.
		_ = godotenv.Load()
		loadFromEnv(cfg)
		loadSecrets(cfg, false)
	case CI:
		loadFromEnv(cfg)
		loadCISecrets(cfg)
	case Production:
		loadFromEnv(cfg)
		loadSecrets(cfg, true)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// loadFromEnv reads the non-sensitive settings, which come from the
// environment everywhere.
func loadFromEnv(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8081"))
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.DBDriver = getEnv("DB_DRIVER", "postgres")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getEnv("DB_NAME", "growplate")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "growplate.db")

	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = getEnvInt("REDIS_DB", 0)
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RateLimitPerHour = getEnvInt("MEAL_PLAN_RATE_LIMIT", 60)

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.JWTIssuer = os.Getenv("JWT_ISSUER")

	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	cfg.CatalogBucket = os.Getenv("CATALOG_S3_BUCKET")
	cfg.CatalogKey = os.Getenv("CATALOG_S3_KEY")

	cfg.Timezone = getEnv("TIMEZONE", "UTC")
	cfg.PlanTimeout = getEnvDuration("PLAN_TIMEOUT", 10*time.Second)
	cfg.DefaultTargetCalories = getEnvInt("DEFAULT_TARGET_CALORIES", 2000)
}

// loadSecrets reads sensitive values from Docker secrets. Outside production
// a secret only fills a value the environment left empty.
func loadSecrets(cfg *Config, override bool) {
	set := func(dst *string, name string) {
		if *dst != "" && !override {
			return
		}
		if v := readSecret(name); v != "" || override {
			*dst = v
		}
	}
	set(&cfg.DBUser, "db_user")
	set(&cfg.DBPassword, "db_password")
	set(&cfg.JWTSecret, "jwt_secret")
	set(&cfg.RedisPassword, "redis_password")
}

// loadCISecrets reads the values GitHub Actions injects as TEST_* secrets.
func loadCISecrets(cfg *Config) {
	if v := os.Getenv("TEST_DB_PASSWORD"); v != "" {
		cfg.DBPassword = v
	}
	if v := os.Getenv("TEST_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TEST_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("TEST_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getEnvInt returns fallback when key is unset. A malformed value is kept
// as -1 so validation reports it.
func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return -1
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
