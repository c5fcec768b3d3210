package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "prospects.db"
	defaultMongoURI        = "mongodb://localhost:27017"
	defaultMongoDatabase   = "prospecttrack"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "24h"
	defaultStatsAPIBaseURL = "https://statsapi.mlb.com"
	defaultStatsAPITimeout = "10s"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	JWTAccessTTL    time.Duration
	WebhookToken    string
	StatsAPIBaseURL string
	StatsAPITimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.MongoURI = strings.TrimSpace(getEnv("MONGO_URI", defaultMongoURI))
	cfg.MongoDatabase = strings.TrimSpace(getEnv("MONGO_DATABASE", defaultMongoDatabase))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.WebhookToken = strings.TrimSpace(os.Getenv("IDENTITY_WEBHOOK_TOKEN"))
	cfg.StatsAPIBaseURL = strings.TrimSpace(getEnv("STATS_API_BASE_URL", defaultStatsAPIBaseURL))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.StatsAPITimeout, err = parseDurationEnv("STATS_API_TIMEOUT", defaultStatsAPITimeout)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.StatsAPITimeout <= 0 {
		return fmt.Errorf("STATS_API_TIMEOUT must be > 0")
	}
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI must not be empty")
	}
	if cfg.MongoDatabase == "" {
		return fmt.Errorf("MONGO_DATABASE must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.WebhookToken == "" {
			return fmt.Errorf("in prod/release IDENTITY_WEBHOOK_TOKEN must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
