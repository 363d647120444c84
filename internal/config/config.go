package config

import (
	"os"
	"strconv"
	"time"

	"artist_marketplace/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string
	LogJSON     bool

	// Redis (rate limiting); empty addr disables the limiter
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limits
	APIRateLimit  int
	APIRateWindow time.Duration

	// Checkout-session provider
	BillingAPIURL        string
	BillingAPIKey        string
	BillingWebhookSecret string

	// Analytics buffer tuning
	AnalyticsBatchSize     int
	AnalyticsFlushInterval time.Duration
}

// Load reads configuration from the environment. Required variables abort
// startup; everything else has a default.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:                getEnv("APP_PORT", "8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogJSON:                os.Getenv("LOG_JSON") == "true",
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvInt("REDIS_DB", 0),
		APIRateLimit:           getEnvInt("API_RATE_LIMIT", 60),
		APIRateWindow:          getEnvSeconds("API_RATE_WINDOW_SECONDS", time.Minute),
		BillingAPIURL:          getEnv("BILLING_API_URL", "https://billing.example.com"),
		BillingAPIKey:          os.Getenv("BILLING_API_KEY"),
		BillingWebhookSecret:   os.Getenv("BILLING_WEBHOOK_SECRET"),
		AnalyticsBatchSize:     getEnvInt("ANALYTICS_BATCH_SIZE", 20),
		AnalyticsFlushInterval: getEnvSeconds("ANALYTICS_FLUSH_SECONDS", 10*time.Second),
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
