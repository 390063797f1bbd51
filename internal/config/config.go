package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort string

	// Database (supports sqlite, postgres, mysql)
	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	MigrationsPath string

	// Static catalog documents
	TopicsCatalogPath string
	NichesCatalogPath string

	// Remote plan-generation service
	PlanServiceURL     string
	PlanServiceAPIKey  string
	PlanServiceTimeout time.Duration
	PlanMaxAttempts    int

	// Plan-ready notification email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DB_PATH", "./planweaver.db"),
		DatabaseURL:       getEnv("DB_URL", ""),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		TopicsCatalogPath: getEnv("TOPICS_CATALOG_PATH", "./data/topics.json"),
		NichesCatalogPath: getEnv("NICHES_CATALOG_PATH", "./data/niches.json"),

		PlanServiceURL:     getEnv("PLAN_SERVICE_URL", "http://localhost:9090"),
		PlanServiceAPIKey:  getEnv("PLAN_SERVICE_API_KEY", ""),
		PlanServiceTimeout: getEnvDuration("PLAN_SERVICE_TIMEOUT", 30*time.Second),
		PlanMaxAttempts:    getEnvInt("PLAN_MAX_ATTEMPTS", 3),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "PlanWeaver"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
