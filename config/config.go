package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Document-store backend names.
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendRedis     = "redis"
)

// Credential-scheme names. Plaintext is the default and mirrors the system
// this backend replaces; bcrypt is the opt-in hashed scheme.
const (
	AuthPlaintext = "plaintext"
	AuthBcrypt    = "bcrypt"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	Environment Environment
	ServerHost  string
	ServerPort  string
	CORSOrigins []string

	// Document store
	DocstoreBackend    string
	FirestoreProjectID string

	// Postgres (gorm backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis backend
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Blob store
	AWSRegion  string
	FoodBucket string
	UserBucket string

	// Credential scheme
	AuthScheme string
}

// LoadConfig reads configuration from the environment, with a best-effort
// .env file for development.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		redisDB = parsed
	}

	cfg := &Config{
		Environment: GetEnvironment(),
		ServerHost:  getenv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getenv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),

		DocstoreBackend:    getenv("DOCSTORE_BACKEND", BackendFirestore),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "foodlog"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),

		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		RedisURL:      os.Getenv("REDIS_URL"),

		AWSRegion:  getenv("AWS_REGION", "us-east-1"),
		FoodBucket: getenv("FOOD_BUCKET", "food_bk"),
		UserBucket: getenv("USER_BUCKET", "user_bk"),

		AuthScheme: getenv("AUTH_SCHEME", AuthPlaintext),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production. The session
// cookie is only marked Secure there.
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
