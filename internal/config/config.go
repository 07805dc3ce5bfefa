// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the HuntBoard server.
type Config struct {
	Port        string
	MongoURL    string
	RedisURL    string // optional; card events are skipped when empty
	JWTSecret   string
	JWTTTLHours int
}

// Load reads environment variables and returns a validated Config.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	ttl := 72
	if s := os.Getenv("JWT_TTL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("JWT_TTL_HOURS must be a positive integer, got %q", s)
		}
		ttl = v
	}

	return &Config{
		Port:        port,
		MongoURL:    mongoURL,
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   secret,
		JWTTTLHours: ttl,
	}, nil
}
