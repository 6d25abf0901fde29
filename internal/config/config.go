package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	AuthEnabled bool
}

// Load reads configuration from the environment, with local-dev defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/fleet/fleet.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	// Default to false so plain `go run` works without minting tokens
	authEnabled := os.Getenv("AUTH_ENABLED") == "true"

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		JWTSecret:   jwtSecret,
		AuthEnabled: authEnabled,
	}
}
