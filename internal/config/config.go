package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port        string
	MongoURI    string // MongoDB connection string for the synced mirror
	Environment string // "production" enables JSON logging

	// Local workspace paths (only meaningful on the machine running the agents)
	WorkspacePath string
	ProjectsDir   string

	// CORS
	AllowedOrigins string

	// Sync behaviour
	SyncInterval time.Duration // 0 disables the in-process sync scheduler
	GitTimeout   time.Duration // per-command timeout for repo inspection
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "/root"
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		MongoURI:    getEnv("MONGODB_URI", ""),
		Environment: getEnv("ENVIRONMENT", "development"),

		WorkspacePath: getEnv("WORKSPACE_PATH", filepath.Join(home, ".openclaw/workspace")),
		ProjectsDir:   getEnv("PROJECTS_DIR", filepath.Join(home, "Projects")),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		SyncInterval: getDurationEnv("SYNC_INTERVAL", 0),
		GitTimeout:   getDurationEnv("GIT_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
