package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Database
	DBPath string

	// Categorizer model artifact
	ModelPath string

	// Logging
	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		DBPath:    getEnv("FINTRACK_DB_PATH", "./data/fintrack.db"),
		ModelPath: getEnv("FINTRACK_MODEL_PATH", "./data/categorizer.json"),
		LogLevel:  parseLevel(getEnv("FINTRACK_LOG_LEVEL", "info")),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	} else if err := ensureDir(c.DBPath); err != nil {
		errs = append(errs, fmt.Sprintf("cannot create database directory: %v", err))
	}

	if c.ModelPath == "" {
		errs = append(errs, "model path cannot be empty")
	} else if err := ensureDir(c.ModelPath); err != nil {
		errs = append(errs, fmt.Sprintf("cannot create model directory: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
