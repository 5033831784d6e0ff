package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings for the milkround CLI.
type Config struct {
	DBPath       string
	CatalogPath  string
	LogUseCases  bool
	HistoryDays  int
	StepLiters   float64
	DotEnvLoaded bool
}

// DefaultConfig returns a Config with sensible defaults. DBPath is left empty
// and filled in from the home directory by LoadConfig.
func DefaultConfig() Config {
	return Config{
		HistoryDays: 7,
		StepLiters:  0.5,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or malformed values. A .env file in the working
// directory is loaded first; it never overrides variables already set.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	cfg.DotEnvLoaded = godotenv.Load() == nil

	if v := os.Getenv("MILKROUND_DB"); v != "" {
		cfg.DBPath = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".milkround", "milkround.db")
	}
	cfg.CatalogPath = os.Getenv("MILKROUND_CATALOG")
	if v := os.Getenv("MILKROUND_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MILKROUND_HISTORY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryDays = n
		}
	}
	if v := os.Getenv("MILKROUND_STEP_LITERS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.StepLiters = f
		}
	}
	return cfg, nil
}
