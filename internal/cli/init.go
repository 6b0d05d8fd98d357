// Package cli consolidates the initialization steps every command shares:
// env file, logger, config and storage.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"budgetbook/internal/config"
	"budgetbook/internal/log"
	"budgetbook/internal/storage"
)

// LoadEnvFile loads a local .env file if present. Missing files are fine;
// the environment wins either way.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the component logger from config and installs it as
// the slog default.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(log.ParseLevel(cfg.LogLevel), "budgetbook")
	log.SetDefault(logger)
	return logger
}

// LoadConfig loads and validates configuration.
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// OpenStorage opens the repository at the configured path, running
// migrations and seeding on first open.
func OpenStorage(cfg *config.Config) (*storage.SQLiteRepository, error) {
	repo, err := storage.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return repo, nil
}
