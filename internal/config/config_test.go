package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "./data/budgetbook.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12, cfg.TrendMonths)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BUDGETBOOK_DB_PATH", "/tmp/other.db")
	t.Setenv("BUDGETBOOK_LOG_LEVEL", "debug")
	t.Setenv("BUDGETBOOK_TREND_MONTHS", "24")

	cfg := Load()
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 24, cfg.TrendMonths)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		DBPath:      filepath.Join(t.TempDir(), "db", "budgetbook.db"),
		LogLevel:    "info",
		TrendMonths: 12,
	}
	require.NoError(t, cfg.Validate())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		DBPath:      "",
		LogLevel:    "loud",
		TrendMonths: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path")
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "trend months")
}

func TestValidateBadEnvIntFallsBack(t *testing.T) {
	t.Setenv("BUDGETBOOK_TREND_MONTHS", "soon")

	cfg := Load()
	assert.Equal(t, 12, cfg.TrendMonths)
}
