package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "LOG_DIR", "METRICS_PREFIX", "METRICS_TEXTFILE", "METRICS_LABELS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.Equal(t, 7, cfg.Log.MaxAgeDays)
	assert.Equal(t, "aoc", cfg.Metrics.Prefix)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.Empty(t, cfg.Metrics.Labels)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromDotenv(t *testing.T) {
	// godotenv only fills variables that are absent from the environment
	unsetEnv(t, "LOG_LEVEL", "LOG_MAX_BACKUPS", "METRICS_LABELS")
	t.Setenv("APP_ENV", "development")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"APP_ENV=production\nLOG_LEVEL=debug\nLOG_MAX_BACKUPS=nope\nMETRICS_LABELS=host=ci, year=2019 ,broken\n",
	), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.Equal(t, map[string]string{"host": "ci", "year": "2019"}, cfg.Metrics.Labels)
}

func TestLoadMalformedDotenv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BAD-KEY=1\n"), 0o644))

	_, err := Load(envFile)
	assert.Error(t, err)
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}
