package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	App struct {
		Environment string
		LogLevel    string
	}

	Log struct {
		Dir        string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}

	Metrics struct {
		Prefix   string
		Textfile string
		Labels   map[string]string
	}
}

// Load reads an optional dotenv file and then builds the configuration from
// the environment. Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	// App settings
	cfg.App.Environment = getEnvOrDefault("APP_ENV", EnvProduction)
	cfg.App.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Log rotation
	cfg.Log.Dir = getEnvOrDefault("LOG_DIR", "logs")
	cfg.Log.MaxSizeMB = getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 100)
	cfg.Log.MaxBackups = getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 5)
	cfg.Log.MaxAgeDays = getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", 7)

	// Metrics
	cfg.Metrics.Prefix = getEnvOrDefault("METRICS_PREFIX", "aoc")
	cfg.Metrics.Textfile = os.Getenv("METRICS_TEXTFILE")
	cfg.Metrics.Labels = parseLabels(os.Getenv("METRICS_LABELS"))

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// parseLabels turns "k=v,k2=v2" into a map. Malformed pairs are skipped.
func parseLabels(raw string) map[string]string {
	labels := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || strings.TrimSpace(k) == "" {
			continue
		}
		labels[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return labels
}
