package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Sheets webhook the sync gateway pushes to; empty disables sync.
	SheetsSyncURL string `yaml:"sheets_sync_url"`

	// Database
	DatabaseURL    string `yaml:"database_url"`     // empty selects the in-memory store
	SnapshotDBPath string `yaml:"snapshot_db_path"` // local fallback SQLite file

	// Server
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

// Load reads the optional YAML file named by CONFIG_FILE, then lets
// environment variables override whatever the file set.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.SheetsSyncURL = getEnv("SHEETS_SYNC_URL", cfg.SheetsSyncURL)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SnapshotDBPath = getEnv("SNAPSHOT_DB_PATH", defaultString(cfg.SnapshotDBPath, "data/snapshots.db"))
	cfg.Port = getEnv("PORT", defaultString(cfg.Port, "8080"))
	cfg.Environment = getEnv("ENVIRONMENT", defaultString(cfg.Environment, "development"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SheetsSyncURL != "" {
		u, err := url.Parse(c.SheetsSyncURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("SHEETS_SYNC_URL must be an absolute URL")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
