// Package config loads dashboard configuration from YAML and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before mapping them to keys.
const EnvPrefix = "FEEDBACK_"

// Config is the complete dashboard configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Dataset    DatasetConfig    `koanf:"dataset"`
	Upload     UploadConfig     `koanf:"upload"`
	Insights   InsightsConfig   `koanf:"insights"`
	Store      StoreConfig      `koanf:"store"`
	Logging    LoggingConfig    `koanf:"logging"`
	Classifier ClassifierConfig `koanf:"classifier"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Address         string        `koanf:"address"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatasetConfig locates the default dataset.
type DatasetConfig struct {
	Path        string `koanf:"path"`
	LabelColumn string `koanf:"label_column"`
}

// UploadConfig bounds and archives replacement datasets.
type UploadConfig struct {
	MaxBytes   int64  `koanf:"max_bytes"`
	ArchiveDir string `koanf:"archive_dir"`
}

// InsightsConfig locates the externally generated chart images.
type InsightsConfig struct {
	Dir   string `koanf:"dir"`
	Watch bool   `koanf:"watch"`
}

// StoreConfig selects the history database.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

// LoggingConfig controls zap output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClassifierConfig seeds the placeholder analyzer; zero means random.
type ClassifierConfig struct {
	Seed uint64 `koanf:"seed"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Dataset: DatasetConfig{
			Path:        "cleaned_customer_feedback.csv",
			LabelColumn: "Sentiment_Label",
		},
		Upload: UploadConfig{
			MaxBytes:   10 << 20,
			ArchiveDir: "uploads",
		},
		Insights: InsightsConfig{
			Dir:   ".",
			Watch: true,
		},
		Store: StoreConfig{
			Driver: "sqlite3",
			DSN:    "feedback.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() Config {
	return defaultConfig()
}

// Load reads configuration from the YAML file at path, then overrides it with
// FEEDBACK_* environment variables. A missing file is not an error.
//
//	FEEDBACK_SERVER_ADDRESS   -> server.address
//	FEEDBACK_UPLOAD_MAX_BYTES -> upload.max_bytes
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps FEEDBACK_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// Validate checks the configuration for values the dashboard cannot start with.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	if c.Dataset.Path == "" {
		return errors.New("dataset.path is required")
	}
	if c.Dataset.LabelColumn == "" {
		return errors.New("dataset.label_column is required")
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("upload.max_bytes must be positive")
	}
	switch c.Store.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("store.driver must be sqlite3 or postgres, got %q", c.Store.Driver)
	}
	if c.Store.DSN == "" {
		return errors.New("store.dsn is required")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
