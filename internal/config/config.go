// Package config loads critic configuration.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML file,
// CRITIC_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/critic/internal/logging"
	"github.com/roach88/critic/internal/persist"
	"github.com/roach88/critic/internal/review"
)

// Config holds all critic configuration.
type Config struct {
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Database DatabaseConfig `yaml:"database"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Log      LogConfig      `yaml:"log"`
}

// LexiconConfig points at the two word lists.
type LexiconConfig struct {
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
}

// DatabaseConfig locates the persisted store.
type DatabaseConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // "text" | "sqlite"
}

// IngestConfig sizes the directory ingestion worker pool.
type IngestConfig struct {
	Extension   string        `yaml:"extension"`
	MinWorkers  int           `yaml:"min_workers"`
	MaxWorkers  int           `yaml:"max_workers"`
	QueueSize   int           `yaml:"queue_size"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "text" | "json"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lexicon: LexiconConfig{
			Positive: "data/positive-words.txt",
			Negative: "data/negative-words.txt",
		},
		Database: DatabaseConfig{
			Path:   "database.txt",
			Format: persist.FormatText,
		},
		Ingest: IngestConfig{
			Extension:   ".txt",
			MinWorkers:  10,
			MaxWorkers:  40,
			QueueSize:   1024,
			IdleTimeout: 60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and the environment, then validates it. All failures
// are *review.ConfigError.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Lexicon.Positive == "":
		return configErr("lexicon.positive", errors.New("path is required"))
	case c.Lexicon.Negative == "":
		return configErr("lexicon.negative", errors.New("path is required"))
	case c.Database.Path == "":
		return configErr("database.path", errors.New("path is required"))
	case !slices.Contains(persist.ValidFormats, c.Database.Format):
		return configErr("database.format", fmt.Errorf("%q must be one of %v", c.Database.Format, persist.ValidFormats))
	case c.Ingest.Extension == "":
		return configErr("ingest.extension", errors.New("extension is required"))
	case c.Ingest.MinWorkers < 1:
		return configErr("ingest.min_workers", fmt.Errorf("%d must be at least 1", c.Ingest.MinWorkers))
	case c.Ingest.MaxWorkers < c.Ingest.MinWorkers:
		return configErr("ingest.max_workers", fmt.Errorf("%d must be >= min_workers (%d)", c.Ingest.MaxWorkers, c.Ingest.MinWorkers))
	case c.Ingest.QueueSize < 1:
		return configErr("ingest.queue_size", fmt.Errorf("%d must be at least 1", c.Ingest.QueueSize))
	case c.Ingest.IdleTimeout <= 0:
		return configErr("ingest.idle_timeout", fmt.Errorf("%s must be positive", c.Ingest.IdleTimeout))
	case !slices.Contains(logging.ValidFormats, c.Log.Format):
		return configErr("log.format", fmt.Errorf("%q must be one of %v", c.Log.Format, logging.ValidFormats))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return configErr("log.level", err)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &review.ConfigError{Key: "config", Path: path, Err: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return &review.ConfigError{Key: "config", Path: path, Err: err}
	}
	return nil
}

// applyEnv overlays CRITIC_* environment variables.
func (c *Config) applyEnv() error {
	setString(&c.Lexicon.Positive, "CRITIC_POSITIVE_WORDS")
	setString(&c.Lexicon.Negative, "CRITIC_NEGATIVE_WORDS")
	setString(&c.Database.Path, "CRITIC_DATABASE")
	setString(&c.Database.Format, "CRITIC_DATABASE_FORMAT")
	setString(&c.Ingest.Extension, "CRITIC_EXTENSION")
	setString(&c.Log.Level, "CRITIC_LOG_LEVEL")
	setString(&c.Log.Format, "CRITIC_LOG_FORMAT")

	ints := []struct {
		dst *int
		env string
		key string
	}{
		{&c.Ingest.MinWorkers, "CRITIC_MIN_WORKERS", "ingest.min_workers"},
		{&c.Ingest.MaxWorkers, "CRITIC_MAX_WORKERS", "ingest.max_workers"},
		{&c.Ingest.QueueSize, "CRITIC_QUEUE_SIZE", "ingest.queue_size"},
	}
	for _, v := range ints {
		if err := setInt(v.dst, v.env); err != nil {
			return configErr(v.key, err)
		}
	}

	if v := os.Getenv("CRITIC_IDLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return configErr("ingest.idle_timeout", fmt.Errorf("CRITIC_IDLE_TIMEOUT: %w", err))
		}
		c.Ingest.IdleTimeout = d
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func configErr(key string, err error) error {
	return &review.ConfigError{Key: key, Err: err}
}
