// Package config loads application configuration from environment variables.
// All variables use the LEARN_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Cache          CacheConfig
	Log            LogConfig
	Publish        PublishConfig
	Lint           LintConfig
	CurriculumPath string // optional directory of *.epoch.yaml files
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL disables
// the Postgres publisher.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL disables the
// Redis publisher.
type CacheConfig struct {
	URL      string
	TTLHours int // snapshot lifetime; 0 keeps snapshots forever
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// PublishConfig controls whether snapshots are pushed to the configured stores.
type PublishConfig struct {
	Enabled bool
}

// LintConfig controls the authoring lint pass run at startup.
type LintConfig struct {
	Strict bool // refuse to start when warnings exist
}

// Load reads configuration from environment variables with LEARN_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("LEARN_SERVER_PORT", 8080),
			Host: envStr("LEARN_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("LEARN_DATABASE_URL", ""),
			MaxConns: envInt("LEARN_DATABASE_MAX_CONNS", 4),
			MinConns: envInt("LEARN_DATABASE_MIN_CONNS", 1),
		},
		Cache: CacheConfig{
			URL:      envStr("LEARN_CACHE_URL", ""),
			TTLHours: envInt("LEARN_CACHE_TTL_HOURS", 0),
		},
		Log: LogConfig{
			Level:  envStr("LEARN_LOG_LEVEL", "info"),
			Format: envStr("LEARN_LOG_FORMAT", "json"),
		},
		Publish: PublishConfig{
			Enabled: envBool("LEARN_PUBLISH_ENABLED", false),
		},
		Lint: LintConfig{
			Strict: envBool("LEARN_LINT_STRICT", false),
		},
		CurriculumPath: envStr("LEARN_CURRICULUM_PATH", ""),
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("LEARN_SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LEARN_LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("LEARN_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}

	if c.Publish.Enabled && !c.HasPublishTarget() {
		return fmt.Errorf("LEARN_PUBLISH_ENABLED requires LEARN_DATABASE_URL or LEARN_CACHE_URL")
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("LEARN_DATABASE_MAX_CONNS must be at least 1, got %d", c.Database.MaxConns)
	}

	if c.Database.MinConns < 0 {
		return fmt.Errorf("LEARN_DATABASE_MIN_CONNS must not be negative, got %d", c.Database.MinConns)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("LEARN_DATABASE_MIN_CONNS (%d) exceeds LEARN_DATABASE_MAX_CONNS (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Cache.TTLHours < 0 {
		return fmt.Errorf("LEARN_CACHE_TTL_HOURS must not be negative, got %d", c.Cache.TTLHours)
	}

	return nil
}

// HasPublishTarget returns true if at least one snapshot store is configured.
func (c *Config) HasPublishTarget() bool {
	return c.Database.URL != "" || c.Cache.URL != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
