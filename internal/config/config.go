// Package config holds the application configuration and its cascading
// loader: built-in defaults, then an optional YAML file, then SUPERACAO_*
// environment variables, then command line flags.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the application
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Storage     StorageConfig     `yaml:"storage"`
	Server      ServerConfig      `yaml:"server"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Coach       CoachConfig       `yaml:"coach"`
	Application ApplicationConfig `yaml:"application"`
}

// DatabaseConfig holds the backend database configuration
type DatabaseConfig struct {
	Dir      string `yaml:"dir" env:"SUPERACAO_DB_DIR"`
	Filename string `yaml:"filename" env:"SUPERACAO_DB_FILENAME"`
}

// StorageConfig holds the local key-value store configuration
type StorageConfig struct {
	Dir string `yaml:"dir" env:"SUPERACAO_STORAGE_DIR"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Addr                string `yaml:"addr" env:"SUPERACAO_SERVER_ADDR"`
	DefaultRankingLimit int    `yaml:"default_ranking_limit" env:"SUPERACAO_SERVER_RANKING_LIMIT"`
}

// SchedulerConfig holds the status refresher configuration
type SchedulerConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"SUPERACAO_SCHEDULER_INTERVAL"`
}

// CoachConfig holds the coach pacing configuration
type CoachConfig struct {
	MinThinkDelay time.Duration `yaml:"min_think_delay" env:"SUPERACAO_COACH_MIN_DELAY"`
	MaxThinkDelay time.Duration `yaml:"max_think_delay" env:"SUPERACAO_COACH_MAX_DELAY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"SUPERACAO_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"SUPERACAO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".superacao")

	return &Config{
		Database: DatabaseConfig{
			Dir:      defaultDir,
			Filename: "superacao.db",
		},
		Storage: StorageConfig{
			Dir: filepath.Join(defaultDir, "state"),
		},
		Server: ServerConfig{
			Addr:                ":8080",
			DefaultRankingLimit: 10,
		},
		Scheduler: SchedulerConfig{
			RefreshInterval: 60 * time.Second,
		},
		Coach: CoachConfig{
			MinThinkDelay: 1 * time.Second,
			MaxThinkDelay: 3 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("SUPERACAO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("SUPERACAO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}

	// Storage configuration
	if dir := os.Getenv("SUPERACAO_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}

	// Server configuration
	if addr := os.Getenv("SUPERACAO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if limit := os.Getenv("SUPERACAO_SERVER_RANKING_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Server.DefaultRankingLimit = n
		}
	}

	// Scheduler configuration
	if interval := os.Getenv("SUPERACAO_SCHEDULER_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Scheduler.RefreshInterval = d
		}
	}

	// Coach configuration
	if delay := os.Getenv("SUPERACAO_COACH_MIN_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Coach.MinThinkDelay = d
		}
	}
	if delay := os.Getenv("SUPERACAO_COACH_MAX_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Coach.MaxThinkDelay = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("SUPERACAO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("SUPERACAO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.DefaultRankingLimit < 1 {
		return &ConfigError{Field: "server.default_ranking_limit", Message: "ranking limit must be at least 1"}
	}
	if c.Scheduler.RefreshInterval <= 0 {
		return &ConfigError{Field: "scheduler.refresh_interval", Message: "refresh interval must be positive"}
	}
	if c.Coach.MinThinkDelay < 0 {
		return &ConfigError{Field: "coach.min_think_delay", Message: "think delay cannot be negative"}
	}
	if c.Coach.MaxThinkDelay < c.Coach.MinThinkDelay {
		return &ConfigError{Field: "coach.max_think_delay", Message: "max think delay must be at least the minimum"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
