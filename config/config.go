package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Ledger   LedgerConfig   `json:"ledger" yaml:"ledger"`
	Export   ExportConfig   `json:"export" yaml:"export"`
	LogLevel string         `json:"log_level" yaml:"log_level"`
}

// DatabaseConfig locates the SQLite journal database
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ServerConfig contains the HTTP API parameters
type ServerConfig struct {
	Listen       string `json:"listen" yaml:"listen"`
	ReadTimeout  string `json:"read_timeout,omitempty" yaml:"read_timeout,omitempty"`
	WriteTimeout string `json:"write_timeout,omitempty" yaml:"write_timeout,omitempty"`
}

// ParseReadTimeout converts the read timeout string to time.Duration
func (sc ServerConfig) ParseReadTimeout() (time.Duration, error) {
	if sc.ReadTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(sc.ReadTimeout)
}

// ParseWriteTimeout converts the write timeout string to time.Duration
func (sc ServerConfig) ParseWriteTimeout() (time.Duration, error) {
	if sc.WriteTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(sc.WriteTimeout)
}

// LedgerConfig contains the derivation parameters
type LedgerConfig struct {
	// BaselineEquity is the equity before the first recorded day;
	// the daily chain accumulates from here.
	BaselineEquity float64 `json:"baseline_equity" yaml:"baseline_equity"`
}

// ExportConfig contains static report parameters
type ExportConfig struct {
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on
// extension), then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv lets deployment environments override file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("JOURNAL_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("JOURNAL_LISTEN"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("JOURNAL_BASELINE_EQUITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Ledger.BaselineEquity = f
		}
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if _, err := c.Server.ParseReadTimeout(); err != nil {
		return fmt.Errorf("server.read_timeout: %w", err)
	}
	if _, err := c.Server.ParseWriteTimeout(); err != nil {
		return fmt.Errorf("server.write_timeout: %w", err)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug|info|warn|error, got %q", c.LogLevel)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "./journal.db",
		},
		Server: ServerConfig{
			Listen:       "127.0.0.1:5000",
			ReadTimeout:  "10s",
			WriteTimeout: "10s",
		},
		Ledger: LedgerConfig{
			BaselineEquity: 0,
		},
		Export: ExportConfig{
			OutputDir: "./site",
		},
		LogLevel: "info",
	}
}
