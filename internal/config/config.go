// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/talent-match/internal/scoring"
)

// DefaultLogDir is where file-based audit sessions are written
const DefaultLogDir = "logs/cv_analysis"

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Extraction service
	APIKey      string  `json:"api_key,omitempty"`     // Gemini API key (defaults to GEMINI_API_KEY env var)
	Model       string  `json:"model,omitempty"`       // Model name
	Seed        int32   `json:"seed,omitempty"`        // Decoding seed for reproducible runs
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature

	// Persistence
	LogDir      string `json:"log_dir,omitempty"`      // Base directory for audit sessions
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for DB-backed sessions

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON logs instead of console

	// Scoring overrides the default scoring constants wholesale when set
	Scoring *scoring.Config `json:"scoring,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Scoring
// invariants are checked here so a bad weight table fails at startup.
func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be within [0,2]")
	}
	if c.Seed < 0 {
		return fmt.Errorf("config error: 'seed' must be non-negative")
	}
	if c.Scoring != nil {
		if err := c.Scoring.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ScoringConfig returns the effective scoring constants
func (c *Config) ScoringConfig() scoring.Config {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return scoring.DefaultConfig()
}

// EffectiveAPIKey returns the configured key, falling back to the
// GEMINI_API_KEY environment variable.
func (c *Config) EffectiveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// EffectiveLogDir returns the configured audit directory or the default
func (c *Config) EffectiveLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return DefaultLogDir
}
