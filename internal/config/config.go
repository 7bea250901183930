// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	UploadsDir string `json:"uploads_dir,omitempty"` // Directory for stored resume uploads

	// External services
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL (optional)
	ParserURL    string `json:"parser_url,omitempty"`     // Resume parsing service endpoint
	ParserAPIKey string `json:"parser_api_key,omitempty"` // Resume parsing service API key
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key for About Me generation

	// Behavior
	NarrativeTimeoutSeconds int  `json:"narrative_timeout_seconds,omitempty"` // About Me generation deadline
	Verbose                 bool `json:"verbose,omitempty"`                   // Print detailed debug information
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.NarrativeTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'narrative_timeout_seconds' must be non-negative")
	}
	if c.ParserAPIKey != "" && c.ParserURL == "" {
		return fmt.Errorf("config error: 'parser_api_key' is set but 'parser_url' is empty")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UploadsDir == "" {
		result.UploadsDir = defaults.UploadsDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ParserURL == "" {
		result.ParserURL = defaults.ParserURL
	}
	if result.ParserAPIKey == "" {
		result.ParserAPIKey = defaults.ParserAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.NarrativeTimeoutSeconds == 0 {
		result.NarrativeTimeoutSeconds = defaults.NarrativeTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
