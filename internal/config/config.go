// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or
// come from environment variables and CLI flags.
type Config struct {
	// Document storage
	StorageRoot string `json:"storage_root,omitempty"` // Root directory for stored resume documents

	// External services
	OCREndpoint      string `json:"ocr_endpoint,omitempty" validate:"omitempty,url"`      // OCR text-detection service
	NEREndpoint      string `json:"ner_endpoint,omitempty" validate:"omitempty,url"`      // Named-entity detection service
	AnalysisEndpoint string `json:"analysis_endpoint,omitempty" validate:"omitempty,url"` // Receiving stage for hand-off payloads
	DatabaseURL      string `json:"database_url,omitempty"`                               // PostgreSQL connection URL

	// Behavior
	APIKey  string `json:"api_key,omitempty"`                             // Gemini API key
	Port    int    `json:"port,omitempty" validate:"omitempty,max=65535"` // HTTP server port
	Verbose bool   `json:"verbose,omitempty"`                             // Print detailed debug information
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
// Required fields are not checked here; commands enforce what they
// need after merging flags and environment.
func (c *Config) Validate() error {
	if c.Port < 0 {
		return fmt.Errorf("config error: 'port' must be non-negative")
	}

	if c.StorageRoot != "" {
		if _, err := os.Stat(c.StorageRoot); os.IsNotExist(err) {
			return fmt.Errorf("config error: storage root not found: %s", c.StorageRoot)
		}
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment variables on empty fields. Secrets are
// expected from the environment rather than the config file.
func (c *Config) ApplyEnv() {
	envFields := map[string]*string{
		"GEMINI_API_KEY":    &c.APIKey,
		"DATABASE_URL":      &c.DatabaseURL,
		"OCR_ENDPOINT":      &c.OCREndpoint,
		"NER_ENDPOINT":      &c.NEREndpoint,
		"ANALYSIS_ENDPOINT": &c.AnalysisEndpoint,
		"STORAGE_ROOT":      &c.StorageRoot,
	}
	for name, field := range envFields {
		if *field == "" {
			if value := os.Getenv(name); value != "" {
				*field = value
			}
		}
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StorageRoot == "" {
		result.StorageRoot = defaults.StorageRoot
	}
	if result.OCREndpoint == "" {
		result.OCREndpoint = defaults.OCREndpoint
	}
	if result.NEREndpoint == "" {
		result.NEREndpoint = defaults.NEREndpoint
	}
	if result.AnalysisEndpoint == "" {
		result.AnalysisEndpoint = defaults.AnalysisEndpoint
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
