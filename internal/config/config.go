// Package config handles reading and writing the Saya config file under
// the user's data directory (~/.saya/config.yaml by default).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Model   ModelConfig   `yaml:"model"`
	History HistoryConfig `yaml:"history"`
}

// ModelConfig selects the hosted model and how to reach it.
type ModelConfig struct {
	Name string `yaml:"name"`

	// BaseURL overrides the API endpoint for OpenAI-compatible providers.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Temperatures for the question loop and the final generation.
	QuestionTemperature float32 `yaml:"question_temperature"`
	FinalTemperature    float32 `yaml:"final_temperature"`
}

// HistoryConfig controls conversation persistence.
type HistoryConfig struct {
	// Enabled turns the durable store on or off entirely.
	Enabled bool `yaml:"enabled"`

	// File is the database filename inside the data directory.
	File string `yaml:"file"`
}

const configDir = ".saya"
const configFile = "config.yaml"

// Dir returns the data directory under the given home directory.
func Dir(home string) string {
	return filepath.Join(home, configDir)
}

// ReadConfig reads config.yaml from the data directory under home.
// Returns an error if the file is not found or the YAML is malformed.
func ReadConfig(home string) (*Config, error) {
	path := filepath.Join(home, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml under home, creating the data
// directory if needed.
func WriteConfig(home string, cfg *Config) error {
	dirPath := filepath.Join(home, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Model: ModelConfig{
			Name:                "gpt-4o-mini",
			APIKeyEnv:           "OPENAI_API_KEY",
			QuestionTemperature: 0.5,
			FinalTemperature:    0.3,
		},
		History: HistoryConfig{
			Enabled: true,
			File:    "history.db",
		},
	}
}
