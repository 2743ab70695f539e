// Package config loads and persists the CLI configuration: the backend
// environment and local paths. One JSON file under the data directory,
// with a .env override for the base URI so field devices can be pointed
// at a staging backend without editing the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultBaseURI selects the production backend environment.
const DefaultBaseURI = "https://ugel-app.appspot.com"

// Config represents the flat monitoreo configuration
type Config struct {
	Version   string `json:"version"`
	BaseURI   string `json:"base_uri"`             // backend environment
	ExportDir string `json:"export_dir,omitempty"` // where ZIP exports land
}

// LoadConfig reads config.json from the data directory. A missing file
// yields the defaults; callers only see an error on a corrupt file.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{BaseURI: DefaultBaseURI}

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(dir, cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.BaseURI == "" {
		cfg.BaseURI = DefaultBaseURI
	}
	applyEnv(dir, cfg)
	return cfg, nil
}

// SaveConfig writes config.json to the data directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnv overlays MONITOREO_API from the environment, loading a .env
// file in the data directory first if present.
func applyEnv(dir string, cfg *Config) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	if uri := os.Getenv("MONITOREO_API"); uri != "" {
		cfg.BaseURI = uri
	}
}
