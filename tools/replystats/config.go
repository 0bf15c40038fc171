package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileConfig holds the connection settings that can be kept in a file
type FileConfig struct {
	TemporalHost string `json:"temporal_host"`
	Namespace    string `json:"namespace"`
	WorkflowType string `json:"workflow_type"`
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec,G304
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaultConfig loads the config from the home directory, nil when absent
func loadDefaultConfig() (*FileConfig, error) {
	cfg, err := LoadConfig(GetDefaultConfigPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

// GetDefaultConfigPath returns the default config path
func GetDefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".reply-stats.json"
	}
	return filepath.Join(home, ".reply-stats.json")
}
