package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the YAML-driven application settings. Connection details
// (database, NATS, JWT secret) come from the environment instead.
type Config struct {
	Matchups struct {
		// StrictPairings also rejects the reverse orientation of an
		// existing pairing and any second weekly matchup for a team.
		StrictPairings bool `yaml:"strict_pairings"`
	} `yaml:"matchups"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadConfig parses the YAML config file. A missing file is not an
// error; defaults apply.
func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}
