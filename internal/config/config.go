// Package config loads the agent's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete agent configuration.
type Config struct {
	Provider struct {
		// Kind selects the completion backend: "anthropic" or "ollama".
		Kind     string `yaml:"kind"`
		Model    string `yaml:"model"`
		Endpoint string `yaml:"endpoint"`
		// NativeTools advertises structured tool definitions to backends
		// that support them; their calls arrive already parsed.
		NativeTools bool `yaml:"native_tools"`
	} `yaml:"provider"`

	Session struct {
		SystemMessage     string `yaml:"system_message"`
		MaxTurns          int    `yaml:"max_turns"`
		TerminationMarker string `yaml:"termination_marker"`
		// Strict surfaces swallowed anomalies (unknown tools, failed numeric
		// coercions) as warnings without changing turn behaviour.
		Strict bool `yaml:"strict"`
	} `yaml:"session"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Provider.Kind = "anthropic"
	cfg.Provider.Endpoint = "http://localhost:11434/api"
	cfg.Session.SystemMessage = "You are a helpful assistant that can perform calculations when requested."
	cfg.Session.TerminationMarker = "TERMINATE"
	return cfg
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
