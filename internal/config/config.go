// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the file-configurable settings. CLI flags override any value
// set here; environment variables are deliberately not consulted so an
// invocation is fully described by its flags plus this file.
type Config struct {
	// InputDir and OutputDir may be relative; the CLI resolves them under
	// the invocation's working directory.
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Concurrent enables the three concurrent runs in addition to the three
	// sequential ones.
	Concurrent bool `yaml:"concurrent"`

	// WriteSummary writes a canonical summary.json next to the run outputs.
	WriteSummary bool `yaml:"write_summary"`

	// WaitForKey blocks on a single keypress before the process exits.
	WaitForKey bool `yaml:"wait_for_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDir:   "InputText",
		OutputDir:  "OutputText",
		Concurrent: true,
	}
}

// Load reads a YAML config from path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
