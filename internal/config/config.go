// Package config provides configuration loading for brainseg. It reads
// an optional YAML file and falls back to built-in defaults matching the
// reference pipeline (brain_slice.png in, masks.json out).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
//
// The threshold table is deliberately not configurable: the partition of
// the intensity range is a fixed property of the pipeline, not a tuning
// knob.
type Config struct {
	Input struct {
		// Path is the grayscale slice to segment.
		Path string `yaml:"path"`
	} `yaml:"input"`

	Output struct {
		// Path is where the three-key mask JSON document is written.
		Path string `yaml:"path"`

		// OverlayPath, when non-empty, enables the QA overlay PNG and
		// names its destination.
		OverlayPath string `yaml:"overlayPath"`
	} `yaml:"output"`

	Log struct {
		// Level is a zerolog level name: trace, debug, info, warn, error.
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Input.Path = "brain_slice.png"
	cfg.Output.Path = "masks.json"
	cfg.Output.OverlayPath = ""
	cfg.Log.Level = "info"
	return cfg
}

// Load reads configuration from a YAML file, layered over the defaults.
// If the file does not exist the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}
