// Package config loads the .prepdeck/config.yml application config.
package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration schema.
type Config struct {
	Version  int        `yaml:"version"`
	Catalog  string     `yaml:"catalog,omitempty"`
	StateDir string     `yaml:"state_dir,omitempty"`
	NoColor  bool       `yaml:"no_color,omitempty"`
	Exam     ExamConfig `yaml:"exam,omitempty"`
}

// ExamConfig sets the timed exam parameters.
type ExamConfig struct {
	Length          int `yaml:"length,omitempty"`
	DurationSeconds int `yaml:"duration_seconds,omitempty"`
}

// ParseConfig decodes config data with strict field checking.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
