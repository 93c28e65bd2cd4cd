// Package models defines shared data structures for configuration and
// analysis options.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds analyzer defaults. Values come from an optional YAML config
// file; CLI flags override whatever is set here.
type Config struct {
	BucketCount    int    `yaml:"bucket_count"`
	TopWords       int    `yaml:"top_words"`
	WorkerCount    int    `yaml:"workers"`
	Format         string `yaml:"format"`
	SkipStopwords  bool   `yaml:"skip_stopwords"`
	DetectLanguage bool   `yaml:"detect_language"`
	NoHistory      bool   `yaml:"no_history"`
}

// DefaultConfig returns the built-in defaults used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		BucketCount: 4096,
		TopWords:    25,
		WorkerCount: 4,
		Format:      "text",
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error; the
// defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.BucketCount == 0 {
		config.BucketCount = 4096
	}
	if config.WorkerCount == 0 {
		config.WorkerCount = 4
	}
	if config.Format == "" {
		config.Format = "text"
	}

	return config, nil
}
