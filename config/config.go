// Package config loads the tool configuration. The on-disk shape follows
// the original XML layout (visualizer_path, repository_path, target_file);
// a YAML variant of the same keys is accepted as well.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	XMLName        xml.Name     `xml:"config" yaml:"-"`
	ViewerPath     string       `xml:"visualizer_path" yaml:"visualizer_path"`
	RepositoryPath string       `xml:"repository_path" yaml:"repository_path"`
	TargetFile     string       `xml:"target_file" yaml:"target_file"`
	StrictMatch    bool         `xml:"strict_match" yaml:"strict_match"`
	Output         OutputConfig `xml:"output" yaml:"output"`
}

// OutputConfig controls where and how the graph is written.
type OutputConfig struct {
	Format string `xml:"format" yaml:"format"` // dot, mermaid or json
	Path   string `xml:"path" yaml:"path"`     // empty means stdout
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "dot"},
	}
}

// Load reads configuration from path, merging over the defaults. An empty
// path returns the defaults. The format is chosen by extension: .yaml/.yml
// is YAML, anything else is parsed as XML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = xml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "dot"
	}
	return cfg, nil
}

// Validate checks that the values the pipeline depends on are present.
func (c *Config) Validate() error {
	if c.RepositoryPath == "" {
		return fmt.Errorf("configuration is missing repository_path")
	}
	if c.TargetFile == "" {
		return fmt.Errorf("configuration is missing target_file")
	}
	return nil
}
