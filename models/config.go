// Package models defines data structures for configuration, comparison records
// and output documents.
package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Comparison names one current/compare document pair and where its result goes.
// Each side may list several files; their counts are summed.
type Comparison struct {
	Name    string   `yaml:"name" toml:"name"`
	Current []string `yaml:"current" toml:"current"`
	Compare []string `yaml:"compare" toml:"compare"`
	Output  string   `yaml:"output" toml:"output"`
}

// Config holds runtime configuration for a run.
// Values come from an optional YAML or TOML file and are overridden by CLI flags.
type Config struct {
	Format          string       `yaml:"format" toml:"format"`
	Encoding        string       `yaml:"encoding" toml:"encoding"`
	Top             int          `yaml:"top" toml:"top"`
	Narrative       string       `yaml:"narrative" toml:"narrative"`
	MinWordLength   int          `yaml:"min_word_length" toml:"min_word_length"`
	DomainStopwords bool         `yaml:"domain_stopwords" toml:"domain_stopwords"`
	Stopwords       []string     `yaml:"stopwords" toml:"stopwords"`
	DetectLanguage  bool         `yaml:"detect_language" toml:"detect_language"`
	Comparisons     []Comparison `yaml:"comparisons" toml:"comparisons"`
}

// Default document names used when no comparisons are configured.
const (
	DefaultCurrentFile  = "current_minutes.txt"
	DefaultPreviousFile = "previous_minutes.txt"
	DefaultLastYearFile = "last_year_minutes.txt"
)

// DefaultComparisons returns the current-vs-previous and current-vs-last-year pairs.
func DefaultComparisons() []Comparison {
	return []Comparison{
		{
			Name:    "vs_previous",
			Current: []string{DefaultCurrentFile},
			Compare: []string{DefaultPreviousFile},
			Output:  "change_vs_previous.json",
		},
		{
			Name:    "vs_last_year",
			Current: []string{DefaultCurrentFile},
			Compare: []string{DefaultLastYearFile},
			Output:  "change_vs_last_year.json",
		},
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Format:        string(FormatRanked),
		Encoding:      string(EncodingJSON),
		MinWordLength: 4,
		Comparisons:   DefaultComparisons(),
	}
}

// LoadConfig reads a configuration file on top of DefaultConfig.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// A configured list replaces the defaults instead of merging into them.
	cfg.Comparisons = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	}

	if len(cfg.Comparisons) == 0 {
		cfg.Comparisons = DefaultComparisons()
	}
	return cfg, nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() (OutputFormat, error) {
	return ParseOutputFormat(c.Format)
}

// OutputEncoding returns the parsed output encoding.
func (c *Config) OutputEncoding() (Encoding, error) {
	return ParseEncoding(c.Encoding)
}

// Validate checks the configuration before any document is read.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.OutputFormat(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.OutputEncoding(); err != nil {
		errs = append(errs, err)
	}
	if c.Top < 0 {
		errs = append(errs, fmt.Errorf("top must not be negative, got %d", c.Top))
	}
	if c.MinWordLength < 1 {
		errs = append(errs, fmt.Errorf("min_word_length must be at least 1, got %d", c.MinWordLength))
	}
	if len(c.Comparisons) == 0 {
		errs = append(errs, errors.New("no comparisons configured"))
	}
	for i, cmp := range c.Comparisons {
		label := cmp.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if len(cmp.Current) == 0 || len(cmp.Compare) == 0 {
			errs = append(errs, fmt.Errorf("comparison %s needs at least one current and one compare document", label))
		}
		if cmp.Output == "" {
			errs = append(errs, fmt.Errorf("comparison %s has no output path", label))
		}
	}
	return errors.Join(errs...)
}
