// Package config loads the run configuration: which works to read, where the
// segmentation resources live and where the reports go.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of one analysis run.
type Config struct {
	// CorpusDir is prepended to relative work paths.
	CorpusDir string   `yaml:"corpus_dir"`
	Authors   []Author `yaml:"authors"`

	// Dictionaries are loaded in order; later files override earlier ones.
	Dictionaries []string `yaml:"dictionaries"`
	Stopwords    string   `yaml:"stopwords"`

	Reduplication ReduplicationConfig `yaml:"reduplication"`
	Frequency     FrequencyConfig     `yaml:"frequency"`
	Charts        ChartConfig         `yaml:"charts"`
	Log           LogConfig           `yaml:"log"`
}

// Author lists one author's works in processing order.
type Author struct {
	Name  string   `yaml:"name"`
	Works []string `yaml:"works"`
}

// ReduplicationConfig controls the reduplicated-word reports.
type ReduplicationConfig struct {
	Enabled   bool     `yaml:"enabled"`
	OutputDir string   `yaml:"output_dir"`
	Denylist  []string `yaml:"denylist"`
	Particles []string `yaml:"particles"`
}

// FrequencyConfig controls the word and n-gram frequency reports.
type FrequencyConfig struct {
	Enabled   bool   `yaml:"enabled"`
	OutputDir string `yaml:"output_dir"`
	TopN      int    `yaml:"top_n"` // bars per chart
}

// ChartConfig controls chart rendering.
type ChartConfig struct {
	Enabled bool `yaml:"enabled"`
	// Font is a TrueType font with CJK glyphs. Without it chart labels
	// fall back to the renderer's Latin font.
	Font   string  `yaml:"font"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPI    float64 `yaml:"dpi"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns sensible defaults. It names no authors.
func DefaultConfig() *Config {
	return &Config{
		CorpusDir: ".",
		Reduplication: ReduplicationConfig{
			Enabled:   true,
			OutputDir: "叠词统计结果",
			Denylist:  []string{"珊珊", "亭亭"},
			Particles: []string{"的", "地", "得", "着", "了"},
		},
		Frequency: FrequencyConfig{
			Enabled:   true,
			OutputDir: "词频统计结果",
			TopN:      20,
		},
		Charts: ChartConfig{
			Enabled: true,
			Width:   1000,
			Height:  600,
			DPI:     96,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from DIECI_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DIECI_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DIECI_CORPUS_DIR"); v != "" {
		c.CorpusDir = v
	}
}

// Validate reports the first problem that would make a run meaningless.
func (c *Config) Validate() error {
	if len(c.Authors) == 0 {
		return errors.New("no authors configured")
	}
	seen := make(map[string]bool, len(c.Authors))
	for i, a := range c.Authors {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("author %d has no name", i+1)
		}
		if seen[a.Name] {
			return fmt.Errorf("author %q listed twice", a.Name)
		}
		seen[a.Name] = true
		if len(a.Works) == 0 {
			return fmt.Errorf("author %q has no works", a.Name)
		}
	}
	if !c.Reduplication.Enabled && !c.Frequency.Enabled {
		return errors.New("both reduplication and frequency analysis are disabled")
	}
	for _, p := range c.Reduplication.Particles {
		if len([]rune(p)) != 1 {
			return fmt.Errorf("particle %q must be a single character", p)
		}
	}
	if c.Frequency.TopN <= 0 {
		return fmt.Errorf("frequency.top_n must be positive, got %d", c.Frequency.TopN)
	}
	if c.Charts.Enabled && (c.Charts.Width <= 0 || c.Charts.Height <= 0) {
		return fmt.Errorf("chart size %dx%d is invalid", c.Charts.Width, c.Charts.Height)
	}
	return nil
}

// WorkPath resolves a work file name against CorpusDir.
func (c *Config) WorkPath(work string) string {
	if filepath.IsAbs(work) {
		return work
	}
	return filepath.Join(c.CorpusDir, work)
}

// ParticleRunes returns the configured particles as runes.
func (c *Config) ParticleRunes() []rune {
	out := make([]rune, 0, len(c.Reduplication.Particles))
	for _, p := range c.Reduplication.Particles {
		out = append(out, []rune(p)...)
	}
	return out
}
