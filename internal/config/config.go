package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListen    = "localhost:8080"
	DefaultFrameRate = 60
)

// Config is the on-disk configuration. Zero values fall back to the defaults.
type Config struct {
	Listen       string `yaml:"listen"`
	FrameRate    int    `yaml:"frame_rate"`
	Level        string `yaml:"level"`      // inline ASCII map
	LevelFile    string `yaml:"level_file"` // ASCII map on disk, relative to the config file
	MaxCallDepth int    `yaml:"max_call_depth"`
	Verbose      bool   `yaml:"verbose"`
	NoColor      bool   `yaml:"no_color"`
}

// Default returns the configuration used without a config file
func Default() *Config {
	return &Config{
		Listen:    DefaultListen,
		FrameRate: DefaultFrameRate,
	}
}

// Load reads a YAML config file. Unknown keys are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}

	if cfg.LevelFile != "" && !filepath.IsAbs(cfg.LevelFile) {
		cfg.LevelFile = filepath.Join(filepath.Dir(abs), cfg.LevelFile)
	}

	return cfg, nil
}

// Parse decodes a config document on top of the defaults
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Listen = strings.TrimSpace(c.Listen)
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.FrameRate == 0 {
		c.FrameRate = DefaultFrameRate
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.FrameRate < 0 || c.FrameRate > 1000 {
		return fmt.Errorf("frame_rate must be between 1 and 1000, got %d", c.FrameRate)
	}
	if c.MaxCallDepth < 0 {
		return fmt.Errorf("max_call_depth must not be negative, got %d", c.MaxCallDepth)
	}
	if c.Level != "" && c.LevelFile != "" {
		return errors.New("level and level_file are mutually exclusive")
	}
	return nil
}

// LevelText returns the configured ASCII map, or "" for the built-in level
func (c *Config) LevelText() (string, error) {
	if c.LevelFile == "" {
		return c.Level, nil
	}

	data, err := os.ReadFile(c.LevelFile)
	if err != nil {
		return "", fmt.Errorf("config: read level: %w", err)
	}
	return string(data), nil
}
