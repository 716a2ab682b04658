package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	DefaultAlgorithm = "Bubble Sort"
	DefaultDelay     = 0.1
	MinDelay         = 0.01
	MaxDelay         = 1.0
	DelayStep        = 0.01
	DefaultSize      = 50
	DefaultMin       = 10
	DefaultMax       = 100
	DefaultWidth     = 100
	DefaultHeight    = 20
	DefaultFill      = 0.875
	DefaultTheme     = "classic"
)

type Config struct {
	Algorithm string        `yaml:"algorithm" toml:"algorithm"`
	Delay     float64       `yaml:"delay" toml:"delay"`
	Target    string        `yaml:"target,omitempty" toml:"target"`
	Seed      int64         `yaml:"seed,omitempty" toml:"seed"`
	Dataset   DatasetConfig `yaml:"dataset" toml:"dataset"`
	Display   DisplayConfig `yaml:"display" toml:"display"`
}

type DatasetConfig struct {
	Size int `yaml:"size" toml:"size"`
	Min  int `yaml:"min" toml:"min"`
	Max  int `yaml:"max" toml:"max"`
}

type DisplayConfig struct {
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	Fill   float64 `yaml:"fill" toml:"fill"`
	Theme  string  `yaml:"theme" toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Delay:     DefaultDelay,
		Dataset: DatasetConfig{
			Size: DefaultSize,
			Min:  DefaultMin,
			Max:  DefaultMax,
		},
		Display: DisplayConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Fill:   DefaultFill,
			Theme:  DefaultTheme,
		},
	}
}

// Load reads a YAML or TOML file on top of the defaults. The format is
// picked from the extension; anything that is not .toml is parsed as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Validate() error {
	switch {
	case c.Delay < MinDelay || c.Delay > MaxDelay:
		return fmt.Errorf("%w: delay %.2f outside [%.2f, %.2f]", ErrInvalidConfig, c.Delay, MinDelay, MaxDelay)
	case c.Dataset.Size <= 0:
		return fmt.Errorf("%w: dataset size must be positive, got %d", ErrInvalidConfig, c.Dataset.Size)
	case c.Dataset.Min <= 0:
		return fmt.Errorf("%w: dataset values must be positive, min %d", ErrInvalidConfig, c.Dataset.Min)
	case c.Dataset.Max < c.Dataset.Min:
		return fmt.Errorf("%w: dataset max %d below min %d", ErrInvalidConfig, c.Dataset.Max, c.Dataset.Min)
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display must be at least 1x1", ErrInvalidConfig)
	case c.Display.Fill <= 0 || c.Display.Fill > 1:
		return fmt.Errorf("%w: fill %.3f outside (0, 1]", ErrInvalidConfig, c.Display.Fill)
	}
	return nil
}

// ClampDelay snaps d onto the selectable delay grid.
func ClampDelay(d float64) float64 {
	if d < MinDelay {
		d = MinDelay
	}
	if d > MaxDelay {
		d = MaxDelay
	}
	steps := int(d/DelayStep + 0.5)
	return float64(steps) * DelayStep
}
