package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultFPS      = 60
	DefaultBurstMin = 6
	DefaultBurstMax = 10
)

type Config struct {
	Seed   int64       `yaml:"seed"`
	FPS    int         `yaml:"fps"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Burst  BurstConfig `yaml:"burst"`
}

// BurstConfig bounds the randomized rocket count per user-triggered burst.
type BurstConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Burst: BurstConfig{
			Min: DefaultBurstMin,
			Max: DefaultBurstMax,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Burst.Min <= 0 {
		return fmt.Errorf("burst min must be positive, got %d", c.Burst.Min)
	}
	if c.Burst.Max < c.Burst.Min {
		return fmt.Errorf("burst max %d below min %d", c.Burst.Max, c.Burst.Min)
	}
	return nil
}
