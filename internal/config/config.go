// Package config holds the host settings for the btree command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/btree/internal/core/observability/log"
)

// Config is the YAML host configuration. Zero fields in a file keep their defaults.
type Config struct {
	LogLevel string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	Seed     int64         `yaml:"seed"`
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
	Ticks    uint64        `yaml:"ticks"`
	Listen   string        `yaml:"listen" validate:"required"`
	Lattice  LatticeConfig `yaml:"lattice"`
}

// LatticeConfig sizes the particle grid used as the Selector signal source.
type LatticeConfig struct {
	Cols int `yaml:"cols" validate:"gt=0"`
	Rows int `yaml:"rows" validate:"gt=0"`
}

var validate = validator.New()

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Interval: 500 * time.Millisecond,
		Ticks:    1,
		Listen:   ":8080",
		Lattice:  LatticeConfig{Cols: 4, Rows: 12},
	}
}

// Load reads path over Defaults. An empty path returns Defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML over Defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return lvl
}
