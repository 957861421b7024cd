// Package config provides YAML-based configuration loading with environment
// overrides for t2048.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the complete t2048 configuration.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	Difficulty      DifficultyPreset `yaml:"difficulty"`
	FourProbability *float64         `yaml:"four_probability,omitempty"` // nil = use the preset
	Seed            int64            `yaml:"seed"`                       // 0 = time-based
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// TelemetryConfig toggles OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// SpawnFourProbability returns the effective chance of spawning a 4.
func (c Config) SpawnFourProbability() float64 {
	if c.Game.FourProbability != nil {
		return *c.Game.FourProbability
	}
	return FourProbabilityForPreset(c.Game.Difficulty)
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return lvl, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if !c.Game.Difficulty.Valid() {
		return fmt.Errorf("%w: difficulty %q (want easy, normal or hard)", ErrInvalidConfig, c.Game.Difficulty)
	}
	if p := c.Game.FourProbability; p != nil && (*p < 0 || *p > 1) {
		return fmt.Errorf("%w: four_probability %v outside [0, 1]", ErrInvalidConfig, *p)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}
