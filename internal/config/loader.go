package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvSeed            = "T2048_SEED"
	EnvDifficulty      = "T2048_DIFFICULTY"
	EnvFourProbability = "T2048_FOUR_PROBABILITY"
	EnvLogLevel        = "T2048_LOG_LEVEL"
	EnvLogFile         = "T2048_LOG_FILE"
	EnvTelemetry       = "T2048_TELEMETRY"
)

// Load builds the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// A .env file in the working directory is loaded first (best effort), then
// T2048_* variables override whatever the file said.
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse embedded default: %w", err)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
	} else {
		for _, path := range searchPaths() {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			candidate := cfg
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				cfg = candidate
				break
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".t2048", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "t2048.yaml"))
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Game.Seed = seed
	}
	if v, ok := lookup(EnvDifficulty); ok {
		cfg.Game.Difficulty = DifficultyPreset(v)
	}
	if v, ok := lookup(EnvFourProbability); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvFourProbability, v, err)
		}
		cfg.Game.FourProbability = &p
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvTelemetry); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvTelemetry, v, err)
		}
		cfg.Telemetry.Enabled = enabled
	}
	return nil
}

// lookup treats an empty variable as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
