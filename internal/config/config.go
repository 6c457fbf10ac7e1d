// Package config loads the optional per-evaluator TOML config. Evaluators
// are invoked with a fixed argv by the harness, so the only tunables live in
// a file (or the environment), never in flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/probelab/evalctl/internal/logging"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "EVALCTL_CONFIG"
	// DefaultPath is probed when EnvConfigPath is unset. A missing file is
	// fine: evaluators run on defaults in most deployments.
	DefaultPath = "evaluator.toml"
)

var ErrInvalidLogLevel = errors.New("config: invalid log level")

type Config struct {
	Log logging.Options
}

type fileConfig struct {
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
}

// ResolvePath picks the config file location, environment first.
func ResolvePath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the config at path, layering file values and then environment
// overrides on top of the runtime defaults. Only a path that exists and
// fails to parse or validate is an error.
func Load(path string) (Config, error) {
	cfg := Config{Log: logging.DefaultOptions(logging.ProfileRuntime)}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return Config{}, fmt.Errorf("load config: %w", err)
	default:
		if meta.IsDefined("log", "level") {
			lvl, ok := logging.ParseLevel(raw.Log.Level)
			if !ok {
				return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, raw.Log.Level)
			}
			cfg.Log.Level = lvl
		}
		if meta.IsDefined("log", "timestamp") {
			cfg.Log.Timestamp = raw.Log.Timestamp
		}
		if meta.IsDefined("log", "no_color") {
			cfg.Log.NoColor = raw.Log.NoColor
		}
	}

	logging.ApplyEnvOverrides(&cfg.Log)
	return cfg, nil
}
