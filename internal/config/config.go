// SPDX-License-Identifier: EPL-2.0

// Package config loads pianoseq settings from flags, environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ik5/pianoseq/formats/wav"
	"github.com/ik5/pianoseq/naming"
	"github.com/ik5/pianoseq/samples"
	"github.com/ik5/pianoseq/sequence"
	"github.com/spf13/viper"
)

// Keys, also used as flag names.
const (
	KeySoundsDir  = "sounds-dir"
	KeyOutputDir  = "output-dir"
	KeyOutputBase = "output-base"
	KeySpeed      = "speed"
	KeyMaxChars   = "max-chars"
	KeyLogLevel   = "log-level"
)

// EnvPrefix is prepended to upper-cased keys, e.g. PIANOSEQ_SOUNDS_DIR.
const EnvPrefix = "pianoseq"

var (
	ErrInvalidSpeed    = errors.New("speed must be at least 1")
	ErrInvalidMaxChars = errors.New("max-chars must be at least 1")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Config holds all application configuration.
type Config struct {
	SoundsDir  string
	OutputDir  string
	OutputBase string
	Speed      int
	MaxChars   int
	LogLevel   string
}

// NewViper returns a viper instance with defaults and environment lookup set.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySoundsDir, samples.DefaultDir)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyOutputBase, naming.DefaultBase)
	v.SetDefault(KeySpeed, wav.DefaultSpeed)
	v.SetDefault(KeyMaxChars, sequence.DefaultMaxChars)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configFile, if given, and returns the validated configuration.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
		log.Debug("Using configuration file", "path", v.ConfigFileUsed())
	}

	cfg := &Config{
		SoundsDir:  v.GetString(KeySoundsDir),
		OutputDir:  v.GetString(KeyOutputDir),
		OutputBase: v.GetString(KeyOutputBase),
		Speed:      v.GetInt(KeySpeed),
		MaxChars:   v.GetInt(KeyMaxChars),
		LogLevel:   v.GetString(KeyLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if c.Speed < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSpeed, c.Speed)
	}

	if c.MaxChars < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxChars, c.MaxChars)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.SoundsDir == "" {
		c.SoundsDir = samples.DefaultDir
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.OutputBase == "" {
		c.OutputBase = naming.DefaultBase
	}

	return nil
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
