// Package config handles icalgen configuration using Viper.
//
// Settings come from defaults, then an optional icalgen.yaml (or .toml, .json)
// in the working directory or the file given with --config, then ICALGEN_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "icalgen"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "icalgen"
	// EnvPrefix prefixes the environment variables that override settings.
	EnvPrefix = "ICALGEN"
)

// Config holds the CLI settings.
type Config struct {
	// ProdID is used when a descriptor does not set its own product identifier.
	ProdID string `mapstructure:"prodid"`
	// Fold enables 75-octet line folding of the output.
	Fold bool `mapstructure:"fold"`
	// GenerateUID gives events without a UID a random one.
	GenerateUID bool `mapstructure:"generate_uid"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// LoadOptions controls where Load looks for a config file.
type LoadOptions struct {
	// ConfigFilePath, when set, is the only file read. It must exist.
	ConfigFilePath string
	// Dir is searched for icalgen.* when ConfigFilePath is empty. It defaults
	// to the working directory.
	Dir string
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		ProdID:      "-//icalgen//NONSGML icalgen//EN",
		Fold:        true,
		GenerateUID: false,
		LogLevel:    "info",
	}
}

// Load reads the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("prodid", defaults.ProdID)
	v.SetDefault("fold", defaults.Fold)
	v.SetDefault("generate_uid", defaults.GenerateUID)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			// no config file, use defaults
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that Viper cannot type-check.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: expected debug, info, warn or error", c.LogLevel)
	}
	if strings.TrimSpace(c.ProdID) == "" {
		return errors.New("prodid cannot be empty")
	}
	return nil
}
