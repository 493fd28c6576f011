// Package config holds the settings of one csvcat run.
//
// Values are merged once at startup, in order of precedence: flags set on
// the command line, an optional config file, then defaults. The resulting
// Config is passed explicitly into the pipeline.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/csvcat/internal/output"
)

// Config is the full set of run settings.
type Config struct {
	File      string `mapstructure:"file"`
	Where     string `mapstructure:"where"`
	OrderBy   string `mapstructure:"order-by"`
	Aggregate string `mapstructure:"aggregate"`
	Format    string `mapstructure:"format"`
	Limit     int    `mapstructure:"limit"`
	Schema    bool   `mapstructure:"schema"`
	Verbose   bool   `mapstructure:"verbose"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

var (
	// ErrMissingFile is returned when no input file was given
	ErrMissingFile = errors.New("missing input file argument")

	// ErrInvalidConfig is returned when a setting has an unusable value
	ErrInvalidConfig = errors.New("invalid configuration")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", output.FormatGithub)
	v.SetDefault("limit", 0)
	v.SetDefault("log-level", "WARN")
	v.SetDefault("log-format", "text")
}

// Load merges the config file at path (optional, any format viper reads)
// with the flags that were explicitly set. Environment variables are not
// consulted.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks settings that do not depend on the input data.
func (c *Config) Validate() error {
	if c.File == "" {
		return ErrMissingFile
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must be non-negative, got %d", ErrInvalidConfig, c.Limit)
	}
	if !slices.Contains(output.Names(), c.Format) && c.Format != "jsonl" {
		return fmt.Errorf("%w: unsupported format '%s' (supported: %s)",
			ErrInvalidConfig, c.Format, strings.Join(output.Names(), ", "))
	}
	if c.Schema && c.HasDirectives() {
		return fmt.Errorf("%w: --schema cannot be combined with --where, --order-by or --aggregate", ErrInvalidConfig)
	}
	return nil
}

// HasDirectives reports whether any query directive is set.
func (c *Config) HasDirectives() bool {
	return c.Where != "" || c.OrderBy != "" || c.Aggregate != ""
}

// EffectiveLogLevel returns DEBUG when verbose output was requested and
// the configured level otherwise.
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "DEBUG"
	}
	return c.LogLevel
}
