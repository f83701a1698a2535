// Package config provides configuration for the notation tools.
//
// Values come from, in increasing priority: built-in defaults, an optional
// config file (YAML, TOML or JSON) and PGN_-prefixed environment variables
// such as PGN_PARSE_WORKERS or PGN_OUTPUT_FORMAT.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PGN"

// Config holds all program configuration.
type Config struct {
	Parse   ParseConfig   `mapstructure:"parse"`
	Output  OutputConfig  `mapstructure:"output"`
	Library LibraryConfig `mapstructure:"library"`
	Log     LogConfig     `mapstructure:"log"`
}

// ParseConfig holds settings for batch parsing.
type ParseConfig struct {
	// Workers is the number of goroutines parsing files concurrently.
	Workers int `mapstructure:"workers"`

	// BufferSize is the capacity of the worker pool queues.
	BufferSize int `mapstructure:"buffer_size"`
}

// LibraryConfig locates the directory of stored games.
type LibraryConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn or error
	Format string `mapstructure:"format"` // console or json
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			Workers:    runtime.NumCPU(),
			BufferSize: 16,
		},
		Output: *NewOutputConfig(),
		Library: LibraryConfig{
			Dir: "pgns",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the file at path (skipped when path
// is empty) and the environment. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, pgnerrors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, pgnerrors.Wrap(err, "decode config")
	}
	if f, err := ParseFormat(string(cfg.Output.Format)); err == nil {
		cfg.Output.Format = f
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables can
// override keys absent from the config file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("parse.workers", d.Parse.Workers)
	v.SetDefault("parse.buffer_size", d.Parse.BufferSize)
	v.SetDefault("output.format", string(d.Output.Format))
	v.SetDefault("output.max_line_length", d.Output.MaxLineLength)
	v.SetDefault("output.keep_comments", d.Output.KeepComments)
	v.SetDefault("output.keep_nags", d.Output.KeepNAGs)
	v.SetDefault("output.keep_variations", d.Output.KeepVariations)
	v.SetDefault("library.dir", d.Library.Dir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Parse.Workers < 1 {
		return fmt.Errorf("%w: parse.workers must be positive, got %d", pgnerrors.ErrInvalidConfig, c.Parse.Workers)
	}
	if c.Parse.BufferSize < 1 {
		return fmt.Errorf("%w: parse.buffer_size must be positive, got %d", pgnerrors.ErrInvalidConfig, c.Parse.BufferSize)
	}
	if _, err := ParseFormat(string(c.Output.Format)); err != nil {
		return err
	}
	if c.Library.Dir == "" {
		return fmt.Errorf("%w: library.dir is empty", pgnerrors.ErrInvalidConfig)
	}
	if !oneOf(c.Log.Level, logLevels) {
		return fmt.Errorf("%w: unknown log.level %q", pgnerrors.ErrInvalidConfig, c.Log.Level)
	}
	if !oneOf(c.Log.Format, logFormats) {
		return fmt.Errorf("%w: unknown log.format %q", pgnerrors.ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
