// Package config provides configuration management for finders.
//
// Configuration precedence (highest to lowest):
// 1. Command-line arguments
// 2. Environment variables (FINDERS_ prefix)
// 3. Configuration file (YAML or TOML)
// 4. Default values
package config

import (
	"os"

	"golang.org/x/term"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
	"github.com/ydkadri/finders/internal/io/dlog"
)

const (
	// DefaultLogLevel specifies the default log level.
	DefaultLogLevel string = "info"
	// minReadBufferSize is the smallest buffer bufio accepts.
	minReadBufferSize = 16
)

// Config holds the settings that are not part of a single query.
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// LogFile additionally writes diagnostics to a rotated file.
	LogFile string `yaml:"log_file" toml:"log_file"`
	// ReadBufferSize is the per file read buffer in bytes.
	ReadBufferSize int `yaml:"read_buffer_size" toml:"read_buffer_size"`
	// Decompress reads gzip and zstd streams through a decompressor.
	Decompress bool `yaml:"decompress" toml:"decompress"`
	// TermColorsEnable paints match output and log levels.
	TermColorsEnable bool `yaml:"term_colors_enable" toml:"term_colors_enable"`
	// FollowSymlinks descends into linked directories.
	FollowSymlinks bool `yaml:"follow_symlinks" toml:"follow_symlinks"`
	// MaxCount stops reading a file after that many matches. 0 is unlimited.
	MaxCount int `yaml:"max_count" toml:"max_count"`
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DefaultConfig returns the built in defaults. Colors are enabled when
// stdout is a terminal.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         DefaultLogLevel,
		ReadBufferSize:   constants.ReadBufferSize,
		TermColorsEnable: isTerminal(),
		FollowSymlinks:   true,
		MaxCount:         constants.Unlimited,
	}
}

// Setup builds the configuration from all sources. args may be nil.
func Setup(args *Args) (*Config, error) {
	if args == nil {
		args = &Args{}
	}
	cfg := DefaultConfig()

	configFile := args.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(constants.EnvPrefix + "CONFIG")
	}
	if configFile != "" {
		if err := loadFile(configFile, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyArgs(args, cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyArgs(args *Args, cfg *Config) {
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	if args.LogFile != "" {
		cfg.LogFile = args.LogFile
	}
	if args.NoColor {
		cfg.TermColorsEnable = false
	}
	if args.Decompress {
		cfg.Decompress = true
	}
	if args.MaxCount != 0 {
		cfg.MaxCount = args.MaxCount
	}
}

func (c *Config) validate() error {
	if !dlog.ValidLevel(c.LogLevel) {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	if c.ReadBufferSize < minReadBufferSize {
		return errors.Wrapf(errors.ErrInvalidConfig, "read buffer size %d below %d",
			c.ReadBufferSize, minReadBufferSize)
	}
	if c.MaxCount < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative max count %d", c.MaxCount)
	}
	return nil
}
