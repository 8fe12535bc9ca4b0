package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ydkadri/finders/internal/errors"
)

// fileConfig mirrors Config with pointers so keys missing from the file
// leave the defaults alone.
type fileConfig struct {
	LogLevel         *string `yaml:"log_level" toml:"log_level"`
	LogFile          *string `yaml:"log_file" toml:"log_file"`
	ReadBufferSize   *int    `yaml:"read_buffer_size" toml:"read_buffer_size"`
	Decompress       *bool   `yaml:"decompress" toml:"decompress"`
	TermColorsEnable *bool   `yaml:"term_colors_enable" toml:"term_colors_enable"`
	FollowSymlinks   *bool   `yaml:"follow_symlinks" toml:"follow_symlinks"`
	MaxCount         *int    `yaml:"max_count" toml:"max_count"`
}

// loadFile merges the YAML (.yaml, .yml) or TOML (.toml) file at path into cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "reading %s: %v", path, err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		_, err = toml.Decode(string(data), &fc)
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unsupported config file type %q", ext)
	}
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "parsing %s: %v", path, err)
	}

	fc.merge(cfg)
	return nil
}

func (fc *fileConfig) merge(cfg *Config) {
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.ReadBufferSize != nil {
		cfg.ReadBufferSize = *fc.ReadBufferSize
	}
	if fc.Decompress != nil {
		cfg.Decompress = *fc.Decompress
	}
	if fc.TermColorsEnable != nil {
		cfg.TermColorsEnable = *fc.TermColorsEnable
	}
	if fc.FollowSymlinks != nil {
		cfg.FollowSymlinks = *fc.FollowSymlinks
	}
	if fc.MaxCount != nil {
		cfg.MaxCount = *fc.MaxCount
	}
}
