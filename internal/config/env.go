package config

import (
	"os"
	"strconv"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
)

// Env returns true when a given environment variable is set to "yes".
func Env(env string) bool {
	return "yes" == os.Getenv(env)
}

// applyEnv overrides cfg with FINDERS_* environment variables.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(constants.EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(constants.EnvPrefix + "LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(constants.EnvPrefix + "READ_BUFFER_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "%sREAD_BUFFER_SIZE=%q", constants.EnvPrefix, v)
		}
		cfg.ReadBufferSize = size
	}
	if Env(constants.EnvPrefix + "NO_COLOR") {
		cfg.TermColorsEnable = false
	}
	if Env(constants.EnvPrefix + "DECOMPRESS") {
		cfg.Decompress = true
	}
	if Env(constants.EnvPrefix + "NO_FOLLOW_SYMLINKS") {
		cfg.FollowSymlinks = false
	}
	return nil
}
