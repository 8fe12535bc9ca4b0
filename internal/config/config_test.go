package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
	"github.com/ydkadri/finders/internal/testutil"
)

// cleanEnv clears all overrides and pretends stdout is a terminal.
func cleanEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"CONFIG", "LOG_LEVEL", "LOG_FILE", "READ_BUFFER_SIZE",
		"NO_COLOR", "DECOMPRESS", "NO_FOLLOW_SYMLINKS"} {
		t.Setenv(constants.EnvPrefix+name, "")
	}
	old := isTerminal
	isTerminal = func() bool { return true }
	t.Cleanup(func() { isTerminal = old })
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := testutil.TempDir(t)
	testutil.CreateFileTree(t, dir, map[string]string{name: content})
	return filepath.Join(dir, name)
}

func TestSetupDefaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Setup(nil)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		LogLevel:         "info",
		ReadBufferSize:   8192,
		TermColorsEnable: true,
		FollowSymlinks:   true,
	}, cfg)
}

func TestSetupColorsFollowTerminal(t *testing.T) {
	cleanEnv(t)
	isTerminal = func() bool { return false }

	cfg, err := Setup(&Args{})
	require.NoError(t, err)
	assert.False(t, cfg.TermColorsEnable)
}

func TestSetupYAML(t *testing.T) {
	cleanEnv(t)
	path := writeConfig(t, "finders.yaml", `
log_level: debug
log_file: /tmp/finders.log
read_buffer_size: 4096
decompress: true
follow_symlinks: false
max_count: 5
`)

	cfg, err := Setup(&Args{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/finders.log", cfg.LogFile)
	assert.Equal(t, 4096, cfg.ReadBufferSize)
	assert.True(t, cfg.Decompress)
	assert.False(t, cfg.FollowSymlinks)
	assert.Equal(t, 5, cfg.MaxCount)
	assert.True(t, cfg.TermColorsEnable, "keys missing from the file keep their defaults")
}

func TestSetupTOML(t *testing.T) {
	cleanEnv(t)
	path := writeConfig(t, "finders.toml", `
log_level = "warn"
term_colors_enable = false
read_buffer_size = 65536
`)

	cfg, err := Setup(&Args{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.TermColorsEnable)
	assert.Equal(t, 65536, cfg.ReadBufferSize)
	assert.False(t, cfg.Decompress)
}

func TestSetupConfigFromEnv(t *testing.T) {
	cleanEnv(t)
	path := writeConfig(t, "finders.yml", "log_level: error\n")
	t.Setenv(constants.EnvPrefix+"CONFIG", path)

	cfg, err := Setup(&Args{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestSetupPrecedence(t *testing.T) {
	cleanEnv(t)
	path := writeConfig(t, "finders.yaml", "log_level: debug\nmax_count: 3\nlog_file: file.log\n")
	t.Setenv(constants.EnvPrefix+"LOG_LEVEL", "warn")
	t.Setenv(constants.EnvPrefix+"LOG_FILE", "env.log")
	t.Setenv(constants.EnvPrefix+"NO_COLOR", "yes")

	cfg, err := Setup(&Args{ConfigFile: path, LogLevel: "error"})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel, "args beat env")
	assert.Equal(t, "env.log", cfg.LogFile, "env beats file")
	assert.Equal(t, 3, cfg.MaxCount, "file beats defaults")
	assert.False(t, cfg.TermColorsEnable)
}

func TestSetupArgs(t *testing.T) {
	cleanEnv(t)

	cfg, err := Setup(&Args{NoColor: true, Decompress: true, MaxCount: 7, LogFile: "x.log"})
	require.NoError(t, err)

	assert.False(t, cfg.TermColorsEnable)
	assert.True(t, cfg.Decompress)
	assert.Equal(t, 7, cfg.MaxCount)
	assert.Equal(t, "x.log", cfg.LogFile)
}

func TestSetupErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Args
	}{
		{"missing file", func(t *testing.T) *Args {
			return &Args{ConfigFile: filepath.Join(testutil.TempDir(t), "none.yaml")}
		}},
		{"unsupported extension", func(t *testing.T) *Args {
			return &Args{ConfigFile: writeConfig(t, "finders.json", "{}")}
		}},
		{"malformed yaml", func(t *testing.T) *Args {
			return &Args{ConfigFile: writeConfig(t, "finders.yaml", "log_level: [unclosed")}
		}},
		{"malformed toml", func(t *testing.T) *Args {
			return &Args{ConfigFile: writeConfig(t, "finders.toml", "log_level = ")}
		}},
		{"unknown log level", func(t *testing.T) *Args {
			return &Args{LogLevel: "chatty"}
		}},
		{"tiny buffer", func(t *testing.T) *Args {
			return &Args{ConfigFile: writeConfig(t, "finders.yaml", "read_buffer_size: 8\n")}
		}},
		{"negative max count", func(t *testing.T) *Args {
			return &Args{MaxCount: -1}
		}},
		{"bad buffer env", func(t *testing.T) *Args {
			t.Setenv(constants.EnvPrefix+"READ_BUFFER_SIZE", "lots")
			return &Args{}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			cfg, err := Setup(tt.setup(t))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}
