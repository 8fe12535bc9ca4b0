package constants

const (
	// DefaultPath is searched when no root path is given.
	DefaultPath = "."

	// EnvPrefix is prepended to all environment variable overrides.
	EnvPrefix = "FINDERS_"
)
