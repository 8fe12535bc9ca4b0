package constants

// Numeric limits and configuration values
const (
	// MaxSymlinkDepth is the maximum number of nested directories followed
	// through symbolic links during a single walk.
	MaxSymlinkDepth = 100

	// RowFieldWidth is the width the row number is right-aligned to.
	RowFieldWidth = 4

	// PathFieldWidth is the width the file path is left-aligned and padded to.
	PathFieldWidth = 56

	// Unlimited disables the per-file match limit.
	Unlimited = 0
)
