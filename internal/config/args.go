package config

// Args holds the command line arguments.
type Args struct {
	// Path is the root of the search. Empty means the current directory.
	Path        string
	FilePattern string
	// SearchPattern and RegexPattern are nil when not given. An empty
	// pattern is still a query.
	SearchPattern   *string
	RegexPattern    *string
	CaseInsensitive bool
	Verbose         bool
	Invert          bool
	MaxCount        int
	ConfigFile      string
	LogLevel        string
	LogFile         string
	NoColor         bool
	Decompress      bool
}
