// Package cli wires the finders command line onto the finder, search and
// runner packages.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ydkadri/finders/internal/profiling"
	"github.com/ydkadri/finders/internal/version"
)

// NewRootCommand creates and returns the finders command.
func NewRootCommand() *cobra.Command {
	var inv invocation
	var query, pattern string

	cmd := &cobra.Command{
		Use:   "finders [path]",
		Short: "Recursively find files and search their lines",
		Long: `finders walks a directory tree, optionally keeping only the files whose
name contains a pattern, and lists them. Given a literal or regular
expression query it searches every discovered file line by line instead
and prints each matching line with its row number and path.`,
		Args:    cobra.MaximumNArgs(1),
		Version: version.String(),
		// Errors are printed once by main
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) == 0 && cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			if len(positional) == 1 {
				inv.args.Path = positional[0]
			}
			// An empty pattern given on the command line still searches.
			if cmd.Flags().Changed("search-pattern") {
				inv.args.SearchPattern = &query
			}
			if cmd.Flags().Changed("regex-pattern") {
				inv.args.RegexPattern = &pattern
			}
			inv.stdout = cmd.OutOrStdout()
			inv.stderr = cmd.ErrOrStderr()
			return inv.run(cmd.Context())
		},
	}

	args := &inv.args
	flags := cmd.Flags()
	flags.StringVarP(&args.FilePattern, "file-pattern", "f", "", "Only keep files whose name contains this pattern")
	flags.StringVarP(&query, "search-pattern", "s", "", "Literal text to search for")
	flags.StringVarP(&pattern, "regex-pattern", "r", "", "Regular expression to search for")
	flags.BoolVarP(&args.CaseInsensitive, "case-insensitive", "i", false, "Ignore case for literal search")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false, "Report unreadable files and lines")
	flags.BoolVar(&args.Invert, "invert", false, "Report lines not matching the regular expression")
	flags.IntVar(&args.MaxCount, "max", 0, "Stop reading a file after this many matches")
	flags.StringVar(&args.ConfigFile, "cfg", "", "Config file (.yaml, .yml or .toml)")
	flags.StringVar(&args.LogLevel, "logLevel", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&args.LogFile, "logFile", "", "Also write log messages to this file")
	flags.BoolVar(&args.NoColor, "noColor", false, "Disable ANSI colors")
	flags.BoolVar(&args.Decompress, "decompress", false, "Read gzip and zstd compressed files decompressed")
	profiling.AddFlags(flags, &inv.profile)

	return cmd
}
