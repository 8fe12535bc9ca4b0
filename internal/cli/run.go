package cli

import (
	"context"
	"io"

	"github.com/ydkadri/finders/internal/config"
	"github.com/ydkadri/finders/internal/finder"
	"github.com/ydkadri/finders/internal/io/dlog"
	"github.com/ydkadri/finders/internal/io/fs"
	"github.com/ydkadri/finders/internal/io/line"
	"github.com/ydkadri/finders/internal/io/signal"
	"github.com/ydkadri/finders/internal/profiling"
	"github.com/ydkadri/finders/internal/search"
	"github.com/ydkadri/finders/internal/version"
)

// invocation is one run of the command. Results go to stdout, log messages
// to stderr.
type invocation struct {
	args    config.Args
	profile profiling.Flags
	stdout  io.Writer
	stderr  io.Writer
}

func (inv *invocation) run(ctx context.Context) error {
	args := &inv.args
	cfg, err := config.Setup(args)
	if err != nil {
		return err
	}
	dlog.Setup(dlog.Config{
		Out:     inv.stderr,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Colored: cfg.TermColorsEnable,
	})
	defer dlog.Common.Close()

	profiler := profiling.NewProfiler(inv.profile.ToConfig(version.Name))
	defer profiler.Stop()

	f, err := finder.New(args.Path)
	if err != nil {
		return err
	}
	f.FollowSymlinks = cfg.FollowSymlinks

	opts := search.Options{
		Query:           args.SearchPattern,
		Pattern:         args.RegexPattern,
		CaseInsensitive: args.CaseInsensitive,
		Invert:          args.Invert,
	}
	searcher, err := search.New(opts)
	if err != nil {
		return err
	}

	paths := f.Find(args.FilePattern)
	if dlog.Common.Enabled("debug") {
		if skipped := f.Skipped(); skipped != nil {
			dlog.Common.Debug("Skipped entries below", f.Root(), skipped)
		}
	}
	dlog.Common.Debug("Found files", len(paths), "root", f.Root(), "filter", args.FilePattern)

	if !opts.Enabled() {
		return line.ListPaths(inv.stdout, paths)
	}
	dlog.Common.Debug("Searching with", searcher)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reporter := line.NewReporter(inv.stdout, cfg.TermColorsEnable)
	runner := fs.NewRunner(searcher, reporter, fs.Options{
		Verbose:        args.Verbose,
		Decompress:     cfg.Decompress,
		ReadBufferSize: cfg.ReadBufferSize,
		MaxCount:       cfg.MaxCount,
		StatsCh:        signal.InterruptCh(ctx, cancel),
	})
	err = runner.RunContext(ctx, paths)
	dlog.Common.Debug("Reported matches", reporter.Matches())
	profiler.LogMetrics("search")
	return err
}
