package fs

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"unicode/utf8"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
	"github.com/ydkadri/finders/internal/io/dlog"
	"github.com/ydkadri/finders/internal/io/line"
	"github.com/ydkadri/finders/internal/io/pool"
	"github.com/ydkadri/finders/internal/search"
)

// Options tune a Runner.
type Options struct {
	// Verbose logs every skipped file and line.
	Verbose bool
	// Decompress reads gzip and zstd streams, recognised by their magic
	// bytes, through a decompressor.
	Decompress bool
	// ReadBufferSize is the per file read buffer. Defaults to constants.ReadBufferSize.
	ReadBufferSize int
	// MaxCount stops reading a file after that many matches. 0 is unlimited.
	MaxCount int
	// StatsCh delivers stats requests, answered by logging the counters so far.
	StatsCh <-chan string
}

// Runner searches files one after another.
type Runner struct {
	searcher  search.Searcher
	processor line.Processor
	opts      Options
	stats     Stats
}

// NewRunner returns a Runner reporting matches of searcher to processor.
func NewRunner(searcher search.Searcher, processor line.Processor, opts Options) *Runner {
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = constants.ReadBufferSize
	}
	return &Runner{
		searcher:  searcher,
		processor: processor,
		opts:      opts,
	}
}

// outcome is the result of searching a single file. Recoverable failures
// skip the file, all others end the run.
type outcome struct {
	err         error
	recoverable bool
}

var done = outcome{}

func fatal(err error) outcome {
	return outcome{err: err}
}

// Run searches paths in order. It returns the first fatal error, after which
// no further file is opened. Files that cannot be decoded are skipped.
func (r *Runner) Run(paths []string) error {
	return r.RunContext(context.Background(), paths)
}

// RunContext is Run stopping with ctx.Err() once ctx is done. Matches found
// before the cancellation are still flushed.
func (r *Runner) RunContext(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := r.checkpoint(ctx); err != nil {
			return err
		}
		result := r.searchFile(ctx, path)
		if err := r.processor.Flush(); err != nil && result.err == nil {
			result = fatal(err)
		}

		switch {
		case result.err == nil:
			r.stats.Files++
		case result.recoverable:
			r.stats.SkippedFiles++
			if r.opts.Verbose {
				dlog.Common.Warn("Cannot read file", path, result.err)
			}
		default:
			return result.err
		}
	}
	dlog.Common.Debug("Search finished", r.stats)
	return nil
}

// Stats returns the counters of all runs so far.
func (r *Runner) Stats() Stats {
	return r.stats
}

// checkpoint reports cancellation and answers a pending stats request.
func (r *Runner) checkpoint(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case hint := <-r.opts.StatsCh:
		dlog.Common.Info("Progress", r.stats, hint)
	default:
	}
	return nil
}

func (r *Runner) searchFile(ctx context.Context, path string) outcome {
	dlog.Common.Trace("Searching file", path)
	f, err := openFile(path, r.opts.Decompress, r.opts.ReadBufferSize)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidEncoding) {
			return outcome{err: err, recoverable: true}
		}
		if r.opts.Verbose {
			dlog.Common.Warn("Cannot open file", path, err)
		}
		return fatal(err)
	}
	defer f.Close()

	message := pool.GetBytesBuffer()
	defer pool.RecycleBytesBuffer(message)

	matches := 0
	for rowNum := 1; ; rowNum++ {
		if rowNum%constants.StatsCheckInterval == 0 {
			if err := r.checkpoint(ctx); err != nil {
				return fatal(err)
			}
		}
		message.Reset()
		readErr := readLine(f.reader, message)
		if readErr != nil && readErr != io.EOF {
			err := f.classify(readErr)
			if errors.Is(err, errors.ErrInvalidEncoding) {
				return outcome{err: err, recoverable: true}
			}
			return fatal(err)
		}
		if readErr == io.EOF && message.Len() == 0 {
			return done
		}

		matched, err := r.processLine(f.FilePath(), message.Bytes(), rowNum)
		if err != nil {
			return fatal(err)
		}
		if matched {
			matches++
			if r.opts.MaxCount > 0 && matches >= r.opts.MaxCount {
				return done
			}
		}
		if readErr == io.EOF {
			return done
		}
	}
}

// processLine searches one raw line. Lines that are not valid UTF-8 are
// counted and skipped.
func (r *Runner) processLine(path string, raw []byte, rowNum int) (bool, error) {
	raw = trimEOL(raw)
	r.stats.updateLineRead()

	if !utf8.Valid(raw) {
		r.stats.updateLineSkipped()
		if r.opts.Verbose {
			dlog.Common.Warn("Cannot read line", rowNum, "in file", path)
		}
		return false, nil
	}

	result, ok := r.searcher.SearchLine(string(raw), rowNum)
	if !ok {
		return false, nil
	}
	r.stats.updateLineMatched()
	return true, r.processor.ProcessMatch(path, result.RowNum, result.Line)
}

// readLine appends the next line, including its terminator, to message. It
// returns io.EOF once the input is exhausted; message may then still hold a
// final unterminated line.
func readLine(reader *bufio.Reader, message *bytes.Buffer) error {
	for {
		chunk, err := reader.ReadSlice('\n')
		message.Write(chunk)
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

func trimEOL(raw []byte) []byte {
	raw = bytes.TrimSuffix(raw, []byte{'\n'})
	return bytes.TrimSuffix(raw, []byte{'\r'})
}
