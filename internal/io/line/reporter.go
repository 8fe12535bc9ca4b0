package line

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
)

// Reporter writes matches as "{row:>4}: {path:<56} {line}", one per line.
type Reporter struct {
	writer   *bufio.Writer
	colored  bool
	rowColor *color.Color
	matches  int
}

// NewReporter returns a Reporter writing to w. With colored set, the row
// number is painted; alignment is computed before painting so the columns
// stay in place.
func NewReporter(w io.Writer, colored bool) *Reporter {
	rowColor := color.New(color.FgGreen, color.Bold)
	rowColor.EnableColor()
	return &Reporter{
		writer:   bufio.NewWriter(w),
		colored:  colored,
		rowColor: rowColor,
	}
}

// ProcessMatch implements Processor.
func (r *Reporter) ProcessMatch(path string, rowNum int, text string) error {
	row := fmt.Sprintf("%*d", constants.RowFieldWidth, rowNum)
	if r.colored {
		row = r.rowColor.Sprint(row)
	}
	_, err := fmt.Fprintf(r.writer, "%s: %-*s %s\n", row, constants.PathFieldWidth, path, text)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
	}
	r.matches++
	return nil
}

// Flush implements Processor.
func (r *Reporter) Flush() error {
	if err := r.writer.Flush(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
	}
	return nil
}

// Matches returns the number of matches written so far.
func (r *Reporter) Matches() int {
	return r.matches
}

// ListPaths writes each path quoted on its own line. It is the output when
// no search query is given.
func ListPaths(w io.Writer, paths []string) error {
	bw := bufio.NewWriter(w)
	for _, path := range paths {
		if _, err := fmt.Fprintf(bw, "%q\n", path); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
	}
	return nil
}
