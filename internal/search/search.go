// Package search holds the line matching strategies of finders. A Searcher
// evaluates either one line at a time, which is what the streaming runner
// uses, or a whole block of text at once for batch callers. Both paths share
// the same per-line predicate so they can never disagree.
package search

import "strings"

// Result is one matching line.
type Result struct {
	// RowNum is the 1-based line number within the searched content.
	RowNum int
	// Line is the matched line without its line terminator.
	Line string
}

// Searcher matches lines against a query.
type Searcher interface {
	// SearchLine evaluates a single line given its 1-based row number.
	SearchLine(line string, rowNum int) (Result, bool)
	// Search evaluates a whole block of text, numbering rows from 1.
	Search(content string) []Result
}

// Options select and configure a Searcher.
type Options struct {
	// Query is a literal substring. It takes precedence over Pattern. An
	// empty query is still a query and matches every line.
	Query *string
	// Pattern is a regular expression.
	Pattern         *string
	CaseInsensitive bool
	// Invert only applies to Pattern.
	Invert bool
}

// Enabled reports whether any query was given.
func (o Options) Enabled() bool {
	return o.Query != nil || o.Pattern != nil
}

// New builds the Searcher described by opts. The literal query wins when
// both a query and a pattern are set. With neither set it returns nil; see
// Options.Enabled.
func New(opts Options) (Searcher, error) {
	switch {
	case opts.Query != nil:
		return NewLiteral(*opts.Query, opts.CaseInsensitive), nil
	case opts.Pattern != nil:
		return NewRegex(*opts.Pattern, opts.Invert)
	default:
		return nil, nil
	}
}

// searchLines splits content into lines and runs SearchLine over each.
func searchLines(s Searcher, content string) []Result {
	var results []Result
	rowNum := 1
	for len(content) > 0 {
		var line string
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			line, content = content, ""
		}
		if result, ok := s.SearchLine(TrimCR(line), rowNum); ok {
			results = append(results, result)
		}
		rowNum++
	}
	return results
}

// TrimCR drops a trailing carriage return left over from a CRLF terminator.
func TrimCR(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
