package search

import (
	"github.com/ydkadri/finders/internal/regex"
)

// Regex matches lines in which a regular expression finds a match anywhere.
type Regex struct {
	re regex.Regex
}

// NewRegex compiles pattern once. Invalid syntax is reported here as
// *errors.PatternError. With invert set, lines without a match are reported.
func NewRegex(pattern string, invert bool) (*Regex, error) {
	flag := regex.Default
	if invert {
		flag = regex.Invert
	}
	re, err := regex.New(pattern, flag)
	if err != nil {
		return nil, err
	}
	return &Regex{re: re}, nil
}

// SearchLine implements Searcher.
func (r *Regex) SearchLine(line string, rowNum int) (Result, bool) {
	if !r.re.MatchString(line) {
		return Result{}, false
	}
	return Result{RowNum: rowNum, Line: line}, true
}

// Search implements Searcher.
func (r *Regex) Search(content string) []Result {
	return searchLines(r, content)
}

func (r *Regex) String() string {
	if r.re.IsLiteral() {
		return "regex(" + r.re.Pattern() + "," + r.re.Flag().String() + ",literal)"
	}
	return "regex(" + r.re.Pattern() + "," + r.re.Flag().String() + ")"
}
