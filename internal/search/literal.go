package search

import "strings"

// Literal matches lines containing a fixed substring.
type Literal struct {
	query           string
	caseInsensitive bool
	// lowered is the lower-cased query, computed once.
	lowered string
}

// NewLiteral returns a substring matcher. With caseInsensitive set both the
// line and the query are lower-cased before comparing.
func NewLiteral(query string, caseInsensitive bool) *Literal {
	l := &Literal{query: query, caseInsensitive: caseInsensitive}
	if caseInsensitive {
		l.lowered = strings.ToLower(query)
	}
	return l
}

// SearchLine implements Searcher.
func (l *Literal) SearchLine(line string, rowNum int) (Result, bool) {
	if !l.matches(line) {
		return Result{}, false
	}
	return Result{RowNum: rowNum, Line: line}, true
}

// Search implements Searcher.
func (l *Literal) Search(content string) []Result {
	return searchLines(l, content)
}

func (l *Literal) matches(line string) bool {
	if l.caseInsensitive {
		return strings.Contains(strings.ToLower(line), l.lowered)
	}
	return strings.Contains(line, l.query)
}

func (l *Literal) String() string {
	if l.caseInsensitive {
		return "literal(" + l.query + ",case-insensitive)"
	}
	return "literal(" + l.query + ")"
}
