package regex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ydkadri/finders/internal/errors"
)

// Regex for filtering lines.
type Regex struct {
	// The original regex string
	regexStr string
	// The Golang regexp object
	re   *regexp.Regexp
	flag Flag
	// Fields for optimized literal string matching
	isLiteral  bool   // true if pattern contains no regex metacharacters
	literalStr string // literal string for string matching
}

func (r Regex) String() string {
	return fmt.Sprintf("Regex(regexStr:%s,flag:%s,re==nil:%t,isLiteral:%t)",
		r.regexStr, r.flag, r.re == nil, r.isLiteral)
}

// isLiteralPattern checks if the pattern contains no regex metacharacters.
// It returns true only for patterns that can be matched using simple string contains.
func isLiteralPattern(pattern string) bool {
	metaChars := `.+*?^$[]{}()|\`
	for _, ch := range pattern {
		if strings.ContainsRune(metaChars, ch) {
			return false
		}
	}
	return true
}

// NewNoop is a noop regex (doing nothing).
func NewNoop() Regex {
	return Regex{flag: Noop}
}

// New compiles regexStr once. A syntax error is returned as *errors.PatternError.
// Patterns matching every line ("" and ".*") become a noop unless inverted.
func New(regexStr string, flag Flag) (Regex, error) {
	if flag == Default && (regexStr == "" || regexStr == ".*") {
		r := NewNoop()
		r.regexStr = regexStr
		return r, nil
	}

	r := Regex{
		regexStr: regexStr,
		flag:     flag,
	}

	// Always compile so invalid syntax surfaces here and not on first use.
	re, err := regexp.Compile(regexStr)
	if err != nil {
		return r, &errors.PatternError{Pattern: regexStr, Err: err}
	}
	r.re = re

	if isLiteralPattern(regexStr) {
		r.isLiteral = true
		r.literalStr = regexStr
	}
	return r, nil
}

// MatchString matches a string.
func (r Regex) MatchString(str string) bool {
	if r.isLiteral {
		switch r.flag {
		case Default:
			return strings.Contains(str, r.literalStr)
		case Invert:
			return !strings.Contains(str, r.literalStr)
		case Noop:
			return true
		default:
			return false
		}
	}

	switch r.flag {
	case Default:
		return r.re.MatchString(str)
	case Invert:
		return !r.re.MatchString(str)
	case Noop:
		return true
	default:
		return false
	}
}

// IsLiteral returns true if this regex is using literal string matching
func (r Regex) IsLiteral() bool {
	return r.isLiteral
}

// Pattern returns the original pattern string
func (r Regex) Pattern() string {
	return r.regexStr
}

// Flag returns the match flag.
func (r Regex) Flag() Flag {
	return r.flag
}
