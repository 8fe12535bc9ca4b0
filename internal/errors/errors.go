// Package errors defines the error taxonomy of finders. Construction-time
// failures (path resolution, pattern compilation) and fatal I/O failures are
// typed so callers can branch on them with Is/As, while recoverable decoding
// failures share the ErrInvalidEncoding sentinel.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Path resolution
	ErrPathNotFound = errors.New("path not found")

	// Search strategy construction
	ErrInvalidPattern = errors.New("invalid pattern")

	// File/IO errors
	ErrFileOpen        = errors.New("file open failed")
	ErrReadFailed      = errors.New("read failed")
	ErrWriteFailed     = errors.New("write failed")
	ErrInvalidEncoding = errors.New("invalid encoding")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PathNotFoundError is returned when the root path given to a search does not exist.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("No such path: %s", e.Path)
}

// Is reports ErrPathNotFound as a match.
func (e *PathNotFoundError) Is(target error) bool { return target == ErrPathNotFound }

// Unwrap returns the underlying stat error.
func (e *PathNotFoundError) Unwrap() error { return e.Err }

// PatternError is returned when a regular expression fails to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

// Is reports ErrInvalidPattern as a match.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// Unwrap returns the compiler error.
func (e *PatternError) Unwrap() error { return e.Err }

// FileOpenError is returned when a discovered file cannot be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("cannot open file %s: %v", e.Path, e.Err)
}

// Is reports ErrFileOpen as a match.
func (e *FileOpenError) Is(target error) bool { return target == ErrFileOpen }

// Unwrap returns the OS error, so fs.ErrPermission and fs.ErrNotExist
// remain detectable.
func (e *FileOpenError) Unwrap() error { return e.Err }

// Error wrapping functions

// Wrap wraps an error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to extract a specific error type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Multi-error support for operations that can have multiple failures

// MultiError represents multiple errors
type MultiError struct {
	errors []error
}

// NewMultiError creates a new MultiError
func NewMultiError() *MultiError {
	return &MultiError{
		errors: make([]error, 0),
	}
}

// Add adds an error to the MultiError
func (m *MultiError) Add(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

// HasErrors returns true if there are any errors
func (m *MultiError) HasErrors() bool {
	return len(m.errors) > 0
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.errors) == 0 {
		return ""
	}
	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}
	return fmt.Sprintf("multiple errors occurred: %v", m.errors)
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.errors
}

// ErrorOrNil returns nil if no errors, otherwise returns the MultiError
func (m *MultiError) ErrorOrNil() error {
	if m.HasErrors() {
		return m
	}
	return nil
}
