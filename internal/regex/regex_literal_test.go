package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydkadri/finders/internal/errors"
)

func TestIsLiteralPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		expected bool
	}{
		// Literal patterns
		{"ERROR", true},
		{"hello world", true},
		{"test123", true},
		{"path/to/file", true},
		{"key=value", true},
		{"JSON-data", true},
		{"_underscore_", true},
		{"user@example", true},

		// Non-literal patterns (contain regex metacharacters)
		{".*", false},
		{"test.*", false},
		{"^start", false},
		{"end$", false},
		{"[abc]", false},
		{"a+b", false},
		{"a?b", false},
		{"a*b", false},
		{"(group)", false},
		{"a|b", false},
		{"test\\d", false},
		{"test{3}", false},
		{"test.log", false},
		{"192.168.1.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.expected, isLiteralPattern(tt.pattern))
		})
	}
}

func TestLiteralMatching(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		match   bool
	}{
		{"ERROR", "This is an ERROR message", true},
		{"ERROR", "This is an error message", false},
		{"WARNING", "This is an ERROR message", false},
		{"test", "testing 123", true},
		{"test", "Test 123", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			r, err := New(tt.pattern, Default)
			require.NoError(t, err)
			assert.True(t, r.IsLiteral())

			assert.Equal(t, tt.match, r.MatchString(tt.text))
		})
	}

	t.Run("InvertFlag", func(t *testing.T) {
		r, err := New("ERROR", Invert)
		require.NoError(t, err)
		assert.True(t, r.IsLiteral())

		assert.False(t, r.MatchString("This is an ERROR message"))
		assert.True(t, r.MatchString("This is a normal message"))
	})
}

func TestRegexCompatibility(t *testing.T) {
	patterns := []string{"ERROR", "WARNING", "user123", "test-data"}
	texts := []string{
		"This is an ERROR message",
		"WARNING: something happened",
		"User user123 logged in",
		"Processing test-data file",
		"No match here",
	}

	for _, pattern := range patterns {
		literalRegex, err := New(pattern, Default)
		require.NoError(t, err)
		regexRegex, err := New("(?:"+pattern+")", Default)
		require.NoError(t, err)

		assert.True(t, literalRegex.IsLiteral(), pattern)
		assert.False(t, regexRegex.IsLiteral(), pattern)

		for _, text := range texts {
			assert.Equal(t, regexRegex.MatchString(text), literalRegex.MatchString(text),
				"pattern %q text %q", pattern, text)
		}
	}
}

func TestRegexMatching(t *testing.T) {
	r, err := New("[a-z]+", Default)
	require.NoError(t, err)
	assert.False(t, r.IsLiteral())

	assert.True(t, r.MatchString("line one"))
	assert.False(t, r.MatchString("LINE TWO"))
	assert.True(t, r.MatchString("LINE two"))

	inv, err := New("[a-z]+", Invert)
	require.NoError(t, err)
	assert.False(t, inv.MatchString("line one"))
	assert.True(t, inv.MatchString("LINE TWO"))
}

func TestInvalidPattern(t *testing.T) {
	_, err := New("[a-z", Default)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPattern)

	var pe *errors.PatternError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "[a-z", pe.Pattern)
}

func TestNoop(t *testing.T) {
	for _, pattern := range []string{"", ".*"} {
		r, err := New(pattern, Default)
		require.NoError(t, err)
		assert.Equal(t, Noop, r.Flag())
		assert.True(t, r.MatchString(""))
		assert.True(t, r.MatchString("anything"))
	}

	// A single dot still needs a character to match.
	dot, err := New(".", Default)
	require.NoError(t, err)
	assert.False(t, dot.MatchString(""))
	assert.True(t, dot.MatchString("x"))

	// Inverting a match-everything pattern matches nothing.
	inv, err := New(".*", Invert)
	require.NoError(t, err)
	assert.False(t, inv.MatchString("anything"))
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "invert", Invert.String())
	assert.Equal(t, "noop", Noop.String())
	assert.Equal(t, "unknown", Flag(42).String())
}
