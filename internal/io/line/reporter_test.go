package line

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydkadri/finders/internal/errors"
)

func TestReporterLayout(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	require.NoError(t, r.ProcessMatch("a.txt", 1, "line one"))
	require.NoError(t, r.ProcessMatch("dir/b.txt", 12345, "x"))
	require.NoError(t, r.Flush())

	expected := "   1: a.txt" + strings.Repeat(" ", 51) + " line one\n" +
		"12345: dir/b.txt" + strings.Repeat(" ", 47) + " x\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, 2, r.Matches())
}

func TestReporterLongPathIsNotTruncated(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	path := strings.Repeat("p", 70)

	require.NoError(t, r.ProcessMatch(path, 3, "hit"))
	require.NoError(t, r.Flush())

	assert.Equal(t, "   3: "+path+" hit\n", buf.String())
}

func TestReporterColored(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)

	require.NoError(t, r.ProcessMatch("a.txt", 7, "seven"))
	require.NoError(t, r.Flush())

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "   7")
	assert.True(t, strings.HasSuffix(out, "a.txt"+strings.Repeat(" ", 51)+" seven\n"))
}

func TestReporterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	require.NoError(t, r.ProcessMatch("a.txt", 1, "one"))
	assert.Empty(t, buf.String())

	require.NoError(t, r.Flush())
	assert.NotEmpty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestReporterWriteFailure(t *testing.T) {
	r := NewReporter(failingWriter{}, false)

	require.NoError(t, r.ProcessMatch("a.txt", 1, "one"))
	assert.ErrorIs(t, r.Flush(), errors.ErrWriteFailed)
}

func TestListPaths(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ListPaths(&buf, []string{"./a.txt", `dir/with "quote".txt`, "tab\there"}))

	assert.Equal(t, "\"./a.txt\"\n\"dir/with \\\"quote\\\".txt\"\n\"tab\\there\"\n", buf.String())
}

func TestListPathsEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ListPaths(&buf, nil))
	assert.Empty(t, buf.String())
}
