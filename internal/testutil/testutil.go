// Package testutil holds fixtures shared by the finders tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"
)

// InvalidUTF8 is a byte sequence that cannot be decoded as UTF-8.
const InvalidUTF8 = "\xff\xfe\xfd"

// TempFile creates a temporary file with the given content and returns its path.
// The file is automatically cleaned up when the test ends.
func TempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(TempDir(t), "finders-test.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// TempDir creates a temporary directory and returns its path.
// The directory is automatically cleaned up when the test ends.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpdir, err := os.MkdirTemp("", "finders-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(tmpdir)
	})

	return tmpdir
}

// CreateFileTree creates a directory structure with files based on the provided map.
// Keys are relative file paths, values are file contents. Contents may hold
// arbitrary bytes.
func CreateFileTree(t *testing.T, baseDir string, files map[string]string) {
	t.Helper()

	for path, content := range files {
		fullPath := filepath.Join(baseDir, path)
		dir := filepath.Dir(fullPath)

		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}

		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file %s: %v", fullPath, err)
		}
	}
}

// WriteZstd writes content zstd compressed to path.
func WriteZstd(t *testing.T, path, content string) {
	t.Helper()

	compressed, err := zstd.Compress(nil, []byte(content))
	if err != nil {
		t.Fatalf("failed to compress %s: %v", path, err)
	}
	if err := os.WriteFile(path, compressed, 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// WriteGzip writes content gzip compressed to path.
func WriteGzip(t *testing.T, path, content string) {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("failed to compress %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to compress %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// GenerateLogLines generates realistic log lines for testing.
func GenerateLogLines(count int) []string {
	levels := []string{"INFO", "WARN", "ERROR", "DEBUG"}
	messages := []string{
		"Server started successfully",
		"Connection established",
		"Processing request",
		"Request completed",
		"Connection closed",
		"Error processing file",
		"Timeout occurred",
		"Retrying operation",
	}

	lines := make([]string, count)
	for i := 0; i < count; i++ {
		level := levels[i%len(levels)]
		msg := messages[i%len(messages)]
		lines[i] = fmt.Sprintf("2024-01-15 10:00:%02d [%s] %s", i%60, level, msg)
	}

	return lines
}
