package integrationtests

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ydkadri/finders/internal/config"
)

// skipIfNotIntegrationTest skips the test if integration tests are not enabled
func skipIfNotIntegrationTest(t *testing.T) {
	t.Helper()
	if !config.Env("FINDERS_INTEGRATION_TEST_RUN_MODE") {
		t.Skip("Skipping integration test")
	}
}

// createTestContextWithTimeout creates a context with a 2-minute timeout that will be cleaned up automatically
func createTestContextWithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(func() {
		cancel()
	})
	return ctx, cancel
}

// writeTree creates files relative to a fresh temporary directory and
// returns the directory.
func writeTree(t *testing.T, files map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal("Failed to create directory:", err)
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatal("Failed to create test file:", err)
		}
	}
	return dir
}
