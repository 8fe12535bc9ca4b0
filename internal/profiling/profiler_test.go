package profiling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func globProfiles(t *testing.T, dir, pattern string) []string {
	t.Helper()

	profiles, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)
	return profiles
}

func TestDisabledProfiler(t *testing.T) {
	dir := t.TempDir()

	p := NewProfiler(Config{ProfileDir: dir, CommandName: "test"})

	assert.False(t, p.enabled)
	p.LogMetrics("test")
	p.Stop()
	assert.Empty(t, globProfiles(t, dir, "*.prof"))
}

func TestCPUProfile(t *testing.T) {
	dir := t.TempDir()

	p := NewProfiler(Config{CPUProfile: true, ProfileDir: dir, CommandName: "testcpu"})
	require.True(t, p.enabled)
	doWork(100)
	p.Stop()

	profiles := globProfiles(t, dir, "testcpu_cpu_*.prof")
	require.Len(t, profiles, 1)
	info, err := os.Stat(profiles[0])
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	// A second Stop is harmless.
	p.Stop()
}

func TestMemProfile(t *testing.T) {
	dir := t.TempDir()

	p := NewProfiler(Config{MemProfile: true, ProfileDir: dir, CommandName: "testmem"})
	require.True(t, p.enabled)
	p.Stop()

	assert.Len(t, globProfiles(t, dir, "testmem_mem_*.prof"), 1)
	assert.Empty(t, globProfiles(t, dir, "testmem_cpu_*.prof"))
}

func TestProfileDirIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "profiles")

	p := NewProfiler(Config{MemProfile: true, ProfileDir: dir, CommandName: "nested"})
	p.Stop()

	assert.DirExists(t, dir)
	assert.Len(t, globProfiles(t, dir, "nested_mem_*.prof"), 1)
}

func TestFlags(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs, &f)

	assert.False(t, f.Enabled())
	assert.Equal(t, "profiles", f.ProfileDir)

	require.NoError(t, fs.Parse([]string{"--profile", "--profiledir", "out"}))

	assert.True(t, f.Enabled())
	cfg := f.ToConfig("finders")
	assert.Equal(t, Config{CPUProfile: true, MemProfile: true, ProfileDir: "out", CommandName: "finders"}, cfg)
}

func doWork(n int) {
	var b strings.Builder
	for i := 0; i < n*1000; i++ {
		b.WriteString("x")
		if b.Len() > 4096 {
			b.Reset()
		}
	}
}
