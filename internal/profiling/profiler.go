// Package profiling writes pprof CPU and heap profiles of a finders run.
// Failures to write a profile are logged and never abort the run.
package profiling

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/ydkadri/finders/internal/io/dlog"
)

const timestampLayout = "20060102_150405"

// Profiler manages CPU and heap profiling for one command run.
type Profiler struct {
	cpuProfile  *os.File
	memProfile  string
	profileDir  string
	commandName string
	enabled     bool
}

// Config holds the profiling configuration.
type Config struct {
	CPUProfile bool
	MemProfile bool
	// ProfileDir is created when missing. Defaults to "profiles".
	ProfileDir string
	// CommandName prefixes the profile file names.
	CommandName string
}

// NewProfiler starts profiling as configured. The returned Profiler is
// always usable, a disabled one does nothing.
func NewProfiler(cfg Config) *Profiler {
	if !cfg.CPUProfile && !cfg.MemProfile {
		return &Profiler{}
	}

	p := &Profiler{
		profileDir:  cfg.ProfileDir,
		commandName: cfg.CommandName,
		enabled:     true,
	}
	if p.profileDir == "" {
		p.profileDir = "profiles"
	}
	if err := os.MkdirAll(p.profileDir, 0755); err != nil {
		dlog.Common.Warn("Unable to create profile directory", p.profileDir, err)
		p.enabled = false
		return p
	}

	if cfg.CPUProfile {
		p.startCPUProfile()
	}
	if cfg.MemProfile {
		p.memProfile = p.profilePath("mem")
	}
	return p
}

func (p *Profiler) profilePath(kind string) string {
	name := fmt.Sprintf("%s_%s_%s.prof", p.commandName, kind, time.Now().Format(timestampLayout))
	return filepath.Join(p.profileDir, name)
}

func (p *Profiler) startCPUProfile() {
	path := p.profilePath("cpu")
	f, err := os.Create(path)
	if err != nil {
		dlog.Common.Warn("Unable to create CPU profile", path, err)
		return
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		dlog.Common.Warn("Unable to start CPU profile", path, err)
		f.Close()
		return
	}
	p.cpuProfile = f
	dlog.Common.Debug("Started CPU profiling", path)
}

// Stop ends CPU profiling and writes the heap profile.
func (p *Profiler) Stop() {
	if !p.enabled {
		return
	}
	if p.cpuProfile != nil {
		pprof.StopCPUProfile()
		p.cpuProfile.Close()
		dlog.Common.Debug("Wrote CPU profile", p.cpuProfile.Name())
		p.cpuProfile = nil
	}
	if p.memProfile != "" {
		p.writeMemProfile()
	}
}

func (p *Profiler) writeMemProfile() {
	f, err := os.Create(p.memProfile)
	if err != nil {
		dlog.Common.Warn("Unable to create heap profile", p.memProfile, err)
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		dlog.Common.Warn("Unable to write heap profile", p.memProfile, err)
		return
	}
	dlog.Common.Debug("Wrote heap profile", p.memProfile)
}

// LogMetrics logs the current memory and goroutine figures at debug level.
func (p *Profiler) LogMetrics(label string) {
	if !p.enabled {
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	dlog.Common.Debug("Profile metrics", label,
		fmt.Sprintf("alloc=%.2fMB", float64(m.Alloc)/1024/1024),
		fmt.Sprintf("total_alloc=%.2fMB", float64(m.TotalAlloc)/1024/1024),
		fmt.Sprintf("sys=%.2fMB", float64(m.Sys)/1024/1024),
		fmt.Sprintf("num_gc=%d", m.NumGC),
		fmt.Sprintf("goroutines=%d", runtime.NumGoroutine()))
}
