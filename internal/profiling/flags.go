package profiling

import "github.com/spf13/pflag"

// Flags holds the profiling command line flags.
type Flags struct {
	CPUProfile bool
	MemProfile bool
	// Profile enables both CPU and memory profiling.
	Profile    bool
	ProfileDir string
}

// AddFlags registers the profiling flags on fs.
func AddFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVar(&f.CPUProfile, "cpuprofile", false, "Write a CPU profile")
	fs.BoolVar(&f.MemProfile, "memprofile", false, "Write a heap profile")
	fs.BoolVar(&f.Profile, "profile", false, "Write CPU and heap profiles")
	fs.StringVar(&f.ProfileDir, "profiledir", "profiles", "Directory to store profiles")
}

// ToConfig converts flags to a profiler config.
func (f *Flags) ToConfig(commandName string) Config {
	return Config{
		CPUProfile:  f.CPUProfile || f.Profile,
		MemProfile:  f.MemProfile || f.Profile,
		ProfileDir:  f.ProfileDir,
		CommandName: commandName,
	}
}

// Enabled reports whether any profiling was requested.
func (f *Flags) Enabled() bool {
	return f.CPUProfile || f.MemProfile || f.Profile
}
