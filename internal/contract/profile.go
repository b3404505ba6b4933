package contract

import "strings"

// ProfileConfig holds profiling configuration.
type ProfileConfig struct {
	Enabled bool   // Whether profiling is enabled
	Prefix  string // File prefix for profile output files
}

// ProcessProfilingConfig parses the profiling flag value. A non-empty prefix
// enables profiling.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	profile.Prefix = strings.TrimSpace(prefix)
	profile.Enabled = profile.Prefix != ""
	return nil
}
