// Package version provides version information for finders.
package version

import "fmt"

const (
	// Name of the tool.
	Name string = "finders"
	// Version of finders.
	Version string = "1.1.0"
	// Additional information for finders
	Additional string = "Find it, grep it"
)

// String returns a plain text representation of the version information.
func String() string {
	return fmt.Sprintf("%s %v %s", Name, Version, Additional)
}
