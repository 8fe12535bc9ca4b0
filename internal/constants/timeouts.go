package constants

import "time"

const (
	// InterruptTimeout is how long a second Ctrl+C is awaited before the
	// first one only counts as a stats request again.
	InterruptTimeout = 3 * time.Second

	// StatsCheckInterval is the number of lines read between checks for
	// cancellation and stats requests.
	StatsCheckInterval = 4096
)
