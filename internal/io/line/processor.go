package line

// Processor receives the matches found by the streaming runner.
type Processor interface {
	// ProcessMatch handles one matching line of the file at path.
	// Returns error if processing should stop.
	ProcessMatch(path string, rowNum int, text string) error

	// Flush ensures any buffered data is written out.
	// Called after every file and when the run completes.
	Flush() error
}
