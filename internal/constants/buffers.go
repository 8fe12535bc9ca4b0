package constants

// Buffer size constants in bytes
const (
	// ReadBufferSize is the capacity of the buffered reader wrapped around
	// every searched file (8KB). Peak memory per file is bounded by this plus
	// the longest line.
	ReadBufferSize = 8192

	// LineBufferInitialCapacity is the initial capacity for pooled line buffers (4KB)
	LineBufferInitialCapacity = 4096

	// MaxPooledLineBuffer is the largest line buffer returned to the pool. Bigger
	// buffers are dropped so a single huge line does not pin memory.
	MaxPooledLineBuffer = 64 * 1024
)
