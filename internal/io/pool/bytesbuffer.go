package pool

import (
	"bytes"
	"sync"

	"github.com/ydkadri/finders/internal/constants"
)

// BytesBuffer holds line buffers reused across files, so reading many small
// files does not allocate a fresh buffer per line.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		b.Grow(constants.LineBufferInitialCapacity)
		return &b
	},
}

// GetBytesBuffer returns an empty buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	return BytesBuffer.Get().(*bytes.Buffer)
}

// RecycleBytesBuffer recycles the buffer again. Oversized buffers are
// dropped instead of pooled.
func RecycleBytesBuffer(b *bytes.Buffer) {
	if b.Cap() > constants.MaxPooledLineBuffer {
		return
	}
	b.Reset()
	BytesBuffer.Put(b)
}
