// Package fs streams files line by line through a search strategy. Each
// file is read through a fixed size buffer, so memory use does not grow with
// file size, and failures are classified per file: decoding problems are
// skipped, everything else ends the run.
package fs

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/DataDog/zstd"

	"github.com/ydkadri/finders/internal/errors"
)

// readFile is one opened input. Compressed inputs are decompressed on the fly.
type readFile struct {
	filePath string
	fd       *os.File
	src      *sourceReader
	closers  []io.Closer
	reader   *bufio.Reader
}

// sourceError marks a failure of the underlying file, as opposed to a
// failure decoding its content.
type sourceError struct {
	err error
}

func (e *sourceError) Error() string { return e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

// sourceReader tags errors of the file and remembers the first one, so it is
// still known after a decompressor flattened it into a plain message.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		if s.err == nil {
			s.err = err
		}
		err = &sourceError{err}
	}
	return n, err
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// openFile opens filePath for reading. Open failures are returned as
// *errors.FileOpenError. With decompress set, gzip and zstd streams are
// recognised by their magic bytes; anything else is read as it is. A broken
// gzip header is reported as errors.ErrInvalidEncoding.
func openFile(filePath string, decompress bool, bufSize int) (*readFile, error) {
	fd, err := os.Open(filePath)
	if err != nil {
		return nil, &errors.FileOpenError{Path: filePath, Err: err}
	}

	f := &readFile{filePath: filePath, fd: fd, src: &sourceReader{r: fd}}
	raw := bufio.NewReaderSize(f.src, bufSize)
	f.reader = raw
	if !decompress {
		return f, nil
	}

	magic, err := raw.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		fd.Close()
		return nil, f.classify(err)
	}
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(raw)
		if err != nil {
			fd.Close()
			return nil, f.classify(err)
		}
		f.closers = append(f.closers, gz)
		f.reader = bufio.NewReaderSize(gz, bufSize)
	case bytes.HasPrefix(magic, zstdMagic):
		zr := zstd.NewReader(raw)
		f.closers = append(f.closers, zr)
		f.reader = bufio.NewReaderSize(zr, bufSize)
	}
	return f, nil
}

// Close releases the decompressors and the file descriptor.
func (f *readFile) Close() error {
	for i := len(f.closers) - 1; i >= 0; i-- {
		f.closers[i].Close()
	}
	return f.fd.Close()
}

// FilePath returns the path the file was opened with.
func (f *readFile) FilePath() string {
	return f.filePath
}

// classify maps a read error to either a fatal read failure of the file
// itself or a recoverable decoding failure of its content.
func (f *readFile) classify(err error) error {
	var src *sourceError
	if errors.As(err, &src) {
		return fmt.Errorf("%w: %w", errors.ErrReadFailed, src.err)
	}
	if f.src.err != nil {
		return fmt.Errorf("%w: %w", errors.ErrReadFailed, f.src.err)
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidEncoding, err)
}
