package jsonstream

import (
	"io"
	"iter"
)

// BufferSequence is the buffer-sequence abstraction the driver feeds
// from: an iterable of opaque contiguous byte ranges, visited strictly
// in order. The parser makes no assumption about the sequence beyond
// sequential iteration, so any source that can produce one — a slice
// of slices, chunks read off a socket, a gzip stream — can drive a
// Parser through WriteSequence.
type BufferSequence = iter.Seq[[]byte]

// Buffers adapts a fixed list of byte slices into a BufferSequence, a
// convenience for feeding a document that is already split into known
// chunks (for example, in tests exercising the split-invariance
// property).
func Buffers(bufs ...[]byte) BufferSequence {
	return func(yield func([]byte) bool) {
		for _, b := range bufs {
			if !yield(b) {
				return
			}
		}
	}
}

// ReaderSequence adapts an io.Reader into a BufferSequence, pulling
// chunkSize bytes at a time (a chunkSize <= 0 defaults to 4096). This
// is the adapter the CLI uses to drive the parser over a file or
// stdin in caller-chosen chunk sizes, making the "split at any byte
// boundary" property observable from outside the package: the
// resulting document is parsed identically regardless of chunkSize.
func ReaderSequence(r io.Reader, chunkSize int) BufferSequence {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	return func(yield func([]byte) bool) {
		buf := make([]byte, chunkSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if !yield(buf[:n]) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}
