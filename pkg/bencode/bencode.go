package bencode

import (
	"bytes"
	"io"
)

// Decoder reads Bencode values from an io.ByteReader.
//
// io.ByteReader is implemented by *bufio.Reader and *bytes.Reader.
// For files and network streams, wrap the io.Reader in a bufio.Reader:
//
//	dec := bencode.NewDecoder(bufio.NewReader(f))
//
// The decoder reads one byte at a time with no lookahead or seeking; one
// byte of dispatch is all the format requires. A Decoder must not be used
// from multiple goroutines concurrently.
type Decoder struct {
	r               io.ByteReader
	maxStringLength int
	maxDepth        int
	offset          int // Track position for error reporting
}

// NewDecoder creates a Bencode decoder reading from r.
//
// Optional configuration can be provided via Option functions:
//
//	dec := bencode.NewDecoder(bufio.NewReader(f), bencode.MaxDepth(64))
func NewDecoder(r io.ByteReader, opts ...Option) *Decoder {
	cfg := &config{
		maxStringLength: defaultMaxStringLength,
		maxDepth:        0, // 0 means unlimited
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Decoder{
		r:               r,
		maxStringLength: cfg.maxStringLength,
		maxDepth:        cfg.maxDepth,
	}
}

// Unmarshal decodes the first Bencode value in data. Bytes after that
// value are not examined; use a Decoder to read a stream of values.
func Unmarshal(data []byte, opts ...Option) (Value, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}
