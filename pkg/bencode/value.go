package bencode

// Value is a decoded Bencode value.
//
// The set of implementations is closed: ByteString, Integer, List, and
// Dictionary are the only four, one per Bencode type.
type Value interface {
	// value marks the closed set. Only types in this package implement it.
	value()
}

// ByteString is a Bencode string: raw bytes, not guaranteed to be valid
// text. Torrent metadata routinely stores binary data (piece hashes) in
// strings.
type ByteString []byte

// Integer is a Bencode integer, a signed 64-bit value.
type Integer int64

// List is an ordered sequence of values. Order is preserved from the input.
type List []Value

// Dictionary maps keys to values. A key holds the raw bytes of the decoded
// key string; it need not be valid text. Iteration order is undefined and
// the input's key order is not preserved (see the package documentation).
type Dictionary map[string]Value

func (ByteString) value() {}
func (Integer) value()    {}
func (List) value()       {}
func (Dictionary) value() {}
