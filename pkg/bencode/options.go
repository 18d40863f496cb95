package bencode

const (
	// Default maximum string payload length (64MB). Torrent metadata keeps
	// all piece hashes in one string, so the default is generous.
	defaultMaxStringLength = 64 * 1024 * 1024
)

// config holds decoder configuration.
type config struct {
	maxStringLength int
	maxDepth        int
}

// Option configures a Decoder.
type Option func(*config)

// MaxStringLength sets the maximum allowed string payload length in bytes.
// A length field exceeding this value returns ErrTooLarge before any
// payload is read or allocated.
//
// This prevents memory exhaustion attacks from malicious length fields.
//
// Default: 64MB.
func MaxStringLength(n int) Option {
	return func(c *config) {
		c.maxStringLength = n
	}
}

// MaxDepth sets the maximum allowed nesting of lists and dictionaries.
// Deeper input returns ErrTooDeep.
//
// Decoding recurses once per nesting level, so a limit guards the call
// stack against adversarially deep input. Zero means no limit, matching
// the format itself, which imposes none.
//
// Default: 0 (no limit).
func MaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}
