package bencode

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidFormat indicates malformed Bencode. Every format error in
	// this package unwraps to it.
	ErrInvalidFormat = errors.New("bencode: invalid format")

	// ErrTooLarge indicates a string length field exceeds the configured
	// maximum.
	ErrTooLarge = errors.New("bencode: string length exceeds maximum")

	// ErrTooDeep indicates nesting beyond the configured maximum depth.
	ErrTooDeep = errors.New("bencode: nesting exceeds maximum depth")
)

// UnknownSymbolError reports a byte that is not a recognized type marker at
// a position where one was expected. An end marker outside any list or
// dictionary is reported the same way, with Symbol 'e'.
type UnknownSymbolError struct {
	Symbol byte // the offending byte
	Offset int  // byte position in the stream
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("bencode: unknown type symbol %q at offset %d", e.Symbol, e.Offset)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrInvalidFormat }

// LeadingZeroError reports an integer whose first digit is 0 but whose
// value is not exactly zero, such as "i03e".
type LeadingZeroError struct {
	Offset int
}

func (e *LeadingZeroError) Error() string {
	return fmt.Sprintf("bencode: leading zero in integer at offset %d", e.Offset)
}

func (e *LeadingZeroError) Unwrap() error { return ErrInvalidFormat }

// NegativeZeroError reports an integer beginning "-0", which the format
// forbids.
type NegativeZeroError struct {
	Offset int
}

func (e *NegativeZeroError) Error() string {
	return fmt.Sprintf("bencode: negative zero integer at offset %d", e.Offset)
}

func (e *NegativeZeroError) Unwrap() error { return ErrInvalidFormat }

// InvalidNumberError reports a byte that appeared where a decimal digit or
// terminator was expected, while reading a string's length prefix or an
// integer's digits.
type InvalidNumberError struct {
	Symbol byte
	Offset int
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("bencode: %q is not a valid number character at offset %d", e.Symbol, e.Offset)
}

func (e *InvalidNumberError) Unwrap() error { return ErrInvalidFormat }

// IntegerRangeError reports an integer whose digits do not fit in a signed
// 64-bit value.
type IntegerRangeError struct {
	Digits string // the full digit text, including any sign
	Offset int    // position of the first digit
}

func (e *IntegerRangeError) Error() string {
	return fmt.Sprintf("bencode: integer %s at offset %d overflows int64", e.Digits, e.Offset)
}

func (e *IntegerRangeError) Unwrap() error { return ErrInvalidFormat }

// KeyTypeError reports a dictionary key position that decoded to something
// other than a string. Value carries what was found.
type KeyTypeError struct {
	Value  Value
	Offset int
}

func (e *KeyTypeError) Error() string {
	return fmt.Sprintf("bencode: dictionary key at offset %d is %s, not a string", e.Offset, kindName(e.Value))
}

func (e *KeyTypeError) Unwrap() error { return ErrInvalidFormat }

func kindName(v Value) string {
	switch v.(type) {
	case ByteString:
		return "a string"
	case Integer:
		return "an integer"
	case List:
		return "a list"
	case Dictionary:
		return "a dictionary"
	default:
		return fmt.Sprintf("%T", v)
	}
}
