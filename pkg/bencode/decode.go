package bencode

import (
	"fmt"
	"io"
	"strconv"
)

// Decode reads the next Bencode value from the stream.
//
// Returns io.EOF when the stream ends before the first byte of a value,
// which lets callers read a stream of top-level values in a loop. A stream
// that ends anywhere inside a value is an error wrapping
// io.ErrUnexpectedEOF.
func (d *Decoder) Decode() (Value, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("bencode: read at offset %d: %w", d.offset, err)
	}
	d.offset++

	v, end, err := d.decodeFrom(b, 0)
	if err != nil {
		return nil, err
	}
	if end {
		// An end marker is only meaningful inside a list or dictionary.
		return nil, &UnknownSymbolError{Symbol: 'e', Offset: d.offset - 1}
	}
	return v, nil
}

// decodeValue reads one value, or the end marker terminating the enclosing
// aggregate. The end flag is the only representation of that marker; it
// never escapes past decodeList and decodeDictionary.
func (d *Decoder) decodeValue(depth int) (v Value, end bool, err error) {
	b, err := d.readByte()
	if err != nil {
		return nil, false, err
	}
	return d.decodeFrom(b, depth)
}

// decodeFrom dispatches on the already-consumed marker byte b.
func (d *Decoder) decodeFrom(b byte, depth int) (Value, bool, error) {
	switch {
	case b >= '0' && b <= '9':
		v, err := d.decodeString(b)
		return v, false, err
	case b == 'i':
		v, err := d.decodeInteger()
		return v, false, err
	case b == 'l':
		v, err := d.decodeList(depth)
		return v, false, err
	case b == 'd':
		v, err := d.decodeDictionary(depth)
		return v, false, err
	case b == 'e':
		return nil, true, nil
	default:
		return nil, false, &UnknownSymbolError{Symbol: b, Offset: d.offset - 1}
	}
}

// decodeString reads the remainder of a length-prefixed string. first is
// the length's first digit, already consumed by the dispatcher.
//
// Unlike integers, length fields have no leading-zero restriction: "0:" is
// the empty string and "03:foo" decodes like "3:foo".
func (d *Decoder) decodeString(first byte) (ByteString, error) {
	// The cap applies to the seed digit too: a single-digit length field
	// never enters the accumulation loop.
	length := int(first - '0')
	if length > d.maxStringLength {
		return nil, ErrTooLarge
	}
	for {
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if b == ':' {
			break
		}
		if b < '0' || b > '9' {
			return nil, &InvalidNumberError{Symbol: b, Offset: d.offset - 1}
		}
		length = length*10 + int(b-'0')

		// Checking every digit keeps pathological length fields from
		// overflowing the accumulator.
		if length > d.maxStringLength {
			return nil, ErrTooLarge
		}
	}
	return d.readExact(length)
}

// decodeInteger reads an integer body after the 'i' marker, up to and
// including the 'e' terminator.
//
// The first two characters are read before anything else: together they
// resolve the three shapes that need no digit loop (exact zero, the
// negative-zero violation, and single-digit integers).
func (d *Decoder) decodeInteger() (Integer, error) {
	first, err := d.readByte()
	if err != nil {
		return 0, err
	}
	second, err := d.readByte()
	if err != nil {
		return 0, err
	}

	switch {
	case first == '0':
		// Zero is the single digit 0; anything else is a leading zero.
		if second != 'e' {
			return 0, &LeadingZeroError{Offset: d.offset - 2}
		}
		return 0, nil
	case first == '-':
		if second == '0' {
			return 0, &NegativeZeroError{Offset: d.offset - 2}
		}
		if second < '0' || second > '9' {
			return 0, &InvalidNumberError{Symbol: second, Offset: d.offset - 1}
		}
	case first < '1' || first > '9':
		return 0, &InvalidNumberError{Symbol: first, Offset: d.offset - 2}
	case second == 'e':
		return Integer(first - '0'), nil
	default:
		if second < '0' || second > '9' {
			return 0, &InvalidNumberError{Symbol: second, Offset: d.offset - 1}
		}
	}

	digits := []byte{first, second}
	for {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if b == 'e' {
			break
		}
		if b < '0' || b > '9' {
			return 0, &InvalidNumberError{Symbol: b, Offset: d.offset - 1}
		}
		digits = append(digits, b)
	}

	// Every byte in digits was validated above, so the only possible parse
	// failure is a value outside int64.
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, &IntegerRangeError{Digits: string(digits), Offset: d.offset - len(digits) - 1}
	}
	return Integer(n), nil
}

// decodeList reads list elements after the 'l' marker until the end marker,
// which it consumes. An empty list ("le") is valid.
func (d *Decoder) decodeList(depth int) (List, error) {
	if d.maxDepth > 0 && depth >= d.maxDepth {
		return nil, ErrTooDeep
	}

	list := List{}
	for {
		v, end, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if end {
			return list, nil
		}
		list = append(list, v)
	}
}

// decodeDictionary reads key/value pairs after the 'd' marker until the end
// marker, which it consumes. Keys must be strings; key order is not checked
// and not preserved. A duplicate key overwrites the earlier value.
func (d *Decoder) decodeDictionary(depth int) (Dictionary, error) {
	if d.maxDepth > 0 && depth >= d.maxDepth {
		return nil, ErrTooDeep
	}

	dict := Dictionary{}
	for {
		keyOffset := d.offset
		key, end, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if end {
			return dict, nil
		}
		ks, ok := key.(ByteString)
		if !ok {
			return nil, &KeyTypeError{Value: key, Offset: keyOffset}
		}

		v, end, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if end {
			// A key with no value: the end marker is never valid in value
			// position.
			return nil, &UnknownSymbolError{Symbol: 'e', Offset: d.offset - 1}
		}

		dict[string(ks)] = v
	}
}

// readExact reads exactly n bytes from the stream.
func (d *Decoder) readExact(n int) (ByteString, error) {
	buf := make(ByteString, n)
	for i := range buf {
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// readByte reads a single byte and tracks position for error reporting.
// The stream ending here is always premature: the caller is mid-value.
func (d *Decoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("bencode: read at offset %d: %w", d.offset, err)
	}
	d.offset++
	return b, nil
}
