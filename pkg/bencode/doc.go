// Package bencode implements decoding of Bencoded data, the serialization
// format used by BitTorrent metadata.
//
// Bencode is a self-delimiting binary format with four value types:
//
//	String:     <length>:<payload>       "4:spam"
//	Integer:    i<digits>e               "i42e", "i-7e"
//	List:       l<values>e               "l4:spami42ee"
//	Dictionary: d<key/value pairs>e      "d3:cow3:mooe"
//
// String lengths are ASCII decimal. Integers may not have leading zeros
// (the literal zero is the single digit 0) and negative zero does not
// exist. Dictionary keys are always strings.
//
// # Basic Usage
//
// Decoding from a byte slice:
//
//	v, err := bencode.Unmarshal(data)
//
// Decoding from a stream:
//
//	dec := bencode.NewDecoder(bufio.NewReader(f))
//	v, err := dec.Decode()
//
// A decoded value is one of ByteString, Integer, List, or Dictionary;
// consumers dispatch with a type switch:
//
//	switch v := v.(type) {
//	case bencode.ByteString:
//		fmt.Printf("%d bytes\n", len(v))
//	case bencode.Integer:
//		fmt.Println(int64(v))
//	case bencode.List:
//		fmt.Printf("%d elements\n", len(v))
//	case bencode.Dictionary:
//		fmt.Printf("%d entries\n", len(v))
//	}
//
// # Design Principles
//
//   - No internal buffering: the Decoder reads from an io.ByteReader; users
//     control buffering by wrapping streams in bufio.Reader as needed
//   - Single pass: a value tree is built bottom-up during one decode call
//     and shares no memory with the input stream
//   - Strict lexical rules: leading zeros, negative zero, and stray bytes
//     are errors, never silently accepted
//
// # Dictionary Order
//
// Bencode's canonical form requires dictionary keys in sorted order. This
// decoder neither enforces nor preserves key order: a Dictionary is a plain
// Go map and iterates in undefined order. Inputs with unsorted keys decode
// without error. Duplicate keys keep the last value seen.
//
// # Limits
//
// The MaxStringLength option (default 64MB) bounds a single string payload,
// so a malicious length field fails deterministically with ErrTooLarge
// instead of attempting a huge allocation. The MaxDepth option bounds
// nesting; decoding recurses once per nesting level, and the default (no
// limit) matches the format itself, which imposes none.
//
// # Encoding
//
// This package only decodes. Serializing a Value back to Bencode is out of
// scope.
package bencode
