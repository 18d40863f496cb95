package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bencode-tools/bencoding/pkg/bencode"
)

// render formats a decoded value as an indented tree. Dictionary keys are
// sorted so output is stable; the decoded Dictionary itself carries no
// order.
func render(v bencode.Value) string {
	var sb strings.Builder
	renderValue(&sb, v, 0)
	return sb.String()
}

func renderValue(sb *strings.Builder, v bencode.Value, indent int) {
	switch v := v.(type) {
	case bencode.ByteString:
		if utf8.Valid(v) {
			fmt.Fprintf(sb, "String (%d): '%s'", len(v), v)
		} else {
			fmt.Fprintf(sb, "String (%d): [redacted]", len(v))
		}
	case bencode.Integer:
		fmt.Fprintf(sb, "Integer %d", v)
	case bencode.List:
		fmt.Fprintf(sb, "List (%d):", len(v))
		for _, el := range v {
			fmt.Fprintf(sb, "\n%s", strings.Repeat(" ", indent+2))
			renderValue(sb, el, indent+2)
		}
	case bencode.Dictionary:
		fmt.Fprintf(sb, "Dictionary (%d):", len(v))
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(sb, "\n%sKey %s: ", strings.Repeat(" ", indent+2), renderKey(k))
			renderValue(sb, v[k], indent+2)
		}
	}
}

// renderKey quotes a key when it is valid text. Keys are raw bytes like any
// other Bencode string, so binary keys get the same treatment as binary
// payloads.
func renderKey(k string) string {
	if utf8.ValidString(k) {
		return fmt.Sprintf("'%s'", k)
	}
	return fmt.Sprintf("[redacted] (%d)", len(k))
}
