package main

import (
	"testing"

	"github.com/bencode-tools/bencoding/pkg/bencode"
	"github.com/stretchr/testify/require"
)

func TestRender_String(t *testing.T) {
	out := render(bencode.ByteString("spam"))
	require.Equal(t, "String (4): 'spam'", out)
}

func TestRender_BinaryString(t *testing.T) {
	out := render(bencode.ByteString{0xFF, 0xFE})
	require.Equal(t, "String (2): [redacted]", out)
}

func TestRender_Integer(t *testing.T) {
	require.Equal(t, "Integer 42", render(bencode.Integer(42)))
	require.Equal(t, "Integer -7", render(bencode.Integer(-7)))
}

func TestRender_EmptyAggregates(t *testing.T) {
	require.Equal(t, "List (0):", render(bencode.List{}))
	require.Equal(t, "Dictionary (0):", render(bencode.Dictionary{}))
}

func TestRender_List(t *testing.T) {
	v, err := bencode.Unmarshal([]byte("l9:bencoding2:is3:fune"))
	require.NoError(t, err)

	want := "List (3):\n" +
		"  String (9): 'bencoding'\n" +
		"  String (2): 'is'\n" +
		"  String (3): 'fun'"
	require.Equal(t, want, render(v))
}

func TestRender_Dictionary(t *testing.T) {
	v, err := bencode.Unmarshal([]byte("d4:spaml1:a1:bee"))
	require.NoError(t, err)

	want := "Dictionary (1):\n" +
		"  Key 'spam': List (2):\n" +
		"    String (1): 'a'\n" +
		"    String (1): 'b'"
	require.Equal(t, want, render(v))
}

func TestRender_KeysSorted(t *testing.T) {
	v, err := bencode.Unmarshal([]byte("d1:bi2e1:ai1ee"))
	require.NoError(t, err)

	want := "Dictionary (2):\n" +
		"  Key 'a': Integer 1\n" +
		"  Key 'b': Integer 2"
	require.Equal(t, want, render(v))
}

func TestRender_BinaryKey(t *testing.T) {
	v, err := bencode.Unmarshal([]byte("d2:\xFF\xFEi1ee"))
	require.NoError(t, err)

	want := "Dictionary (1):\n" +
		"  Key [redacted] (2): Integer 1"
	require.Equal(t, want, render(v))
}

func TestRender_TorrentShapedInput(t *testing.T) {
	input := "d8:announce30:http://tracker.example.com:80/4:infod6:lengthi1024e4:name8:file.txt12:piece lengthi256eee"
	v, err := bencode.Unmarshal([]byte(input))
	require.NoError(t, err)

	want := "Dictionary (2):\n" +
		"  Key 'announce': String (30): 'http://tracker.example.com:80/'\n" +
		"  Key 'info': Dictionary (3):\n" +
		"    Key 'length': Integer 1024\n" +
		"    Key 'name': String (8): 'file.txt'\n" +
		"    Key 'piece length': Integer 256"
	require.Equal(t, want, render(v))
}
