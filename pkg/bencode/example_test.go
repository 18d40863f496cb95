package bencode_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bencode-tools/bencoding/pkg/bencode"
)

func ExampleUnmarshal() {
	v, err := bencode.Unmarshal([]byte("d3:cow3:moo4:spami7ee"))
	if err != nil {
		panic(err)
	}

	d := v.(bencode.Dictionary)
	fmt.Println(string(d["cow"].(bencode.ByteString)))
	fmt.Println(d["spam"].(bencode.Integer))
	// Output:
	// moo
	// 7
}

func ExampleDecoder_Decode() {
	data := []byte("5:hello5:world")
	dec := bencode.NewDecoder(bytes.NewReader(data))

	for {
		v, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Println(string(v.(bencode.ByteString)))
	}
	// Output:
	// hello
	// world
}

func ExampleUnmarshal_list() {
	v, err := bencode.Unmarshal([]byte("l9:bencoding2:is3:fune"))
	if err != nil {
		panic(err)
	}

	for _, el := range v.(bencode.List) {
		fmt.Println(string(el.(bencode.ByteString)))
	}
	// Output:
	// bencoding
	// is
	// fun
}
