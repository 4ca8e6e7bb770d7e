package sml

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func addHexSeeds(f *testing.F, seeds ...string) {
	for _, s := range seeds {
		data, err := hex.DecodeString(s)
		if err != nil {
			f.Fatalf("invalid seed %q: %v", s, err)
		}
		f.Add(data)
	}
}

// reencode parses data with parse and encodes the result with encode. It reports
// ok=false if parsing fails.
func reencode[T any](data []byte, parse func(*Buffer) (T, error), encode func(*Buffer, T)) ([]byte, bool) {
	rd := NewReadBuffer(data)
	defer rd.Free()

	v, err := parse(rd)
	if err != nil {
		return nil, false
	}

	wr := NewBuffer(len(data))
	defer wr.Free()
	encode(wr, v)

	return bytes.Clone(wr.Bytes()), true
}

// FuzzParseTree fuzzes the parameter tree decoder.
//
// ParseTree must never panic, and once a tree has been parsed and
// encoded, parsing and encoding it again yields the same bytes.
func FuzzParseTree(f *testing.F) {
	addHexSeeds(f,
		"730648616C6C6F0101",
		"730648616C6C6F0171730648616C6C6F0101",
		"730648616C6C6F0171720648616C6C6F0101",
		"730172620472620265000000FF01",
		"73017262037101",
		"7F",
		"",
	)

	deep := []byte{}
	for range 70 {
		deep = append(deep, 0x73, 0x01, 0x01, 0x71)
	}
	f.Add(deep)

	encodeTree := func(buf *Buffer, t *Tree) { t.Encode(buf) }
	f.Fuzz(func(t *testing.T, data []byte) {
		first, ok := reencode(data, ParseTree, encodeTree)
		if !ok {
			return
		}

		second, ok := reencode(first, ParseTree, encodeTree)
		if !ok {
			t.Fatalf("re-encoded tree does not parse: %X", first)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("tree encoding is not stable: %X != %X", first, second)
		}
	})
}

// FuzzParseList fuzzes the list decoder including the DZG correction path.
func FuzzParseList(f *testing.F) {
	addHexSeeds(f,
		"727702610101010142000177026101010101420001",
		"71770648616C6C6F010101010648616C6C6F01",
		"717602610101010142",
		"7F6201",
		"F106",
		"01",
	)

	encodeList := func(buf *Buffer, e *ListEntry) { e.Encode(buf) }
	f.Fuzz(func(t *testing.T, data []byte) {
		first, ok := reencode(data, ParseList, encodeList)
		if !ok {
			return
		}

		second, ok := reencode(first, ParseList, encodeList)
		if !ok {
			t.Fatalf("re-encoded list does not parse: %X", first)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("list encoding is not stable: %X != %X", first, second)
		}
	})
}

// FuzzReadTL fuzzes the TL header decoder. A successfully decoded scalar header
// must never claim more content than the declared total length.
func FuzzReadTL(f *testing.F) {
	addHexSeeds(f, "0648616C6C6F", "8102", "81800161", "F106", "8F8F8F8F8F8F8F8F0F", "00", "01")

	f.Fuzz(func(t *testing.T, data []byte) {
		buf := NewReadBuffer(data)
		defer buf.Free()

		tl, err := buf.ReadTL()
		if err != nil {
			return
		}
		if tl.Size < 1 || tl.Size > maxTLBytes {
			t.Fatalf("invalid header size %d", tl.Size)
		}
		if tl.Length < 0 {
			t.Fatalf("negative length %d", tl.Length)
		}
		if buf.Cursor() != tl.Size {
			t.Fatalf("cursor %d does not match header size %d", buf.Cursor(), tl.Size)
		}
	})
}
