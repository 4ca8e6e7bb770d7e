package sml

import (
	"bytes"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/arloliu/go-sml/internal/util"
)

// OctetString is a sequence of raw bytes. A nil OctetString is an absent optional field.
//
// A zero-length OctetString encodes to the same single byte as an absent one, so
// round trips must be compared with Equal.
type OctetString []byte

// OctetStringFromHex decodes a hexadecimal string such as "0100010800ff".
// Spaces are ignored.
func OctetStringFromHex(s string) (OctetString, error) {
	s = strings.ReplaceAll(s, " ", "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}

	return OctetString(data), nil
}

// ParseOctetString parses an optional octet string at the cursor.
// It returns nil without error if the field is absent.
func ParseOctetString(buf *Buffer) (OctetString, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	tl, err := buf.ExpectTL(OctetStringType)
	if err != nil {
		return nil, err
	}

	content, err := buf.read(tl.Length)
	if err != nil {
		return nil, err
	}

	return OctetString(util.CloneSlice(content, 0)), nil
}

// Encode appends s to buf. A nil or empty s is written as the absent-field sentinel.
func (s OctetString) Encode(buf *Buffer) {
	if len(s) == 0 {
		buf.WriteOptional()
		return
	}

	buf.WriteTL(OctetStringType, len(s))
	_, _ = buf.Write(s)
}

// Equal reports whether s and other hold the same bytes. Absent and empty strings are equal.
func (s OctetString) Equal(other OctetString) bool {
	return bytes.Equal(s, other)
}

// EqualBytes reports whether s holds exactly the given bytes.
func (s OctetString) EqualBytes(b ...byte) bool {
	return bytes.Equal(s, b)
}

// Hex returns the lowercase hexadecimal form of s.
func (s OctetString) Hex() string {
	return hex.EncodeToString(s)
}

// IsPrintable reports whether s is non-empty and consists of printable ASCII.
func (s OctetString) IsPrintable() bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c > unicode.MaxASCII || !unicode.IsPrint(rune(c)) {
			return false
		}
	}

	return true
}

// String returns s as text if it is printable ASCII, otherwise as hexadecimal.
func (s OctetString) String() string {
	if s.IsPrintable() {
		return string(s)
	}

	return s.Hex()
}

// Clone returns a copy of s. A nil s stays nil.
func (s OctetString) Clone() OctetString {
	if s == nil {
		return nil
	}

	return OctetString(util.CloneSlice(s, 0))
}

// MarshalText implements encoding.TextMarshaler.
func (s OctetString) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
