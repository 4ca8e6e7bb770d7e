package sml

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// hexBytes decodes a hexadecimal string, ignoring spaces.
func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)

	return data
}

// encodeHex runs f on a fresh write buffer and returns the result as uppercase hex.
func encodeHex(f func(buf *Buffer)) string {
	buf := NewBuffer(64)
	defer buf.Free()
	f(buf)

	return strings.ToUpper(hex.EncodeToString(buf.Bytes()))
}
