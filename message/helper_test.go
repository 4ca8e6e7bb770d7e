package message

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-sml/sml"
)

// hexBytes decodes a hexadecimal string, ignoring spaces.
func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)

	return data
}

func toHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// encodeBody encodes a body on its own and returns uppercase hex.
func encodeBody(body Body) string {
	buf := sml.NewBuffer(128)
	defer buf.Free()
	body.Encode(buf)

	return toHex(buf.Bytes())
}

// fixedIDGenerator returns the same transaction id every time.
type fixedIDGenerator sml.OctetString

func (g fixedIDGenerator) NewTransactionID() sml.OctetString {
	return sml.OctetString(g).Clone()
}

// foreignBody implements Body with a tag this package does not define.
type foreignBody struct{}

func (foreignBody) Tag() BodyTag { return BodyTag(0x1234) }
func (foreignBody) Encode(buf *sml.Buffer) { buf.WriteOptional() }
func (foreignBody) Print(p *sml.Printer) { p.Field("foreign", nil) }
