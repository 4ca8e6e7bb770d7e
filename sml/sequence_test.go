package sml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	require := require.New(t)

	seq := Sequence[OctetString]{OctetString("Hallo"), OctetString("Hallo")}
	encoded := encodeHex(func(buf *Buffer) { EncodeSequence(buf, seq, OctetStringCodec) })
	require.Equal("720648616C6C6F0648616C6C6F", encoded)

	buf := NewReadBuffer(hexBytes(t, encoded))
	got, err := ParseSequence(buf, OctetStringCodec)
	require.NoError(err)
	require.Len(got, 2)
	require.Equal("Hallo", got[1].String())
	require.Equal(0, buf.Remaining())
}

func TestSequence_Optional(t *testing.T) {
	require := require.New(t)

	require.Equal("01", encodeHex(func(buf *Buffer) { EncodeSequence(buf, Sequence[OctetString](nil), OctetStringCodec) }))
	require.Equal("70", encodeHex(func(buf *Buffer) { EncodeSequence(buf, Sequence[OctetString]{}, OctetStringCodec) }))

	buf := NewReadBuffer([]byte{OptionalSkipped})
	seq, err := ParseOptionalSequence(buf, OctetStringCodec)
	require.NoError(err)
	require.Nil(seq)

	// a required sequence does not accept the sentinel
	buf = NewReadBuffer([]byte{OptionalSkipped})
	_, err = ParseSequence(buf, OctetStringCodec)
	require.ErrorIs(err, ErrTypeMismatch)
}

func TestSequence_ElementError(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "720648616C6C6F6201"))
	seq, err := ParseSequence(buf, OctetStringCodec)
	require.ErrorIs(err, ErrTypeMismatch)
	require.Nil(seq)
}

func TestSequence_PeriodEntries(t *testing.T) {
	require := require.New(t)

	unit, scaler := uint8(30), int8(-1)
	seq := Sequence[*PeriodEntry]{
		{ObjName: OctetString{1, 0, 1, 8, 0, 255}, Unit: &unit, Scaler: &scaler, Value: NewUint32Value(12345)},
		{ObjName: OctetString{1, 0, 2, 8, 0, 255}, Value: NewInt64Value(-1)},
	}

	buf := NewBuffer(64)
	EncodeSequence(buf, seq, PeriodEntryCodec)

	rd := NewReadBuffer(buf.Bytes())
	got, err := ParseSequence(rd, PeriodEntryCodec)
	require.NoError(err)
	require.Len(got, 2)
	require.Equal(seq[0].ObjName, got[0].ObjName)
	require.Equal(uint8(30), *got[0].Unit)
	require.Equal(int8(-1), *got[0].Scaler)
	require.True(seq[0].Value.Equal(got[0].Value))
	require.Nil(got[1].Unit)
	require.Equal(int64(-1), got[1].Value.Int())
}
