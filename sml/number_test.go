package sml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnsigned(t *testing.T) {
	tests := []struct {
		description    string
		input          string
		width          int
		expected       uint64
		expectedCursor int
	}{
		{description: "u8", input: "6201", width: 1, expected: 1, expectedCursor: 2},
		{description: "u16", input: "630101", width: 2, expected: 257, expectedCursor: 3},
		{description: "u32", input: "6500000001", width: 4, expected: 1, expectedCursor: 5},
		{description: "u32 with 3 content bytes", input: "64010001", width: 4, expected: 65537, expectedCursor: 4},
		{description: "u64", input: "690000000000000001", width: 8, expected: 1, expectedCursor: 9},
		{description: "u64 with 6 content bytes", input: "67000000000001", width: 8, expected: 1, expectedCursor: 7},
		{description: "u64 high bit is not a sign", input: "62FF", width: 8, expected: 0xFF, expectedCursor: 2},
		{description: "u16 without content", input: "61", width: 2, expected: 0, expectedCursor: 1},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require := require.New(t)

		buf := NewReadBuffer(hexBytes(t, test.input))
		var result uint64
		switch test.width {
		case 1:
			v, err := ParseU8(buf)
			require.NoError(err)
			result = uint64(*v)
		case 2:
			v, err := ParseU16(buf)
			require.NoError(err)
			result = uint64(*v)
		case 4:
			v, err := ParseU32(buf)
			require.NoError(err)
			result = uint64(*v)
		case 8:
			v, err := ParseU64(buf)
			require.NoError(err)
			result = *v
		}
		require.Equal(test.expected, result)
		require.Equal(test.expectedCursor, buf.Cursor())
		buf.Free()
	}
}

func TestParseSigned(t *testing.T) {
	tests := []struct {
		description string
		input       string
		width       int
		expected    int64
	}{
		{description: "i8 -1", input: "52FF", width: 1, expected: -1},
		{description: "i16 -5000", input: "53EC78", width: 2, expected: -5000},
		{description: "i32 -5000", input: "55FFFFEC78", width: 4, expected: -5000},
		{description: "i32 -5000 with 2 content bytes", input: "53EC78", width: 4, expected: -5000},
		{description: "i64 -1", input: "59FFFFFFFFFFFFFFFF", width: 8, expected: -1},
		{description: "i64 -5000 with 7 content bytes", input: "58FFFFFFFFFFEC78", width: 8, expected: -5000},
		{description: "i64 positive with 1 content byte", input: "527F", width: 8, expected: 127},
		{description: "i16 min", input: "538000", width: 2, expected: math.MinInt16},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require := require.New(t)

		buf := NewReadBuffer(hexBytes(t, test.input))
		var result int64
		switch test.width {
		case 1:
			v, err := ParseI8(buf)
			require.NoError(err)
			result = int64(*v)
		case 2:
			v, err := ParseI16(buf)
			require.NoError(err)
			result = int64(*v)
		case 4:
			v, err := ParseI32(buf)
			require.NoError(err)
			result = int64(*v)
		case 8:
			v, err := ParseI64(buf)
			require.NoError(err)
			result = *v
		}
		require.Equal(test.expected, result)
		require.Equal(buf.Len(), buf.Cursor())
		buf.Free()
	}
}

func TestParseNumber_Errors(t *testing.T) {
	require := require.New(t)

	// wider than declared
	buf := NewReadBuffer(hexBytes(t, "630101"))
	_, err := ParseU8(buf)
	require.ErrorIs(err, ErrNumberTooWide)
	require.Equal(NumericError, KindOf(err))

	// wrong family
	buf = NewReadBuffer(hexBytes(t, "5201"))
	_, err = ParseU8(buf)
	require.ErrorIs(err, ErrTypeMismatch)
	require.Equal(StructuralError, KindOf(err))

	// truncated content
	buf = NewReadBuffer(hexBytes(t, "6500"))
	_, err = ParseU32(buf)
	require.ErrorIs(err, ErrUnexpectedEOF)

	// empty buffer
	buf = NewReadBuffer(nil)
	_, err = ParseI64(buf)
	require.ErrorIs(err, ErrUnexpectedEOF)
}

func TestWriteNumber(t *testing.T) {
	require := require.New(t)

	u8 := uint8(1)
	require.Equal("6201", encodeHex(func(buf *Buffer) { WriteU8(buf, &u8) }))

	u16 := uint16(1)
	require.Equal("630001", encodeHex(func(buf *Buffer) { WriteU16(buf, &u16) }))

	u32 := uint32(42)
	require.Equal("650000002A", encodeHex(func(buf *Buffer) { WriteU32(buf, &u32) }))

	u64 := uint64(1)
	require.Equal("690000000000000001", encodeHex(func(buf *Buffer) { WriteU64(buf, &u64) }))

	i8 := int8(-1)
	require.Equal("52FF", encodeHex(func(buf *Buffer) { WriteI8(buf, &i8) }))

	i16 := int16(-5)
	require.Equal("53FFFB", encodeHex(func(buf *Buffer) { WriteI16(buf, &i16) }))

	i32 := int32(-5000)
	require.Equal("55FFFFEC78", encodeHex(func(buf *Buffer) { WriteI32(buf, &i32) }))

	i64 := int64(1)
	require.Equal("590000000000000001", encodeHex(func(buf *Buffer) { WriteI64(buf, &i64) }))
}

func TestNumberRoundTrip(t *testing.T) {
	require := require.New(t)

	signed := []int64{math.MinInt64, math.MinInt32 - 1, math.MinInt32, math.MinInt16, -5000, -129, -128, -1, 0, 1, 127, 128, 5000, math.MaxInt16, math.MaxInt32, math.MaxInt32 + 1, math.MaxInt64}
	for _, v := range signed {
		buf := NewBuffer(16)
		if v >= math.MinInt8 && v <= math.MaxInt8 {
			i8 := int8(v)
			WriteI8(buf, &i8)
		}
		if v >= math.MinInt16 && v <= math.MaxInt16 {
			i16 := int16(v)
			WriteI16(buf, &i16)
		}
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			i32 := int32(v)
			WriteI32(buf, &i32)
		}
		WriteI64(buf, &v)

		rd := NewReadBuffer(buf.Bytes())
		if v >= math.MinInt8 && v <= math.MaxInt8 {
			got, err := ParseI8(rd)
			require.NoError(err)
			require.Equal(int8(v), *got)
		}
		if v >= math.MinInt16 && v <= math.MaxInt16 {
			got, err := ParseI16(rd)
			require.NoError(err)
			require.Equal(int16(v), *got)
		}
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			got, err := ParseI32(rd)
			require.NoError(err)
			require.Equal(int32(v), *got)
		}
		got, err := ParseI64(rd)
		require.NoError(err)
		require.Equal(v, *got)
		require.Equal(0, rd.Remaining())

		buf.Free()
		rd.Free()
	}

	unsigned := []uint64{0, 1, 127, 128, math.MaxUint8, math.MaxUint8 + 1, math.MaxUint16, math.MaxUint32, math.MaxUint32 + 1, math.MaxUint64}
	for _, v := range unsigned {
		buf := NewBuffer(16)
		WriteU64(buf, &v)
		if v <= math.MaxUint32 {
			u32 := uint32(v)
			WriteU32(buf, &u32)
		}
		if v <= math.MaxUint16 {
			u16 := uint16(v)
			WriteU16(buf, &u16)
		}
		if v <= math.MaxUint8 {
			u8 := uint8(v)
			WriteU8(buf, &u8)
		}

		rd := NewReadBuffer(buf.Bytes())
		got, err := ParseU64(rd)
		require.NoError(err)
		require.Equal(v, *got)
		if v <= math.MaxUint32 {
			got, err := ParseU32(rd)
			require.NoError(err)
			require.Equal(uint32(v), *got)
		}
		if v <= math.MaxUint16 {
			got, err := ParseU16(rd)
			require.NoError(err)
			require.Equal(uint16(v), *got)
		}
		if v <= math.MaxUint8 {
			got, err := ParseU8(rd)
			require.NoError(err)
			require.Equal(uint8(v), *got)
		}
		require.Equal(0, rd.Remaining())

		buf.Free()
		rd.Free()
	}
}

func TestNumberCompactDecode(t *testing.T) {
	require := require.New(t)

	// a 3-byte unsigned-32 decodes like its full-width encoding
	compact := NewReadBuffer(hexBytes(t, "64010001"))
	full := NewReadBuffer(hexBytes(t, "6500010001"))
	a, err := ParseU32(compact)
	require.NoError(err)
	b, err := ParseU32(full)
	require.NoError(err)
	require.Equal(*b, *a)

	// a 2-byte signed-64 decodes like its full-width encoding
	compact = NewReadBuffer(hexBytes(t, "53EC78"))
	full = NewReadBuffer(hexBytes(t, "59FFFFFFFFFFFFEC78"))
	c, err := ParseI64(compact)
	require.NoError(err)
	d, err := ParseI64(full)
	require.NoError(err)
	require.Equal(*d, *c)
}
