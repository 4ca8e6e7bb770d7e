package sml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		description    string
		input          string
		expected       Time
		expectedCursor int
	}{
		{description: "sec index", input: "72620165000000FF", expected: Time{Type: SecIndex, Value: 255}, expectedCursor: 8},
		{description: "timestamp", input: "72620265000000FF", expected: Time{Type: Timestamp, Value: 255}, expectedCursor: 8},
		{description: "bare sec index", input: "65000000FF", expected: Time{Type: SecIndex, Value: 255}, expectedCursor: 5},
		{
			description:    "local timestamp",
			input:          "726203736500000100530078530001",
			expected:       Time{Type: LocalTimestamp, Value: 256, LocalOffset: 120, SeasonOffset: 1},
			expectedCursor: 15,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require := require.New(t)

		buf := NewReadBuffer(hexBytes(t, test.input))
		tm, err := ParseTime(buf)
		require.NoError(err)
		require.Equal(test.expected, *tm)
		require.Equal(test.expectedCursor, buf.Cursor())
		buf.Free()
	}
}

func TestParseTime_Errors(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "7362016500000001"))
	_, err := ParseTime(buf)
	require.ErrorIs(err, ErrLengthMismatch)

	buf = NewReadBuffer(hexBytes(t, "72620142FF"))
	_, err = ParseTime(buf)
	require.ErrorIs(err, ErrTypeMismatch)
}

func TestWriteTime(t *testing.T) {
	require := require.New(t)

	require.Equal("72620165000000FF", encodeHex(NewSecIndex(255).Encode))

	ts := NewTimestamp(time.Unix(255, 0))
	require.Equal("72620265000000FF", encodeHex(ts.Encode))

	local := &Time{Type: LocalTimestamp, Value: 256, LocalOffset: 120, SeasonOffset: 1}
	require.Equal("726203736500000100530078530001", encodeHex(local.Encode))
}

func TestTimeString(t *testing.T) {
	require := require.New(t)

	require.Equal("secIndex 7", NewSecIndex(7).String())
	require.Equal("1970-01-01T00:00:10Z", NewTimestamp(time.Unix(10, 0)).String())
	require.Equal("<absent>", (*Time)(nil).String())

	tm, ok := NewTimestamp(time.Unix(10, 0)).Time()
	require.True(ok)
	require.Equal(int64(10), tm.Unix())

	_, ok = NewSecIndex(7).Time()
	require.False(ok)
}
